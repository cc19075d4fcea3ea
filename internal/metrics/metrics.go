package metrics

import (
	"team-member-service/internal/domain"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics хранит коллекторы сервиса.
type Metrics struct {
	removals *prometheus.CounterVec
}

// New создает коллекторы и регистрирует их в registerer.
func New(registerer prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		removals: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "team_member",
			Name:      "removals_total",
			Help:      "Team member removal requests by outcome.",
		}, []string{"outcome"}),
	}

	if err := registerer.Register(m.removals); err != nil {
		return nil, err
	}

	// Все исходы видны в выводе сразу, даже с нулевым значением.
	for _, outcome := range []string{
		domain.RemovalRemoved,
		domain.RemovalFailed,
		domain.RemovalRejected,
		domain.RemovalCancelled,
	} {
		m.removals.WithLabelValues(outcome)
	}

	return m, nil
}

var _ domain.RemovalRecorder = (*Metrics)(nil)

// ObserveRemoval учитывает исход удаления участника.
func (m *Metrics) ObserveRemoval(outcome string) {
	m.removals.WithLabelValues(outcome).Inc()
}
