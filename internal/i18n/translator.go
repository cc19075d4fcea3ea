// Package i18n подставляет аргументы в шаблоны пользовательских сообщений.
//
// Плейсхолдеры начинаются с "@", "%" или ":" и передаются вместе с префиксом:
//
//	t.T("Removed %developer.", map[string]string{"%developer": "alice"})
package i18n

import (
	"sort"
	"strings"

	"team-member-service/internal/domain"
)

// Translator реализует domain.Translator.
type Translator struct{}

// NewTranslator создает новый экземпляр Translator.
func NewTranslator() *Translator {
	return &Translator{}
}

var _ domain.Translator = (*Translator)(nil)

// T подставляет аргументы в шаблон. Неизвестные плейсхолдеры остаются как есть.
func (t *Translator) T(template string, args map[string]string) string {
	if len(args) == 0 {
		return template
	}

	keys := make([]string, 0, len(args))
	for key := range args {
		if isPlaceholder(key) {
			keys = append(keys, key)
		}
	}
	// Длинные ключи первыми: %team_label не должен совпасть с %team.
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	pairs := make([]string, 0, len(keys)*2)
	for _, key := range keys {
		pairs = append(pairs, key, args[key])
	}

	return strings.NewReplacer(pairs...).Replace(template)
}

func isPlaceholder(key string) bool {
	if len(key) < 2 {
		return false
	}
	switch key[0] {
	case '@', '%', ':':
		return true
	}
	return false
}
