package domain

import (
	"context"
	"fmt"
)

// Team представляет команду, в которую входят разработчики.
type Team struct {
	ID   string
	Name string
}

// Label возвращает отображаемое имя команды.
func (t *Team) Label() string {
	if t.Name != "" {
		return t.Name
	}
	return t.ID
}

// MembersCacheTag возвращает кэш-тег списка участников команды.
func MembersCacheTag(teamID string) string {
	return fmt.Sprintf("team:%s:members", teamID)
}

// TeamType описывает метаданные типа сущности "команда".
// Метки всегда в нижнем регистре.
type TeamType struct {
	Label       string
	LabelPlural string
}

// TeamRepository определяет контракт для работы с хранилищем команд.
type TeamRepository interface {
	Create(ctx context.Context, team *Team) error
	GetByID(ctx context.Context, teamID string) (*Team, error)
}

// TeamMembershipManager владеет связями команда -> email разработчика.
type TeamMembershipManager interface {
	GetMembers(ctx context.Context, teamID string) ([]string, error)
	AddMembers(ctx context.Context, teamID string, emails []string) error
	RemoveMembers(ctx context.Context, teamID string, emails []string) error
}

// TeamMember представляет участника команды вместе с его отображаемой меткой.
type TeamMember struct {
	Email string
	Label string
}

// TeamMembers - список участников и контрольная сумма кэш-тега списка.
type TeamMembers struct {
	Team     *Team
	Members  []*TeamMember
	Checksum int64
}
