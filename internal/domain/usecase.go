package domain

import "context"

// TeamMemberUseCase определяет бизнес-логику для работы с участниками команд.
type TeamMemberUseCase interface {
	ResolveRoute(ctx context.Context, teamID, developerEmail string) (*Team, *Developer, error)
	ListMembers(ctx context.Context, teamID string) (*TeamMembers, error)
	AddMembers(ctx context.Context, teamID string, emails []string) (*TeamMembers, error)
}
