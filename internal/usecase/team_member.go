package usecase

import (
	"context"
	"slices"
	"strings"

	"team-member-service/internal/domain"

	"github.com/sirupsen/logrus"
)

// TeamMemberUseCase реализует бизнес-логику для работы с участниками команд.
type TeamMemberUseCase struct {
	teamRepo      domain.TeamRepository
	developerRepo domain.DeveloperRepository
	members       domain.TeamMembershipManager
	cacheTags     domain.CacheTagsInvalidator
	checksum      domain.CacheTagsChecksum
	labels        *LabelResolver
	logger        *logrus.Logger
}

// NewTeamMemberUseCase создает новый экземпляр TeamMemberUseCase.
func NewTeamMemberUseCase(
	teamRepo domain.TeamRepository,
	developerRepo domain.DeveloperRepository,
	members domain.TeamMembershipManager,
	cacheTags domain.CacheTagsInvalidator,
	checksum domain.CacheTagsChecksum,
	labels *LabelResolver,
	logger *logrus.Logger,
) domain.TeamMemberUseCase {
	return &TeamMemberUseCase{
		teamRepo:      teamRepo,
		developerRepo: developerRepo,
		members:       members,
		cacheTags:     cacheTags,
		checksum:      checksum,
		labels:        labels,
		logger:        logger,
	}
}

// ResolveRoute загружает команду и разработчика из параметров маршрута.
func (uc *TeamMemberUseCase) ResolveRoute(ctx context.Context, teamID, developerEmail string) (*domain.Team, *domain.Developer, error) {
	if teamID == "" {
		return nil, nil, domain.ErrInvalidTeamID
	}
	if !strings.Contains(developerEmail, "@") {
		return nil, nil, domain.ErrInvalidDeveloperEmail
	}

	team, err := uc.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, nil, err
	}

	developer, err := uc.developerRepo.GetByEmail(ctx, developerEmail)
	if err != nil {
		return nil, nil, err
	}

	return team, developer, nil
}

// ListMembers возвращает участников команды с метками, упорядоченных по email.
func (uc *TeamMemberUseCase) ListMembers(ctx context.Context, teamID string) (*domain.TeamMembers, error) {
	if teamID == "" {
		return nil, domain.ErrInvalidTeamID
	}

	team, err := uc.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	return uc.loadMembers(ctx, team)
}

// AddMembers добавляет существующих разработчиков в команду.
func (uc *TeamMemberUseCase) AddMembers(ctx context.Context, teamID string, emails []string) (*domain.TeamMembers, error) {
	// Валидация
	if teamID == "" {
		return nil, domain.ErrInvalidTeamID
	}
	if len(emails) == 0 {
		return nil, domain.ErrNoMembersGiven
	}

	team, err := uc.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	current, err := uc.members.GetMembers(ctx, teamID)
	if err != nil {
		return nil, err
	}

	// Каждый email - существующий разработчик, еще не состоящий в команде
	unique := make([]string, 0, len(emails))
	for _, email := range emails {
		if slices.Contains(unique, email) {
			continue
		}
		if slices.Contains(current, email) {
			return nil, domain.ErrAlreadyMember
		}
		if _, err := uc.developerRepo.GetByEmail(ctx, email); err != nil {
			return nil, err
		}
		unique = append(unique, email)
	}

	if err := uc.members.AddMembers(ctx, teamID, unique); err != nil {
		return nil, err
	}

	uc.cacheTags.InvalidateTags(ctx, []string{domain.MembersCacheTag(teamID)})
	uc.logger.WithFields(logrus.Fields{
		"team_id":       teamID,
		"members_added": len(unique),
	}).Info("Team members added")

	return uc.loadMembers(ctx, team)
}

func (uc *TeamMemberUseCase) loadMembers(ctx context.Context, team *domain.Team) (*domain.TeamMembers, error) {
	emails, err := uc.members.GetMembers(ctx, team.ID)
	if err != nil {
		return nil, err
	}

	checksum, err := uc.checksum.Checksum(ctx, []string{domain.MembersCacheTag(team.ID)})
	if err != nil {
		return nil, err
	}

	slices.Sort(emails)
	members := make([]*domain.TeamMember, 0, len(emails))
	for _, email := range emails {
		members = append(members, &domain.TeamMember{
			Email: email,
			Label: uc.labels.DeveloperLabel(ctx, &domain.Developer{Email: email}),
		})
	}

	return &domain.TeamMembers{
		Team:     team,
		Members:  members,
		Checksum: checksum,
	}, nil
}
