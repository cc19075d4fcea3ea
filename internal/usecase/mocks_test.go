package usecase_test

import (
	"context"

	"team-member-service/internal/domain"

	"github.com/stretchr/testify/mock"
)

type TeamRepository struct {
	mock.Mock
}

func (m *TeamRepository) Create(ctx context.Context, team *domain.Team) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}

func (m *TeamRepository) GetByID(ctx context.Context, teamID string) (*domain.Team, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

type DeveloperRepository struct {
	mock.Mock
}

func (m *DeveloperRepository) Upsert(ctx context.Context, developer *domain.Developer) error {
	args := m.Called(ctx, developer)
	return args.Error(0)
}

func (m *DeveloperRepository) GetByEmail(ctx context.Context, email string) (*domain.Developer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Developer), args.Error(1)
}

type UserStorage struct {
	mock.Mock
}

func (m *UserStorage) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserStorage) LoadByProperties(ctx context.Context, properties map[string]string) ([]*domain.User, error) {
	args := m.Called(ctx, properties)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

type MembershipManager struct {
	mock.Mock
}

func (m *MembershipManager) GetMembers(ctx context.Context, teamID string) ([]string, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MembershipManager) AddMembers(ctx context.Context, teamID string, emails []string) error {
	args := m.Called(ctx, teamID, emails)
	return args.Error(0)
}

func (m *MembershipManager) RemoveMembers(ctx context.Context, teamID string, emails []string) error {
	args := m.Called(ctx, teamID, emails)
	return args.Error(0)
}

type CacheTags struct {
	mock.Mock
}

func (m *CacheTags) InvalidateTags(ctx context.Context, tags []string) {
	m.Called(ctx, tags)
}

func (m *CacheTags) Checksum(ctx context.Context, tags []string) (int64, error) {
	args := m.Called(ctx, tags)
	return args.Get(0).(int64), args.Error(1)
}

type Messenger struct {
	mock.Mock
}

func (m *Messenger) AddStatus(message string) {
	m.Called(message)
}

func (m *Messenger) AddError(message string) {
	m.Called(message)
}

type RemovalRecorder struct {
	mock.Mock
}

func (m *RemovalRecorder) ObserveRemoval(outcome string) {
	m.Called(outcome)
}
