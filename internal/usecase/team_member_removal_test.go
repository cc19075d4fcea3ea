package usecase_test

import (
	"context"
	"testing"

	"team-member-service/internal/domain"
	"team-member-service/internal/form"
	"team-member-service/internal/i18n"
	"team-member-service/internal/messenger"
	"team-member-service/internal/usecase"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	teamT1 = &domain.Team{ID: "t1", Name: "Backend"}
	devA   = &domain.Developer{Email: "a@x.com", FirstName: "Alice"}
	devC   = &domain.Developer{Email: "c@x.com"}
)

type removalFixture struct {
	users     *UserStorage
	members   *MembershipManager
	cacheTags *CacheTags
	recorder  *RemovalRecorder
	hook      *test.Hook
	messenger *messenger.Messenger
	factory   *usecase.TeamMemberRemovalFormFactory
}

func newRemovalFixture() *removalFixture {
	logger, hook := test.NewNullLogger()

	f := &removalFixture{
		users:     &UserStorage{},
		members:   &MembershipManager{},
		cacheTags: &CacheTags{},
		recorder:  &RemovalRecorder{},
		hook:      hook,
		messenger: messenger.New(),
	}
	f.recorder.On("ObserveRemoval", mock.Anything).Return()
	f.factory = usecase.NewTeamMemberRemovalFormFactory(
		usecase.NewLabelResolver(f.users, logger),
		f.members,
		f.cacheTags,
		i18n.NewTranslator(),
		f.recorder,
		logger,
		domain.TeamType{Label: "team", LabelPlural: "teams"},
	)

	return f
}

func (f *removalFixture) withUsers(email string, users ...*domain.User) {
	if users == nil {
		users = []*domain.User{}
	}
	f.users.On("LoadByProperties", mock.Anything, map[string]string{"mail": email}).Return(users, nil)
}

func (f *removalFixture) build(team *domain.Team, developer *domain.Developer) *usecase.TeamMemberRemovalForm {
	return f.factory.Build(team, developer, f.messenger).(*usecase.TeamMemberRemovalForm)
}

func TestTeamMemberRemovalForm_DeveloperLabel(t *testing.T) {
	t.Run("No matching user falls back to email", func(t *testing.T) {
		f := newRemovalFixture()
		f.withUsers("a@x.com")

		assert.Equal(t, "a@x.com", f.build(teamT1, devA).DeveloperLabel(context.Background()))
	})

	t.Run("Matching user label wins over email", func(t *testing.T) {
		f := newRemovalFixture()
		f.withUsers("a@x.com", &domain.User{ID: 1, Name: "alice", Mail: "a@x.com"})

		assert.Equal(t, "alice", f.build(teamT1, devA).DeveloperLabel(context.Background()))
	})

	t.Run("First of several users is used", func(t *testing.T) {
		f := newRemovalFixture()
		f.withUsers("a@x.com",
			&domain.User{ID: 1, Name: "alice", Mail: "a@x.com"},
			&domain.User{ID: 2, Name: "alice2", Mail: "a@x.com"},
		)

		assert.Equal(t, "alice", f.build(teamT1, devA).DeveloperLabel(context.Background()))
	})

	t.Run("Lookup failure falls back to email", func(t *testing.T) {
		f := newRemovalFixture()
		f.users.On("LoadByProperties", mock.Anything, mock.Anything).Return(nil, assert.AnError)

		assert.Equal(t, "a@x.com", f.build(teamT1, devA).DeveloperLabel(context.Background()))
		require.Len(t, f.hook.Entries, 1)
		assert.Equal(t, logrus.WarnLevel, f.hook.LastEntry().Level)
	})

	t.Run("Resolved once per form", func(t *testing.T) {
		f := newRemovalFixture()
		f.withUsers("a@x.com")
		removal := f.build(teamT1, devA)

		removal.DeveloperLabel(context.Background())
		removal.Question(context.Background())

		f.users.AssertNumberOfCalls(t, "LoadByProperties", 1)
	})
}

func TestTeamMemberRemovalForm_Prompt(t *testing.T) {
	f := newRemovalFixture()
	f.withUsers("a@x.com", &domain.User{Name: "alice", Mail: "a@x.com"})

	prompt := form.Build(context.Background(), f.build(teamT1, devA))

	assert.Equal(t, "Are you sure you want to remove alice from the team?", prompt.Question)
	assert.Equal(t, "Remove", prompt.ConfirmText)
	assert.Equal(t, form.DefaultCancelText, prompt.CancelText)
	assert.Equal(t, "/teams/t1/members", prompt.CancelURL)
}

func TestTeamMemberRemovalForm_CancelURLEscapesTeamID(t *testing.T) {
	f := newRemovalFixture()

	removal := f.build(&domain.Team{ID: "a b/c"}, devA)

	assert.Equal(t, "/teams/a%20b%2Fc/members", removal.CancelURL())
}

func TestTeamMemberRemovalForm_NonMemberIsRejected(t *testing.T) {
	f := newRemovalFixture()
	f.withUsers("c@x.com")
	f.members.On("GetMembers", mock.Anything, "t1").Return([]string{"a@x.com", "b@x.com"}, nil)

	result, err := form.Process(context.Background(), f.build(teamT1, devC), form.OpConfirm)

	require.NoError(t, err)
	assert.Equal(t, form.OutcomeRejected, result.Outcome)
	assert.Equal(t, "/teams/t1/members", result.Redirect)
	assert.Equal(t, []form.FieldError{
		{Message: "c@x.com is not a member of the Backend team."},
	}, result.Errors)
	f.members.AssertNotCalled(t, "RemoveMembers", mock.Anything, mock.Anything, mock.Anything)
	f.cacheTags.AssertNotCalled(t, "InvalidateTags", mock.Anything, mock.Anything)
	f.recorder.AssertCalled(t, "ObserveRemoval", domain.RemovalRejected)
	assert.Empty(t, f.messenger.All())
	assert.Empty(t, f.hook.Entries)
}

func TestTeamMemberRemovalForm_MembershipLookupFailure(t *testing.T) {
	f := newRemovalFixture()
	f.members.On("GetMembers", mock.Anything, "t1").Return(nil, assert.AnError)

	result, err := form.Process(context.Background(), f.build(teamT1, devA), form.OpConfirm)

	assert.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, result)
	f.members.AssertNotCalled(t, "RemoveMembers", mock.Anything, mock.Anything, mock.Anything)
}

func TestTeamMemberRemovalForm_SuccessfulRemoval(t *testing.T) {
	f := newRemovalFixture()
	f.withUsers("a@x.com")
	f.members.On("GetMembers", mock.Anything, "t1").Return([]string{"a@x.com", "b@x.com"}, nil)
	remove := f.members.On("RemoveMembers", mock.Anything, "t1", []string{"a@x.com"}).Return(nil)
	invalidate := f.cacheTags.On("InvalidateTags", mock.Anything, []string{"team:t1:members"}).Return()
	mock.InOrder(remove, invalidate)

	result, err := form.Process(context.Background(), f.build(teamT1, devA), form.OpConfirm)

	require.NoError(t, err)
	assert.Equal(t, form.OutcomeSubmitted, result.Outcome)
	assert.Equal(t, "/teams/t1/members", result.Redirect)
	f.members.AssertNumberOfCalls(t, "RemoveMembers", 1)
	f.cacheTags.AssertNumberOfCalls(t, "InvalidateTags", 1)
	assert.Equal(t, []string{"a@x.com successfully removed from the team."}, f.messenger.ByType(messenger.TypeStatus))
	assert.Empty(t, f.messenger.ByType(messenger.TypeError))
	f.recorder.AssertCalled(t, "ObserveRemoval", domain.RemovalRemoved)
	assert.Empty(t, f.hook.Entries)
}

func TestTeamMemberRemovalForm_FailedRemoval(t *testing.T) {
	f := newRemovalFixture()
	f.withUsers("a@x.com", &domain.User{Name: "alice", Mail: "a@x.com"})
	f.members.On("GetMembers", mock.Anything, "t1").Return([]string{"a@x.com"}, nil)
	f.members.On("RemoveMembers", mock.Anything, "t1", []string{"a@x.com"}).
		Return(errors.New("upstream unavailable"))

	result, err := form.Process(context.Background(), f.build(teamT1, devA), form.OpConfirm)

	require.NoError(t, err)
	assert.Equal(t, form.OutcomeSubmitted, result.Outcome)
	assert.Equal(t, []string{"Failed to remove alice from the team. Please try again."}, f.messenger.ByType(messenger.TypeError))
	assert.Empty(t, f.messenger.ByType(messenger.TypeStatus))
	f.cacheTags.AssertNotCalled(t, "InvalidateTags", mock.Anything, mock.Anything)
	f.recorder.AssertCalled(t, "ObserveRemoval", domain.RemovalFailed)

	require.Len(t, f.hook.Entries, 1)
	entry := f.hook.LastEntry()
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Contains(t, entry.Message, "Failed to remove a@x.com from team t1. upstream unavailable")
	assert.Equal(t, "upstream unavailable", entry.Data["message"])
	assert.Equal(t, "alice", entry.Data["developer"])
	assert.Equal(t, "a@x.com", entry.Data["developer_email"])
	assert.Equal(t, "team", entry.Data["team_label"])
	assert.Equal(t, "t1", entry.Data["team_id"])
	assert.Contains(t, entry.Data["file"], "team_member_removal_test.go")
	assert.NotEmpty(t, entry.Data["line"])
	assert.Contains(t, entry.Data["function"], "TestTeamMemberRemovalForm_FailedRemoval")
	assert.NotEmpty(t, entry.Data["backtrace"])
}

func TestTeamMemberRemovalForm_FailedRemovalWithoutStack(t *testing.T) {
	f := newRemovalFixture()
	f.withUsers("a@x.com")
	f.members.On("GetMembers", mock.Anything, "t1").Return([]string{"a@x.com"}, nil)
	f.members.On("RemoveMembers", mock.Anything, "t1", []string{"a@x.com"}).Return(assert.AnError)

	_, err := form.Process(context.Background(), f.build(teamT1, devA), form.OpConfirm)

	require.NoError(t, err)
	require.Len(t, f.hook.Entries, 1)
	entry := f.hook.LastEntry()
	assert.Equal(t, assert.AnError.Error(), entry.Data["message"])
	assert.NotEmpty(t, entry.Data["file"])
	assert.NotEmpty(t, entry.Data["backtrace"])
	f.cacheTags.AssertNotCalled(t, "InvalidateTags", mock.Anything, mock.Anything)
}

func TestTeamMemberRemovalForm_CancelHasNoSideEffects(t *testing.T) {
	f := newRemovalFixture()

	result, err := form.Process(context.Background(), f.build(teamT1, devA), form.OpCancel)

	require.NoError(t, err)
	assert.Equal(t, form.OutcomeCancelled, result.Outcome)
	assert.Equal(t, "/teams/t1/members", result.Redirect)
	f.members.AssertNotCalled(t, "GetMembers", mock.Anything, mock.Anything)
	f.members.AssertNotCalled(t, "RemoveMembers", mock.Anything, mock.Anything, mock.Anything)
	f.cacheTags.AssertNotCalled(t, "InvalidateTags", mock.Anything, mock.Anything)
	assert.Empty(t, f.messenger.All())
}
