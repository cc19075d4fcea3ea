package usecase

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"strings"

	"team-member-service/internal/domain"
	"team-member-service/internal/form"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	removalQuestion    = "Are you sure you want to remove %developer from the %team_label?"
	notMemberError     = "%developer is not a member of the %team %team_label."
	removalFailedError = "Failed to remove %developer from the %team_label. Please try again."
	removalSuccess     = "%developer successfully removed from the %team_label."
	removalFailedLog   = "Failed to remove %developer_email from %team_label %team_id. %message %function (line %line of %file)."
)

// TeamMemberRemovalFormFactory собирает формы удаления участника команды.
type TeamMemberRemovalFormFactory struct {
	labels     *LabelResolver
	members    domain.TeamMembershipManager
	cacheTags  domain.CacheTagsInvalidator
	translator domain.Translator
	recorder   domain.RemovalRecorder
	logger     *logrus.Logger
	teamType   domain.TeamType
}

// NewTeamMemberRemovalFormFactory создает новый экземпляр TeamMemberRemovalFormFactory.
func NewTeamMemberRemovalFormFactory(
	labels *LabelResolver,
	members domain.TeamMembershipManager,
	cacheTags domain.CacheTagsInvalidator,
	translator domain.Translator,
	recorder domain.RemovalRecorder,
	logger *logrus.Logger,
	teamType domain.TeamType,
) *TeamMemberRemovalFormFactory {
	return &TeamMemberRemovalFormFactory{
		labels:     labels,
		members:    members,
		cacheTags:  cacheTags,
		translator: translator,
		recorder:   recorder,
		logger:     logger,
		teamType:   teamType,
	}
}

// Build создает форму для пары (команда, разработчик) одного запроса.
func (f *TeamMemberRemovalFormFactory) Build(team *domain.Team, developer *domain.Developer, messenger domain.Messenger) form.ConfirmForm {
	return &TeamMemberRemovalForm{
		TeamMemberRemovalFormFactory: f,
		team:                         team,
		developer:                    developer,
		messenger:                    messenger,
	}
}

// TeamMemberRemovalForm подтверждает и выполняет удаление разработчика из команды.
type TeamMemberRemovalForm struct {
	*TeamMemberRemovalFormFactory

	team      *domain.Team
	developer *domain.Developer
	messenger domain.Messenger

	label string
}

var (
	_ form.ConfirmForm   = (*TeamMemberRemovalForm)(nil)
	_ form.ConfirmTexter = (*TeamMemberRemovalForm)(nil)
)

// DeveloperLabel возвращает метку разработчика, вычисляя ее один раз за запрос.
func (f *TeamMemberRemovalForm) DeveloperLabel(ctx context.Context) string {
	if f.label == "" {
		f.label = f.labels.DeveloperLabel(ctx, f.developer)
	}
	return f.label
}

func (f *TeamMemberRemovalForm) Question(ctx context.Context) string {
	return f.translator.T(removalQuestion, map[string]string{
		"%developer":  f.DeveloperLabel(ctx),
		"%team_label": f.teamType.Label,
	})
}

// CancelURL возвращает адрес списка участников команды.
func (f *TeamMemberRemovalForm) CancelURL() string {
	return "/teams/" + url.PathEscape(f.team.ID) + "/members"
}

func (f *TeamMemberRemovalForm) ConfirmText() string {
	return "Remove"
}

// Validate не допускает удаление разработчика, который уже не состоит в команде.
func (f *TeamMemberRemovalForm) Validate(ctx context.Context, state *form.State) error {
	members, err := f.members.GetMembers(ctx, f.team.ID)
	if err != nil {
		return fmt.Errorf("failed to load members of team %s: %w", f.team.ID, err)
	}

	if !slices.Contains(members, f.developer.Email) {
		state.SetError("", f.translator.T(notMemberError, map[string]string{
			"%developer":  f.DeveloperLabel(ctx),
			"%team":       f.team.Label(),
			"%team_label": f.teamType.Label,
		}))
		state.SetRedirect(f.CancelURL())
		f.recorder.ObserveRemoval(domain.RemovalRejected)
	}

	return nil
}

// Submit удаляет разработчика из команды. Ошибка удаления не пробрасывается:
// пользователь получает сообщение, подробности уходят в журнал.
func (f *TeamMemberRemovalForm) Submit(ctx context.Context, state *form.State) {
	args := map[string]string{
		"%developer":       f.DeveloperLabel(ctx),
		"%developer_email": f.developer.Email,
		"%team_label":      f.teamType.Label,
		"%team_id":         f.team.ID,
	}

	if err := f.members.RemoveMembers(ctx, f.team.ID, []string{f.developer.Email}); err != nil {
		for key, value := range decodeError(err) {
			args[key] = value
		}
		f.messenger.AddError(f.translator.T(removalFailedError, args))
		f.logger.WithFields(logFields(args)).Error(f.translator.T(removalFailedLog, args))
		f.recorder.ObserveRemoval(domain.RemovalFailed)
		return
	}

	f.cacheTags.InvalidateTags(ctx, []string{domain.MembersCacheTag(f.team.ID)})
	f.messenger.AddStatus(f.translator.T(removalSuccess, args))
	f.recorder.ObserveRemoval(domain.RemovalRemoved)
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// decodeError раскладывает ошибку на сообщение, место возникновения и стек.
// Ошибке без стека он назначается в точке вызова.
func decodeError(err error) map[string]string {
	var st stackTracer
	if !errors.As(err, &st) {
		st = errors.WithStack(err).(stackTracer)
	}

	info := map[string]string{
		"%message":   err.Error(),
		"%file":      "",
		"%line":      "",
		"%function":  "",
		"%backtrace": "",
	}

	frames := st.StackTrace()
	if len(frames) == 0 {
		return info
	}

	top := frames[0]
	info["%function"] = fmt.Sprintf("%n", top)
	info["%line"] = fmt.Sprintf("%d", top)
	info["%file"] = fmt.Sprintf("%s", top)
	// %+s печатает "функция\n\tполный путь"
	if parts := strings.SplitN(fmt.Sprintf("%+s", top), "\n\t", 2); len(parts) == 2 {
		info["%file"] = parts[1]
	}
	info["%backtrace"] = strings.TrimSpace(fmt.Sprintf("%+v", frames))

	return info
}

func logFields(args map[string]string) logrus.Fields {
	fields := make(logrus.Fields, len(args))
	for key, value := range args {
		fields[strings.TrimLeft(key, "@%:")] = value
	}
	return fields
}
