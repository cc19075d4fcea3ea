package handler

import (
	"net/http"

	"team-member-service/api"
	"team-member-service/internal/domain"
	"team-member-service/internal/form"
	"team-member-service/internal/messenger"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// RemovalFormBuilder собирает форму удаления участника для одного запроса.
type RemovalFormBuilder interface {
	Build(team *domain.Team, developer *domain.Developer, messenger domain.Messenger) form.ConfirmForm
}

// TeamMemberHandler обрабатывает HTTP-запросы для управления участниками команд
type TeamMemberHandler struct {
	*BaseHandler
	teamMemberUseCase domain.TeamMemberUseCase
	removalForms      RemovalFormBuilder
	recorder          domain.RemovalRecorder
}

// NewTeamMemberHandler создает новый экземпляр TeamMemberHandler
func NewTeamMemberHandler(
	teamMemberUseCase domain.TeamMemberUseCase,
	removalForms RemovalFormBuilder,
	recorder domain.RemovalRecorder,
	logger *logrus.Logger,
) *TeamMemberHandler {
	return &TeamMemberHandler{
		BaseHandler:       NewBaseHandler(logger),
		teamMemberUseCase: teamMemberUseCase,
		removalForms:      removalForms,
		recorder:          recorder,
	}
}

// GetTeamMembers обрабатывает получение списка участников команды
func (h *TeamMemberHandler) GetTeamMembers(c echo.Context, teamID api.TeamId, params api.GetTeamMembersParams) error {
	logEntry := h.logRequest(c, "list_team_members").WithField("team_id", teamID)
	logEntry.Info("Listing team members")

	result, err := h.teamMemberUseCase.ListMembers(c.Request().Context(), teamID)
	if err != nil {
		logEntry.WithError(err).Warn("Failed to list team members")
		return h.respondError(c, err)
	}

	etag := membersETag(result)
	c.Response().Header().Set("ETag", etag)
	c.Response().Header().Set(echo.HeaderCacheControl, "no-cache")

	if params.IfNoneMatch != nil && *params.IfNoneMatch == etag {
		logEntry.Info("Team members not modified")
		return c.NoContent(http.StatusNotModified)
	}

	logEntry.WithField("members_count", len(result.Members)).Info("Team members retrieved successfully")
	return c.JSON(http.StatusOK, toAPITeamMembers(result))
}

// PostTeamMembers обрабатывает добавление разработчиков в команду
func (h *TeamMemberHandler) PostTeamMembers(c echo.Context, teamID api.TeamId) error {
	logEntry := h.logRequest(c, "add_team_members").WithField("team_id", teamID)
	logEntry.Info("Adding team members")

	var req api.PostTeamMembersJSONRequestBody
	if err := c.Bind(&req); err != nil {
		logEntry.WithError(err).Warn("Failed to bind request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}
	if err := c.Validate(&req); err != nil {
		logEntry.WithError(err).Warn("Invalid request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	result, err := h.teamMemberUseCase.AddMembers(c.Request().Context(), teamID, req.Emails)
	if err != nil {
		logEntry.WithError(err).Error("Failed to add team members")
		return h.respondError(c, err)
	}

	logEntry.WithField("members_count", len(result.Members)).Info("Team members added successfully")
	return c.JSON(http.StatusCreated, toAPITeamMembers(result))
}

// GetTeamMemberRemove отдает запрос подтверждения удаления участника
func (h *TeamMemberHandler) GetTeamMemberRemove(c echo.Context, teamID api.TeamId, developerEmail api.DeveloperEmail) error {
	logEntry := h.logRequest(c, "remove_team_member_prompt").WithFields(logrus.Fields{
		"team_id":   teamID,
		"developer": developerEmail,
	})

	ctx := c.Request().Context()
	team, developer, err := h.teamMemberUseCase.ResolveRoute(ctx, teamID, developerEmail)
	if err != nil {
		logEntry.WithError(err).Warn("Failed to resolve removal route")
		return h.respondError(c, err)
	}

	prompt := form.Build(ctx, h.removalForms.Build(team, developer, messenger.New()))

	logEntry.Info("Removal prompt rendered")
	return c.JSON(http.StatusOK, toAPIConfirmPrompt(prompt))
}

// PostTeamMemberRemove обрабатывает подтверждение или отмену удаления участника
func (h *TeamMemberHandler) PostTeamMemberRemove(c echo.Context, teamID api.TeamId, developerEmail api.DeveloperEmail) error {
	logEntry := h.logRequest(c, "remove_team_member").WithFields(logrus.Fields{
		"team_id":   teamID,
		"developer": developerEmail,
	})

	var req api.PostTeamMemberRemoveJSONRequestBody
	if err := c.Bind(&req); err != nil {
		logEntry.WithError(err).Warn("Failed to bind request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}
	if err := c.Validate(&req); err != nil {
		logEntry.WithError(err).Warn("Invalid request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	ctx := c.Request().Context()
	team, developer, err := h.teamMemberUseCase.ResolveRoute(ctx, teamID, developerEmail)
	if err != nil {
		logEntry.WithError(err).Warn("Failed to resolve removal route")
		return h.respondError(c, err)
	}

	msgs := messenger.New()
	result, err := form.Process(ctx, h.removalForms.Build(team, developer, msgs), form.Operation(req.Op))
	if err != nil {
		logEntry.WithError(err).Error("Failed to process removal form")
		return h.respondError(c, err)
	}

	status := http.StatusOK
	switch result.Outcome {
	case form.OutcomeCancelled:
		h.recorder.ObserveRemoval(domain.RemovalCancelled)
	case form.OutcomeRejected:
		status = http.StatusUnprocessableEntity
	}

	logEntry.WithFields(logrus.Fields{
		"outcome": result.Outcome,
		"errors":  len(msgs.ByType(messenger.TypeError)),
	}).Info("Removal form processed")
	return c.JSON(status, toAPIFormResult(result, msgs.All()))
}

func (h *TeamMemberHandler) respondError(c echo.Context, err error) error {
	if httpErr, exists := domain.ToHTTPError(err); exists {
		return c.JSON(getHTTPStatusCode(err), toAPIErrorResponse(httpErr))
	}
	return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", "internal server error"))
}
