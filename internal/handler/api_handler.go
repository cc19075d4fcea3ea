package handler

import (
	"team-member-service/api"
	"team-member-service/internal/domain"

	"github.com/sirupsen/logrus"
)

type APIHandler struct {
	*TeamMemberHandler
}

func NewAPIHandler(
	teamMemberUseCase domain.TeamMemberUseCase,
	removalForms RemovalFormBuilder,
	recorder domain.RemovalRecorder,
	logger *logrus.Logger,
) api.ServerInterface {

	return &APIHandler{
		TeamMemberHandler: NewTeamMemberHandler(teamMemberUseCase, removalForms, recorder, logger),
	}
}
