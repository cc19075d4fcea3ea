package handler

import (
	"errors"
	"fmt"
	"net/http"

	"team-member-service/api"
	"team-member-service/internal/domain"
	"team-member-service/internal/form"
	"team-member-service/internal/messenger"
)

// Вспомогательные функции преобразования доменных моделей в API модели

func toAPITeamMembers(result *domain.TeamMembers) api.TeamMembers {
	members := make([]api.TeamMember, len(result.Members))
	for i, member := range result.Members {
		members[i] = api.TeamMember{
			Email: member.Email,
			Label: member.Label,
		}
	}
	return api.TeamMembers{
		TeamId:   result.Team.ID,
		TeamName: result.Team.Name,
		Members:  members,
	}
}

func toAPIConfirmPrompt(prompt form.Prompt) api.ConfirmPrompt {
	return api.ConfirmPrompt{
		Question:    prompt.Question,
		Description: prompt.Description,
		ConfirmText: prompt.ConfirmText,
		CancelText:  prompt.CancelText,
		CancelUrl:   prompt.CancelURL,
	}
}

func toAPIFormResult(result *form.Result, messages []messenger.Message) api.FormResult {
	out := api.FormResult{
		Outcome:  api.FormResultOutcome(result.Outcome),
		Redirect: result.Redirect,
		Messages: make([]api.Message, len(messages)),
	}

	for i, msg := range messages {
		out.Messages[i] = api.Message{
			Type: api.MessageType(msg.Type),
			Text: msg.Text,
		}
	}

	for _, formErr := range result.Errors {
		apiErr := api.FormError{Message: formErr.Message}
		if formErr.Field != "" {
			field := formErr.Field
			apiErr.Field = &field
		}
		out.Errors = append(out.Errors, apiErr)
	}

	return out
}

// membersETag - слабый ETag списка участников, меняется при инвалидации кэш-тега.
func membersETag(result *domain.TeamMembers) string {
	return fmt.Sprintf(`W/"%s-%d"`, result.Team.ID, result.Checksum)
}

func toErrorResponse(code, message string) api.ErrorResponse {
	return api.ErrorResponse{
		Error: struct {
			Code    api.ErrorResponseErrorCode `json:"code"`
			Message string                     `json:"message"`
		}{
			Code:    api.ErrorResponseErrorCode(code),
			Message: message,
		},
	}
}

func toAPIErrorResponse(httpErr domain.HTTPError) api.ErrorResponse {
	return toErrorResponse(httpErr.Code, httpErr.Message)
}

func getHTTPStatusCode(err error) int {
	switch {
	// Conflict errors (409)
	case errors.Is(err, domain.ErrTeamAlreadyExists), errors.Is(err, domain.ErrAlreadyMember),
		errors.Is(err, domain.ErrNotTeamMember):
		return http.StatusConflict

	// Not Found errors (404)
	case errors.Is(err, domain.ErrTeamNotFound), errors.Is(err, domain.ErrDeveloperNotFound):
		return http.StatusNotFound

	// Bad Request errors (400) - валидация
	case errors.Is(err, domain.ErrInvalidTeamID), errors.Is(err, domain.ErrInvalidDeveloperEmail),
		errors.Is(err, domain.ErrNoMembersGiven):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}
