// Package api содержит модели и привязку маршрутов HTTP API в стиле oapi-codegen.
package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Defines values for ConfirmSubmissionOp.
const (
	ConfirmSubmissionOpCancel  ConfirmSubmissionOp = "cancel"
	ConfirmSubmissionOpConfirm ConfirmSubmissionOp = "confirm"
)

// Defines values for FormResultOutcome.
const (
	FormResultOutcomeCancelled FormResultOutcome = "cancelled"
	FormResultOutcomeRejected  FormResultOutcome = "rejected"
	FormResultOutcomeSubmitted FormResultOutcome = "submitted"
)

// Defines values for MessageType.
const (
	MessageTypeError  MessageType = "error"
	MessageTypeStatus MessageType = "status"
)

// Defines values for ErrorResponseErrorCode.
const (
	ALREADYMEMBER  ErrorResponseErrorCode = "ALREADY_MEMBER"
	INTERNALERROR  ErrorResponseErrorCode = "INTERNAL_ERROR"
	INVALIDREQUEST ErrorResponseErrorCode = "INVALID_REQUEST"
	NOTFOUND       ErrorResponseErrorCode = "NOT_FOUND"
	NOTMEMBER      ErrorResponseErrorCode = "NOT_MEMBER"
	TEAMEXISTS     ErrorResponseErrorCode = "TEAM_EXISTS"
)

// AddTeamMembersRequest defines model for AddTeamMembersRequest.
type AddTeamMembersRequest struct {
	Emails []string `json:"emails" validate:"required,min=1,dive,required,email"`
}

// ConfirmPrompt defines model for ConfirmPrompt.
type ConfirmPrompt struct {
	CancelText  string `json:"cancel_text"`
	CancelUrl   string `json:"cancel_url"`
	ConfirmText string `json:"confirm_text"`
	Description string `json:"description"`
	Question    string `json:"question"`
}

// ConfirmSubmission defines model for ConfirmSubmission.
type ConfirmSubmission struct {
	Op ConfirmSubmissionOp `json:"op" validate:"required,oneof=confirm cancel"`
}

// ConfirmSubmissionOp defines model for ConfirmSubmission.Op.
type ConfirmSubmissionOp string

// ErrorResponse defines model for ErrorResponse.
type ErrorResponse struct {
	Error struct {
		Code    ErrorResponseErrorCode `json:"code"`
		Message string                 `json:"message"`
	} `json:"error"`
}

// ErrorResponseErrorCode defines model for ErrorResponse.Error.Code.
type ErrorResponseErrorCode string

// FormError defines model for FormError.
type FormError struct {
	Field   *string `json:"field,omitempty"`
	Message string  `json:"message"`
}

// FormResult defines model for FormResult.
type FormResult struct {
	Errors   []FormError       `json:"errors,omitempty"`
	Messages []Message         `json:"messages"`
	Outcome  FormResultOutcome `json:"outcome"`
	Redirect string            `json:"redirect"`
}

// FormResultOutcome defines model for FormResult.Outcome.
type FormResultOutcome string

// Message defines model for Message.
type Message struct {
	Text string      `json:"text"`
	Type MessageType `json:"type"`
}

// MessageType defines model for Message.Type.
type MessageType string

// TeamMember defines model for TeamMember.
type TeamMember struct {
	Email string `json:"email"`
	Label string `json:"label"`
}

// TeamMembers defines model for TeamMembers.
type TeamMembers struct {
	Members  []TeamMember `json:"members"`
	TeamId   string       `json:"team_id"`
	TeamName string       `json:"team_name"`
}

// DeveloperEmail defines model for DeveloperEmail.
type DeveloperEmail = string

// TeamId defines model for TeamId.
type TeamId = string

// GetTeamMembersParams defines parameters for GetTeamMembers.
type GetTeamMembersParams struct {
	IfNoneMatch *string `json:"If-None-Match,omitempty"`
}

// PostTeamMembersJSONRequestBody defines body for PostTeamMembers for application/json ContentType.
type PostTeamMembersJSONRequestBody = AddTeamMembersRequest

// PostTeamMemberRemoveJSONRequestBody defines body for PostTeamMemberRemove for application/json ContentType.
type PostTeamMemberRemoveJSONRequestBody = ConfirmSubmission

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List team members
	// (GET /teams/{team_id}/members)
	GetTeamMembers(ctx echo.Context, teamId TeamId, params GetTeamMembersParams) error
	// Add developers to a team
	// (POST /teams/{team_id}/members)
	PostTeamMembers(ctx echo.Context, teamId TeamId) error
	// Render the member removal confirmation prompt
	// (GET /teams/{team_id}/members/{developer}/remove)
	GetTeamMemberRemove(ctx echo.Context, teamId TeamId, developer DeveloperEmail) error
	// Confirm or cancel the member removal
	// (POST /teams/{team_id}/members/{developer}/remove)
	PostTeamMemberRemove(ctx echo.Context, teamId TeamId, developer DeveloperEmail) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetTeamMembers converts echo context to params.
func (w *ServerInterfaceWrapper) GetTeamMembers(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "team_id" -------------
	var teamId TeamId

	err = runtime.BindStyledParameterWithOptions("simple", "team_id", ctx.Param("team_id"), &teamId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter team_id: %s", err))
	}

	// Parameter object where we will unmarshal all parameters from the context
	var params GetTeamMembersParams

	headers := ctx.Request().Header
	// ------------- Optional header parameter "If-None-Match" -------------
	if valueList, found := headers[http.CanonicalHeaderKey("If-None-Match")]; found {
		var IfNoneMatch string
		n := len(valueList)
		if n != 1 {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Expected one value for If-None-Match, got %d", n))
		}

		err = runtime.BindStyledParameterWithOptions("simple", "If-None-Match", valueList[0], &IfNoneMatch, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationHeader, Explode: false, Required: false})
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter If-None-Match: %s", err))
		}

		params.IfNoneMatch = &IfNoneMatch
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetTeamMembers(ctx, teamId, params)
	return err
}

// PostTeamMembers converts echo context to params.
func (w *ServerInterfaceWrapper) PostTeamMembers(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "team_id" -------------
	var teamId TeamId

	err = runtime.BindStyledParameterWithOptions("simple", "team_id", ctx.Param("team_id"), &teamId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter team_id: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.PostTeamMembers(ctx, teamId)
	return err
}

// GetTeamMemberRemove converts echo context to params.
func (w *ServerInterfaceWrapper) GetTeamMemberRemove(ctx echo.Context) error {
	teamId, developer, err := bindRemoveParams(ctx)
	if err != nil {
		return err
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetTeamMemberRemove(ctx, teamId, developer)
	return err
}

// PostTeamMemberRemove converts echo context to params.
func (w *ServerInterfaceWrapper) PostTeamMemberRemove(ctx echo.Context) error {
	teamId, developer, err := bindRemoveParams(ctx)
	if err != nil {
		return err
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.PostTeamMemberRemove(ctx, teamId, developer)
	return err
}

func bindRemoveParams(ctx echo.Context) (TeamId, DeveloperEmail, error) {
	// ------------- Path parameter "team_id" -------------
	var teamId TeamId

	err := runtime.BindStyledParameterWithOptions("simple", "team_id", ctx.Param("team_id"), &teamId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter team_id: %s", err))
	}

	// ------------- Path parameter "developer" -------------
	var developer DeveloperEmail

	err = runtime.BindStyledParameterWithOptions("simple", "developer", ctx.Param("developer"), &developer, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter developer: %s", err))
	}

	return teamId, developer, nil
}

// This is a simple interface which specifies echo.Route addition functions which
// are present on both echo.Echo and echo.Group, since we want to allow using
// either of them for path registration
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// Registers handlers, and prepends BaseURL to the paths, so that the paths
// can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {

	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/teams/:team_id/members", wrapper.GetTeamMembers)
	router.POST(baseURL+"/teams/:team_id/members", wrapper.PostTeamMembers)
	router.GET(baseURL+"/teams/:team_id/members/:developer/remove", wrapper.GetTeamMemberRemove)
	router.POST(baseURL+"/teams/:team_id/members/:developer/remove", wrapper.PostTeamMemberRemove)

}
