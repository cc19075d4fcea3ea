package domain

import "errors"

// Domain errors (для бизнес-логики)
var (
	// Validation errors
	ErrInvalidTeamID         = errors.New("invalid team id")
	ErrInvalidDeveloperEmail = errors.New("invalid developer email")
	ErrNoMembersGiven        = errors.New("no members given")
	ErrUnsupportedProperty   = errors.New("unsupported user property")

	// Team errors
	ErrTeamNotFound      = errors.New("team not found")
	ErrTeamAlreadyExists = errors.New("team already exists")

	// Developer errors
	ErrDeveloperNotFound = errors.New("developer not found")

	// Membership errors
	ErrAlreadyMember = errors.New("developer is already a team member")
	ErrNotTeamMember = errors.New("developer is not a team member")
)

// HTTPError для соответствия OpenAPI
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error HTTPError `json:"error"`
}

// Маппинг domain ошибок в HTTP ошибки
var ErrorMapping = map[error]HTTPError{
	ErrInvalidTeamID:         {Code: "INVALID_REQUEST", Message: "team_id is required"},
	ErrInvalidDeveloperEmail: {Code: "INVALID_REQUEST", Message: "developer email is invalid"},
	ErrNoMembersGiven:        {Code: "INVALID_REQUEST", Message: "at least one member email is required"},
	ErrTeamNotFound:          {Code: "NOT_FOUND", Message: "team not found"},
	ErrTeamAlreadyExists:     {Code: "TEAM_EXISTS", Message: "team_id already exists"},
	ErrDeveloperNotFound:     {Code: "NOT_FOUND", Message: "developer not found"},
	ErrAlreadyMember:         {Code: "ALREADY_MEMBER", Message: "developer is already a team member"},
	ErrNotTeamMember:         {Code: "NOT_MEMBER", Message: "developer is not a team member"},
}

// ToHTTPError преобразует domain ошибку в HTTP ошибку
func ToHTTPError(err error) (HTTPError, bool) {
	for domainErr, httpErr := range ErrorMapping {
		if errors.Is(err, domainErr) {
			return httpErr, true
		}
	}
	return HTTPError{}, false
}
