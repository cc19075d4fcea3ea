package form

// FieldError - ошибка проверки формы. Field пустой для ошибок всей формы.
type FieldError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// State хранит ошибки и адрес перехода одной обработки формы.
type State struct {
	errors   []FieldError
	redirect string
}

func NewState() *State {
	return &State{}
}

func (s *State) SetError(field, message string) {
	s.errors = append(s.errors, FieldError{Field: field, Message: message})
}

func (s *State) HasErrors() bool {
	return len(s.errors) > 0
}

// Errors возвращает ошибки в порядке добавления.
func (s *State) Errors() []FieldError {
	out := make([]FieldError, len(s.errors))
	copy(out, s.errors)
	return out
}

func (s *State) SetRedirect(url string) {
	s.redirect = url
}

func (s *State) Redirect() string {
	return s.redirect
}
