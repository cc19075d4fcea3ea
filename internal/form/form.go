// Package form реализует общий поток формы подтверждения:
// запрос "да/нет", отмена с переходом по ссылке отмены и
// цепочку проверка -> отправка при подтверждении.
package form

import (
	"context"
	"errors"
)

// Тексты по умолчанию
const (
	DefaultConfirmText = "Confirm"
	DefaultCancelText  = "Cancel"
	DefaultDescription = "This action cannot be undone."
)

// ErrUnknownOperation возвращается для операции, отличной от подтверждения и отмены.
var ErrUnknownOperation = errors.New("unknown form operation")

// Operation - действие пользователя над формой подтверждения.
type Operation string

const (
	OpConfirm Operation = "confirm"
	OpCancel  Operation = "cancel"
)

// Outcome - конечное состояние формы.
type Outcome string

const (
	OutcomeCancelled Outcome = "cancelled"
	OutcomeRejected  Outcome = "rejected"
	OutcomeSubmitted Outcome = "submitted"
)

// ConfirmForm - форма подтверждения, которую обслуживает этот пакет.
// Submit вызывается только если Validate не оставил ошибок в State.
type ConfirmForm interface {
	Question(ctx context.Context) string
	CancelURL() string
	Validate(ctx context.Context, state *State) error
	Submit(ctx context.Context, state *State)
}

// ConfirmTexter переопределяет текст кнопки подтверждения.
type ConfirmTexter interface {
	ConfirmText() string
}

// CancelTexter переопределяет текст ссылки отмены.
type CancelTexter interface {
	CancelText() string
}

// Describer переопределяет пояснение под вопросом.
type Describer interface {
	Description() string
}

// Prompt - отрисованный запрос подтверждения.
type Prompt struct {
	Question    string
	Description string
	ConfirmText string
	CancelText  string
	CancelURL   string
}

// Result - итог обработки формы.
type Result struct {
	Outcome  Outcome
	Redirect string
	Errors   []FieldError
}

// Build отрисовывает запрос подтверждения для формы.
func Build(ctx context.Context, f ConfirmForm) Prompt {
	prompt := Prompt{
		Question:    f.Question(ctx),
		Description: DefaultDescription,
		ConfirmText: DefaultConfirmText,
		CancelText:  DefaultCancelText,
		CancelURL:   f.CancelURL(),
	}

	if d, ok := f.(Describer); ok {
		prompt.Description = d.Description()
	}
	if c, ok := f.(ConfirmTexter); ok {
		prompt.ConfirmText = c.ConfirmText()
	}
	if c, ok := f.(CancelTexter); ok {
		prompt.CancelText = c.CancelText()
	}

	return prompt
}

// Process проводит форму из ожидания подтверждения в конечное состояние.
// Ошибка возвращается только если Validate не смог выполнить проверку.
func Process(ctx context.Context, f ConfirmForm, op Operation) (*Result, error) {
	switch op {
	case OpCancel:
		return &Result{
			Outcome:  OutcomeCancelled,
			Redirect: f.CancelURL(),
		}, nil

	case OpConfirm:
		state := NewState()
		if err := f.Validate(ctx, state); err != nil {
			return nil, err
		}

		if state.HasErrors() {
			return &Result{
				Outcome:  OutcomeRejected,
				Redirect: redirectOrDefault(state, f),
				Errors:   state.Errors(),
			}, nil
		}

		f.Submit(ctx, state)

		return &Result{
			Outcome:  OutcomeSubmitted,
			Redirect: redirectOrDefault(state, f),
		}, nil

	default:
		return nil, ErrUnknownOperation
	}
}

func redirectOrDefault(state *State, f ConfirmForm) string {
	if redirect := state.Redirect(); redirect != "" {
		return redirect
	}
	return f.CancelURL()
}
