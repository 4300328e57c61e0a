package apperrors

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

type Kind string

const (
	KindNotFound               Kind = "NOT_FOUND"
	KindForbidden              Kind = "FORBIDDEN"
	KindInvalidTransition      Kind = "INVALID_TRANSITION"
	KindRuleViolation          Kind = "RULE_VIOLATION"
	KindAlreadyInTerminalState Kind = "ALREADY_IN_TERMINAL_STATE"
	KindAlreadyCompleted       Kind = "ALREADY_COMPLETED"
	KindConflict               Kind = "CONFLICT"
	KindValidation             Kind = "VALIDATION"
	KindInternal               Kind = "INTERNAL"
)

// Error ошибка бизнес-логики с типом и понятным пользователю текстом
type Error struct {
	Kind    Kind
	Message string
	// Allowed допустимые переходы для KindInvalidTransition
	Allowed []string
}

func (e *Error) Error() string {
	if len(e.Allowed) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (допустимые переходы: %s)", e.Message, strings.Join(e.Allowed, ", "))
}

func newError(kind Kind, format string, args ...any) error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

func NotFound(format string, args ...any) error {
	return newError(KindNotFound, format, args...)
}

func Forbidden(format string, args ...any) error {
	return newError(KindForbidden, format, args...)
}

func InvalidTransition(allowed []string, format string, args ...any) error {
	return &Error{
		Kind:    KindInvalidTransition,
		Message: fmt.Sprintf(format, args...),
		Allowed: allowed,
	}
}

func RuleViolation(format string, args ...any) error {
	return newError(KindRuleViolation, format, args...)
}

func AlreadyInTerminalState(format string, args ...any) error {
	return newError(KindAlreadyInTerminalState, format, args...)
}

func AlreadyCompleted(format string, args ...any) error {
	return newError(KindAlreadyCompleted, format, args...)
}

func Conflict(format string, args ...any) error {
	return newError(KindConflict, format, args...)
}

func Validation(format string, args ...any) error {
	return newError(KindValidation, format, args...)
}

// KindOf тип ошибки, для ошибок без типа - KindInternal
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
