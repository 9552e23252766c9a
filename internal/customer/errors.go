package customer

import (
	"errors"
	"fmt"
)

// Kind represents the category of a customer error.
type Kind int

const (
	// KindUnknown is the default kind when none is specified.
	KindUnknown Kind = iota
	// KindValidation indicates one or more draft fields failed validation.
	KindValidation
	// KindDuplicate indicates a new record's name collides with an existing one.
	KindDuplicate
	// KindNotFound indicates the target record no longer exists.
	KindNotFound
	// KindConflict indicates an id is already present in the store.
	KindConflict
	// KindUnconfirmed indicates a delete was attempted without a matching confirmation.
	KindUnconfirmed
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindDuplicate:
		return "duplicate"
	case KindNotFound:
		return "not found"
	case KindConflict:
		return "conflict"
	case KindUnconfirmed:
		return "unconfirmed"
	default:
		return "unknown"
	}
}

// User-facing messages shown next to the offending field.
const (
	MsgNameRequired  = "Name is required."
	MsgEmailInvalid  = "Email looks invalid."
	MsgPhoneInvalid  = "Phone looks invalid."
	MsgPhoneDigits   = "Phone must have at least 10 digits."
	MsgDuplicateName = "A customer with that name already exists."
)

// Error is a customer-module error with a typed Kind.
type Error struct {
	Kind    Kind
	Op      string      // Operation that failed, e.g. "submit".
	Message string
	Fields  FieldErrors // Inline field messages for validation and duplicate errors.
	Err     error       // Underlying error (optional).
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("customer: %s: %s", e.Op, e.Message)
	}
	return "customer: " + e.Message
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is, or wraps, an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

func validationError(op string, fe FieldErrors) *Error {
	return &Error{Kind: KindValidation, Op: op, Message: "draft is invalid", Fields: fe}
}

func duplicateError(op, name string) *Error {
	return &Error{
		Kind:    KindDuplicate,
		Op:      op,
		Message: fmt.Sprintf("name %q already exists", name),
		Fields:  FieldErrors{Name: MsgDuplicateName},
	}
}

func notFoundError(op, id string) *Error {
	return &Error{Kind: KindNotFound, Op: op, Message: fmt.Sprintf("record %q not found", id)}
}
