package service

import (
	"github.com/pkg/errors"
)

// Kind classifies the expected, user-facing failures of the services.
// Errors without a kind come from the store or other infrastructure.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindNotFound
	KindUnauthorized
	KindConflict
	KindInvalidCredentials
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindUnauthorized:
		return "unauthorized"
	case KindConflict:
		return "conflict"
	case KindInvalidCredentials:
		return "invalid credentials"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

const credentialsIncorrect = "credentials incorrect"

var (
	ErrBookmarkNotFound = &Error{Kind: KindNotFound, Message: "bookmark not found"}
	ErrUserNotFound     = &Error{Kind: KindNotFound, Message: "user not found"}
	ErrEmailTaken       = &Error{Kind: KindConflict, Message: "email is already taken"}

	// Login failures share one message whatever the cause.
	ErrLoginUserNotFound         = &Error{Kind: KindInvalidCredentials, Message: credentialsIncorrect}
	ErrLoginPasswordDoesNotMatch = &Error{Kind: KindInvalidCredentials, Message: credentialsIncorrect}
)

func errUnauthorized(action string) *Error {
	return &Error{Kind: KindUnauthorized, Message: "not authorized to " + action + " bookmark"}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
