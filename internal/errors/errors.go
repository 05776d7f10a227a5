package errors

import (
	"errors"
	"fmt"
)

// BadRequestError represents malformed or rejected input. The reason is
// always safe to surface to the caller.
type BadRequestError struct {
	Reason string
}

func (e *BadRequestError) Error() string {
	return e.Reason
}

// Is enables errors.Is() comparison for BadRequestError
func (e *BadRequestError) Is(target error) bool {
	t, ok := target.(*BadRequestError)
	if !ok {
		return false
	}
	return t.Reason == "" || e.Reason == t.Reason
}

// UnauthorizedError represents a missing, invalid, or banned credential, an
// insufficient role, or an ownership mismatch. Distinct from BadRequestError
// so callers can tell "fix your request" from "you may not do this."
type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string {
	if e.Message == "" {
		return "unauthorized"
	}
	return e.Message
}

// Is enables errors.Is() comparison for UnauthorizedError
func (e *UnauthorizedError) Is(target error) bool {
	_, ok := target.(*UnauthorizedError)
	return ok
}

// InternalError wraps an unexpected storage or decode failure. The cause is
// logged server-side; callers only ever see an opaque message.
type InternalError struct {
	Cause error
}

func (e *InternalError) Error() string {
	return "internal server error"
}

func (e *InternalError) Unwrap() error {
	return e.Cause
}

// Outcome sentinels
var (
	// ErrNoContent is the non-error outcome of a well-formed query that
	// legitimately matched nothing.
	ErrNoContent = errors.New("no content")

	// ErrUpstreamTimeout signals identity-provider slowness; callers may retry.
	ErrUpstreamTimeout = errors.New("upstream timeout")
)

// Mod registry errors
var (
	ErrModNotFound     = &BadRequestError{Reason: "This mod does not exist."}
	ErrDuplicateVote   = &BadRequestError{Reason: "You have already submitted a verification for this mod."}
	ErrTeamNameTaken   = &BadRequestError{Reason: "A team with the same name already exists"}
	ErrInvalidChecksum = &BadRequestError{Reason: "Invalid checksum format"}
	ErrQueryTooLong    = &BadRequestError{Reason: "Max query length exceeded (64)"}
	ErrNotModOwner     = &UnauthorizedError{Message: "You do not own this mod"}
	ErrNotVerifier     = &UnauthorizedError{Message: "User not allowed to verify."}
	ErrTokenNotBound   = &UnauthorizedError{Message: "Token provided not bound to a user."}
	ErrBannedUser      = &UnauthorizedError{Message: "Banned User"}
	ErrInviteExhausted = errors.New("invite code space exhausted")
)

// Helper Functions

// IsBadRequest checks if an error is a BadRequestError
func IsBadRequest(err error) bool {
	var badReq *BadRequestError
	return errors.As(err, &badReq)
}

// IsUnauthorized checks if an error is an UnauthorizedError
func IsUnauthorized(err error) bool {
	var unauth *UnauthorizedError
	return errors.As(err, &unauth)
}

// IsNoContent checks if an error is the NoContent outcome
func IsNoContent(err error) bool {
	return errors.Is(err, ErrNoContent)
}

// IsInternal checks if an error is an InternalError
func IsInternal(err error) bool {
	var internal *InternalError
	return errors.As(err, &internal)
}

// NewBadRequest creates a BadRequestError with a formatted reason
func NewBadRequest(format string, args ...interface{}) error {
	return &BadRequestError{Reason: fmt.Sprintf(format, args...)}
}

// NewUnauthorized creates an UnauthorizedError with a custom message
func NewUnauthorized(message string) error {
	return &UnauthorizedError{Message: message}
}

// NewInternal wraps an unexpected failure as an InternalError
func NewInternal(cause error) error {
	return &InternalError{Cause: cause}
}
