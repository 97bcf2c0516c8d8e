package service

import "errors"

// AuthErrorKind classifies a failed auth operation for the caller: the
// message is displayed either way, the kind decides the response status.
type AuthErrorKind string

const (
	KindValidation AuthErrorKind = "validation"
	KindCredential AuthErrorKind = "credential"
	KindNetwork    AuthErrorKind = "network"
	KindUnknown    AuthErrorKind = "unknown"
)

type AuthError struct {
	Kind    AuthErrorKind
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

func newAuthError(kind AuthErrorKind, message string) *AuthError {
	return &AuthError{Kind: kind, Message: message}
}

// AsAuthError unwraps err into an AuthError, defaulting to KindUnknown so
// every failure still carries a displayable message.
func AsAuthError(err error) *AuthError {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr
	}
	return &AuthError{Kind: KindUnknown, Message: err.Error()}
}

// ErrOperationInFlight rejects re-entry while the same operation is still
// pending, instead of racing two submissions.
var ErrOperationInFlight = errors.New("operation already in progress")
