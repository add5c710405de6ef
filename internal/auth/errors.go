package auth

// The four expected, user-facing failure modes of the credential store.
// All are recoverable: the caller redisplays the form with the message.

// ValidationError reports malformed input on a single field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ConflictError reports a signup against an email that already has an
// account.
type ConflictError struct {
	Email string
}

func (e *ConflictError) Error() string {
	return "An account with this email already exists."
}

// NotFoundError reports a login against an unknown email.
type NotFoundError struct {
	Email string
}

func (e *NotFoundError) Error() string {
	return "Account not found. Please sign up first."
}

// AuthError reports a password mismatch on login. It deliberately does not
// say which of email or password was wrong.
type AuthError struct{}

func (e *AuthError) Error() string {
	return "Invalid email or password."
}
