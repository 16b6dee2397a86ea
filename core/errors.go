// Domain error taxonomy shared by services and handlers.
// Handlers map these onto HTTP statuses; services never import net/http.
package core

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means an entity lookup missed (user id, product sku, purchase id).
	ErrNotFound = errors.New("not found")

	// ErrConflict means a uniqueness rule was violated (duplicate email or sku).
	ErrConflict = errors.New("already exists")

	// ErrInvalidCredentials covers both a wrong password and an unknown email.
	// Keeping them as one error is deliberate so responses do not reveal
	// whether an email is registered.
	ErrInvalidCredentials = errors.New("wrong email or password")

	// ErrValidation flags malformed request values, e.g. page_size of 0.
	ErrValidation = errors.New("validation failure")
)

// LockedOutError rejects a login while the failed-attempt lockout is active.
// It carries the remaining cooldown so the handler can tell the client when
// to retry.
type LockedOutError struct {
	RemainingMinutes int
}

func (e *LockedOutError) Error() string {
	return fmt.Sprintf("too many failed login attempts, try again in %d minute(s)", e.RemainingMinutes)
}

// IsLockedOut unwraps err to a *LockedOutError if it is one.
func IsLockedOut(err error) (*LockedOutError, bool) {
	var le *LockedOutError
	if errors.As(err, &le) {
		return le, true
	}
	return nil, false
}
