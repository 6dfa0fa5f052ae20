package identity

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials is returned for any credential pair that does not
	// authenticate. It never says which half was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnavailable means the provider could not be reached or failed
	// internally.
	ErrUnavailable = errors.New("identity provider unavailable")
)

// ProviderError carries a message reported by the provider. Message is meant
// to be shown to the user as is.
type ProviderError struct {
	Status  int
	Message string
}

func (e *ProviderError) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

// Message extracts the user-facing text of err: the verbatim provider message
// for a ProviderError and err.Error() otherwise.
func Message(err error) string {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Message
	}
	return err.Error()
}
