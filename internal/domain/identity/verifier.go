package identity

import "context"

// UserInfo is the identity extracted from a verified credential. Subject
// is the provider's stable user id and keys all persisted state.
type UserInfo struct {
	Subject string
	Email   string
	Name    string
	Picture string
}

// Verifier turns an opaque session credential into a stable identity or
// fails with an authentication error.
type Verifier interface {
	Verify(ctx context.Context, credential string) (*UserInfo, error)
}
