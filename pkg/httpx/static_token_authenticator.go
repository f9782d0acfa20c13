package httpx

import "context"

// StaticTokenAuthenticator issues a fixed bearer token from configuration.
// Authenticate is a no-op since the token never expires or rotates.
type StaticTokenAuthenticator struct {
	token string
}

func NewStaticTokenAuthenticator(token string) StaticTokenAuthenticator {
	return StaticTokenAuthenticator{
		token: token,
	}
}

func (a StaticTokenAuthenticator) Authenticate(context.Context) error {
	return nil
}

func (a StaticTokenAuthenticator) BearerToken() string {
	return a.token
}
