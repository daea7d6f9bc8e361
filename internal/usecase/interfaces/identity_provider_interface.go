package interfaces

import "context"

// IdentitySession is a successful authentication result.
type IdentitySession struct {
	UserID      string
	DisplayName string
	AccessToken string
	IDToken     string
}

// IIdentityProvider abstracts the external identity provider (Cognito).
//
// The core never sees or stores raw passwords beyond passing them through
// these two calls. Authenticate returns ErrBadCredentials on a wrong
// password and ErrAccountNotFound on an unknown identifier.
type IIdentityProvider interface {
	Authenticate(ctx context.Context, mobile, password string) (IdentitySession, error)
	// CreateAccount provisions the account and returns the provider user id;
	// ErrAccountExists when the mobile is already registered.
	CreateAccount(ctx context.Context, name, mobile, password string) (string, error)
}
