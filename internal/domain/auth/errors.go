package auth

import "errors"

var (
	// ErrInvalidCredentials: no user has this username/password pair
	ErrInvalidCredentials = errors.New("invalid credentials, please verify your username and password")
	// ErrAccountNotApproved: the pair matched but the account is not approved
	ErrAccountNotApproved = errors.New("your access has been revoked or is pending activation, contact admin")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
