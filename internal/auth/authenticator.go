package auth

import (
	"context"
	"errors"
)

var ErrInvalidToken = errors.New("invalid token")

type Principal struct {
	Issuer   string
	Subject  string
	Audience any
	Claims   map[string]any
}

type Authenticator interface {
	Authenticate(ctx context.Context, bearerToken string) (Principal, error)
}
