package apiclient

import (
	"context"
	"net/http"

	"github.com/laplogger/internal/model"
)

// AuthAPI выполняет неаутентифицированные вызовы. Токен не прикладывается, 401 означает неверные учётные данные
// и сессию не трогает. Реализует session.Authenticator.
type AuthAPI struct {
	c    *Client
	doer Doer
}

func (a *AuthAPI) Login(ctx context.Context, creds model.Credentials) (*model.AuthResponse, error) {
	if creds.Username == "" || creds.Password == "" {
		return nil, &APIError{Message: "username and password are required", Kind: ErrValidation}
	}
	var out model.AuthResponse
	if err := a.c.do(ctx, a.doer, call{method: http.MethodPost, path: "/auth/login", body: creds, authCall: true}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AuthAPI) Register(ctx context.Context, u model.NewUser) (*model.AuthResponse, error) {
	if u.Username == "" || u.Email == "" || u.Password == "" {
		return nil, &APIError{Message: "username, email and password are required", Kind: ErrValidation}
	}
	var out model.AuthResponse
	if err := a.c.do(ctx, a.doer, call{method: http.MethodPost, path: "/auth/register", body: u, authCall: true}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
