package apiclient

import (
	"context"
	"net/http"

	"github.com/laplogger/internal/logger"
)

// Doer выполняет один HTTP-запрос. *http.Client его реализует.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// DoerFunc позволяет использовать функцию как Doer (декораторы, тесты).
type DoerFunc func(req *http.Request) (*http.Response, error)

func (f DoerFunc) Do(req *http.Request) (*http.Response, error) { return f(req) }

// SessionContext описывает то, что транспорту нужно от session.Store.
type SessionContext interface {
	CurrentToken() (string, bool)
	Logout(ctx context.Context) error
}

// WithSession оборачивает транспорт защищённых вызовов:
// прикладывает bearer-токен, если он есть, а на 401 закрывает сессию и возвращает ErrAuthorization.
// Повторов нет: решение о повторе остаётся за вызывающим.
func WithSession(next Doer, sess SessionContext) Doer {
	return DoerFunc(func(req *http.Request) (*http.Response, error) {
		if token, ok := sess.CurrentToken(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		resp, err := next.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusUnauthorized {
			return resp, nil
		}
		apiErr := readAPIError(resp, ErrAuthorization)
		logger.Infof("%s %s: session rejected by server, logging out", req.Method, req.URL.Path)
		// ключи стираем даже при отменённом контексте вызывающего
		if err := sess.Logout(context.WithoutCancel(req.Context())); err != nil {
			logger.Errorf("forced logout: %v", err)
		}
		return nil, apiErr
	})
}
