// Package session хранит единственную клиентскую сессию: bearer-токен и профиль пользователя.
//
// Store создаётся один раз при старте процесса и передаётся по ссылке всем, кому нужен токен
// или принудительный выход. Сетевой логики в нём нет: вход делегируется Authenticator,
// а состояние сохраняется в storage.KV под ключами KeyToken и KeyUser.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/laplogger/internal/logger"
	"github.com/laplogger/internal/model"
	"github.com/laplogger/internal/storage"
)

const (
	KeyToken = "token"
	KeyUser  = "user"
)

var ErrEmptyToken = errors.New("server returned empty token")

// State задаёт состояние сессии.
type State int

const (
	Anonymous State = iota
	Authenticated
)

func (s State) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "anonymous"
}

// Authenticator выполняет неаутентифицированные вызовы сервера (реализует apiclient.AuthAPI).
type Authenticator interface {
	Login(ctx context.Context, creds model.Credentials) (*model.AuthResponse, error)
	Register(ctx context.Context, u model.NewUser) (*model.AuthResponse, error)
}

type Store struct {
	mu       sync.RWMutex
	kv       storage.KV
	auth     Authenticator
	current  *model.Session
	onLogout []func()
}

func New(kv storage.KV, auth Authenticator) *Store {
	return &Store{kv: kv, auth: auth}
}

// SetAuthenticator нужен, когда клиент API создаётся после Store (клиент сам зависит от Store).
func (s *Store) SetAuthenticator(auth Authenticator) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auth = auth
}

// OnLogout регистрирует обработчик перехода Authenticated -> Anonymous
// (например, CLI печатает подсказку "выполните login").
func (s *Store) OnLogout(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onLogout = append(s.onLogout, fn)
}

// Restore поднимает сохранённую сессию без обращения к серверу: проверка токена откладывается до первого запроса.
func (s *Store) Restore(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	token, err := s.kv.Get(ctx, KeyToken)
	if err != nil {
		return fmt.Errorf("session restore: %w", err)
	}
	if token == "" {
		s.current = nil
		return nil
	}
	var user model.User
	raw, err := s.kv.Get(ctx, KeyUser)
	if err != nil {
		return fmt.Errorf("session restore: %w", err)
	}
	if raw != "" {
		if err := json.Unmarshal([]byte(raw), &user); err != nil {
			// битый профиль: сессию не поднимаем, чистим оба ключа
			s.current = nil
			clearErr := s.clearLocked(ctx)
			return errors.Join(fmt.Errorf("session restore: decode user: %w", err), clearErr)
		}
	}
	s.current = &model.Session{Token: token, User: user}
	logger.Debugf("session restored for %q", user.Username)
	return nil
}

// Login входит через Authenticator и сохраняет токен и профиль.
// При ошибке состояние не меняется, ошибка возвращается вызывающему для показа.
func (s *Store) Login(ctx context.Context, creds model.Credentials) (*model.Session, error) {
	auth := s.authenticator()
	if auth == nil {
		return nil, errors.New("session: no authenticator configured")
	}
	resp, err := auth.Login(ctx, creds)
	if err != nil {
		return nil, err
	}
	return s.commit(ctx, resp)
}

// Register создаёт пользователя; сервер сразу выдаёт токен, поэтому сессия тоже открывается.
func (s *Store) Register(ctx context.Context, u model.NewUser) (*model.Session, error) {
	auth := s.authenticator()
	if auth == nil {
		return nil, errors.New("session: no authenticator configured")
	}
	resp, err := auth.Register(ctx, u)
	if err != nil {
		return nil, err
	}
	return s.commit(ctx, resp)
}

func (s *Store) commit(ctx context.Context, resp *model.AuthResponse) (*model.Session, error) {
	if resp == nil || resp.Token == "" {
		return nil, ErrEmptyToken
	}
	userJSON, err := json.Marshal(resp.User)
	if err != nil {
		return nil, fmt.Errorf("session: encode user: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.kv.Set(ctx, KeyToken, resp.Token); err != nil {
		return nil, fmt.Errorf("session persist token: %w", err)
	}
	if err := s.kv.Set(ctx, KeyUser, string(userJSON)); err != nil {
		// не оставляем токен без профиля
		_ = s.kv.Remove(ctx, KeyToken)
		return nil, fmt.Errorf("session persist user: %w", err)
	}
	s.current = &model.Session{Token: resp.Token, User: resp.User}
	logger.Infof("logged in as %q", resp.User.Username)
	cp := *s.current
	return &cp, nil
}

// Logout безусловно удаляет токен и профиль. Повторный вызов безопасен.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	wasAuthenticated := s.current != nil
	s.current = nil
	err := s.clearLocked(ctx)
	hooks := append([]func(){}, s.onLogout...)
	s.mu.Unlock()

	if wasAuthenticated {
		logger.Info("session cleared")
		for _, fn := range hooks {
			fn()
		}
	}
	return err
}

func (s *Store) clearLocked(ctx context.Context) error {
	return errors.Join(s.kv.Remove(ctx, KeyToken), s.kv.Remove(ctx, KeyUser))
}

// CurrentToken читает токен без сетевых вызовов.
func (s *Store) CurrentToken() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return "", false
	}
	return s.current.Token, true
}

// Current возвращает копию текущей сессии или nil.
func (s *Store) Current() *model.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	cp := *s.current
	return &cp
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return Anonymous
	}
	return Authenticated
}

func (s *Store) authenticator() Authenticator {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.auth
}
