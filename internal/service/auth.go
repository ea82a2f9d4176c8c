package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/laplogger/internal/logger"
	"github.com/laplogger/internal/model"
	"github.com/laplogger/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrUserExists         = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// DefaultTokenTTL задаёт срок жизни токена, как у исходного сервера.
const DefaultTokenTTL = 24 * time.Hour

func maskToken(s string) string {
	s = strings.TrimSpace(s)
	if len(s) <= 4 {
		return "****"
	}
	return s[:4] + "***"
}

// AuthService выдаёт и проверяет HS256 JWT. jti каждого токена можно отозвать, чтобы сымитировать
// истёкшую на сервере сессию.
type AuthService struct {
	repo    *repository.Store
	secret  []byte
	ttl     time.Duration
	cost    int
	mu      sync.RWMutex
	revoked map[string]struct{}
}

type AuthOption func(*AuthService)

// WithBcryptCost задаёт стоимость bcrypt; в тестах bcrypt.MinCost, чтобы не ждать хеширования.
func WithBcryptCost(cost int) AuthOption {
	return func(s *AuthService) { s.cost = cost }
}

func WithTokenTTL(ttl time.Duration) AuthOption {
	return func(s *AuthService) { s.ttl = ttl }
}

func NewAuthService(repo *repository.Store, secret string, opts ...AuthOption) *AuthService {
	s := &AuthService{
		repo:    repo,
		secret:  []byte(secret),
		ttl:     DefaultTokenTTL,
		cost:    bcrypt.DefaultCost,
		revoked: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *AuthService) Register(ctx context.Context, req model.NewUser) (*model.AuthResponse, error) {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: username, email, and password are required", ErrInvalidInput)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user, err := s.repo.CreateUser(ctx, req.Username, req.Email, string(hash))
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserExists
		}
		return nil, err
	}
	token, err := s.issue(user)
	if err != nil {
		return nil, err
	}
	logger.Infof("registered user %q", user.Username)
	return &model.AuthResponse{Token: token, User: *user}, nil
}

func (s *AuthService) Login(ctx context.Context, creds model.Credentials) (*model.AuthResponse, error) {
	if creds.Username == "" || creds.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}
	user, hash, err := s.repo.GetUserByUsername(ctx, creds.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(creds.Password)) != nil {
		return nil, ErrInvalidCredentials
	}
	token, err := s.issue(user)
	if err != nil {
		return nil, err
	}
	return &model.AuthResponse{Token: token, User: *user}, nil
}

func (s *AuthService) issue(user *model.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"jti":      uuid.NewString(),
		"exp":      now.Add(s.ttl).Unix(),
		"iat":      now.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

// ValidateToken возвращает user_id из валидного, не истёкшего и не отозванного токена.
func (s *AuthService) ValidateToken(ctx context.Context, tokenString string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}
	if jti, _ := claims["jti"].(string); jti != "" {
		s.mu.RLock()
		_, gone := s.revoked[jti]
		s.mu.RUnlock()
		if gone {
			logger.Debugf("rejected revoked token %s", maskToken(tokenString))
			return 0, ErrInvalidToken
		}
	}
	id, ok := claims["user_id"].(float64)
	if !ok {
		return 0, ErrInvalidToken
	}
	return int64(id), nil
}

// Revoke отзывает токен: следующие запросы с ним получат 401.
func (s *AuthService) Revoke(tokenString string) error {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	claims, _ := token.Claims.(jwt.MapClaims)
	jti, _ := claims["jti"].(string)
	if jti == "" {
		return ErrInvalidToken
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[jti] = struct{}{}
	return nil
}
