package model

import "time"

// User содержит публичный профиль пользователя, как его отдаёт /api/auth/login и /api/auth/register.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Credentials описывает тело запроса входа.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// NewUser описывает тело запроса регистрации.
type NewUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse описывает ответ login/register.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
