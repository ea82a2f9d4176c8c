package model

import "time"

type Swimmer struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateSwimmerInput описывает тело POST /api/swimmers. Email необязателен, формат не проверяется.
type CreateSwimmerInput struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}
