package model

// Session описывает живую клиентскую сессию: bearer-токен и профиль вошедшего пользователя.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
