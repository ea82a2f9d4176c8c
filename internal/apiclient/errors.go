package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

var (
	ErrValidation       = errors.New("validation failed")
	ErrAuthentication   = errors.New("authentication failed")
	ErrAuthorization    = errors.New("re-authentication required")
	ErrNetwork          = errors.New("network error")
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrUnexpectedStatus = errors.New("unexpected status")
)

// maxErrorBody задаёт, сколько байт тела ошибки читаем для сообщения.
const maxErrorBody = 64 << 10

// APIError описывает не-2xx ответ сервера, то есть статус, сообщение сервера и вид ошибки (errors.Is(err, ErrValidation) и т.п.).
type APIError struct {
	Status  int
	Message string
	Kind    error
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%v: %d", e.Kind, e.Status)
	}
	return fmt.Sprintf("%v: %d %s", e.Kind, e.Status, e.Message)
}

func (e *APIError) Unwrap() error { return e.Kind }

// kindForStatus: 401 на входе/регистрации означает неверные учётные данные, на защищённом вызове отклонённую сессию.
func kindForStatus(status int, authCall bool) error {
	switch {
	case status == http.StatusUnauthorized && authCall:
		return ErrAuthentication
	case status == http.StatusUnauthorized:
		return ErrAuthorization
	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
		return ErrValidation
	case status == http.StatusNotFound:
		return ErrNotFound
	case status == http.StatusConflict:
		return ErrConflict
	default:
		return ErrUnexpectedStatus
	}
}

// readAPIError читает и закрывает тело. Сервер отвечает либо {"error": "..."}, либо text/plain (http.Error).
func readAPIError(resp *http.Response, kind error) *APIError {
	defer resp.Body.Close()
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	msg := strings.TrimSpace(string(body))
	var payload struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &payload) == nil && payload.Error != "" {
		msg = payload.Error
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return &APIError{Status: resp.StatusCode, Message: msg, Kind: kind}
}

// IsAuthorization сообщает фронтенду, что пора вернуть пользователя на экран входа.
func IsAuthorization(err error) bool { return errors.Is(err, ErrAuthorization) }

// IsNetwork: ошибку можно показать с кнопкой "повторить".
func IsNetwork(err error) bool { return errors.Is(err, ErrNetwork) }
