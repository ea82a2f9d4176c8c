package commands

import (
	"errors"
	"fmt"

	"github.com/laplogger/internal/apiclient"
	"github.com/laplogger/internal/duration"
)

// Describe превращает ошибку команды в сообщение для пользователя.
func Describe(err error) string {
	var apiErr *apiclient.APIError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotLoggedIn):
		return "not logged in, run 'laplogger login'"
	case apiclient.IsAuthorization(err):
		return "session expired, run 'laplogger login'"
	case apiclient.IsNetwork(err):
		return fmt.Sprintf("cannot reach the server: %v\nCheck your connection and try again.", err)
	case errors.Is(err, duration.ErrInvalidDuration):
		return "invalid time: use MM:SS.mmm, e.g. 01:05.250"
	case errors.As(err, &apiErr) && apiErr.Message != "":
		return apiErr.Message
	}
	return err.Error()
}
