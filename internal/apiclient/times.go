package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/laplogger/internal/duration"
	"github.com/laplogger/internal/model"
)

type TimesAPI struct {
	c    *Client
	doer Doer
}

// List возвращает все результаты в порядке сервера (новые первыми).
func (a *TimesAPI) List(ctx context.Context) ([]model.TimeRecord, error) {
	var out []model.TimeRecord
	if err := a.c.do(ctx, a.doer, call{method: http.MethodGet, path: "/times"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *TimesAPI) ListBySwimmer(ctx context.Context, swimmerID int64) ([]model.TimeRecord, error) {
	var out []model.TimeRecord
	if err := a.c.do(ctx, a.doer, call{method: http.MethodGet, path: fmt.Sprintf("/times/%d", swimmerID)}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create отправляет результат и возвращает запись сервера вместе с formatted_time.
func (a *TimesAPI) Create(ctx context.Context, in model.CreateTimeInput) (*model.TimeRecord, error) {
	if err := validateTime(in); err != nil {
		return nil, err
	}
	var out model.TimeRecord
	if err := a.c.do(ctx, a.doer, call{method: http.MethodPost, path: "/times", body: in}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func validateTime(in model.CreateTimeInput) error {
	switch {
	case in.SwimmerID <= 0:
		return &APIError{Message: "swimmer_id is required", Kind: ErrValidation}
	case in.EventID <= 0:
		return &APIError{Message: "event_id is required", Kind: ErrValidation}
	case in.TimeMs < 0:
		return fmt.Errorf("%w: %w", ErrValidation, duration.ErrInvalidDuration)
	}
	return nil
}
