package apiclient

import (
	"context"
	"net/http"

	"github.com/laplogger/internal/model"
)

// EventsAPI читает справочник дистанций (только чтение).
type EventsAPI struct {
	c    *Client
	doer Doer
}

func (a *EventsAPI) List(ctx context.Context) ([]model.Event, error) {
	var out []model.Event
	if err := a.c.do(ctx, a.doer, call{method: http.MethodGet, path: "/events"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// StrokesAPI читает справочник стилей (только чтение).
type StrokesAPI struct {
	c    *Client
	doer Doer
}

func (a *StrokesAPI) List(ctx context.Context) ([]model.Stroke, error) {
	var out []model.Stroke
	if err := a.c.do(ctx, a.doer, call{method: http.MethodGet, path: "/strokes"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}
