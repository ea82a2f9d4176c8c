package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/laplogger/internal/model"
)

type SwimmersAPI struct {
	c    *Client
	doer Doer
}

func (a *SwimmersAPI) List(ctx context.Context) ([]model.Swimmer, error) {
	var out []model.Swimmer
	if err := a.c.do(ctx, a.doer, call{method: http.MethodGet, path: "/swimmers"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *SwimmersAPI) Get(ctx context.Context, id int64) (*model.Swimmer, error) {
	var out model.Swimmer
	if err := a.c.do(ctx, a.doer, call{method: http.MethodGet, path: fmt.Sprintf("/swimmers/%d", id)}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create возвращает запись, созданную сервером (с id и created_at). Списки вызывающий перечитывает сам.
func (a *SwimmersAPI) Create(ctx context.Context, in model.CreateSwimmerInput) (*model.Swimmer, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, &APIError{Message: "name is required", Kind: ErrValidation}
	}
	var out model.Swimmer
	if err := a.c.do(ctx, a.doer, call{method: http.MethodPost, path: "/swimmers", body: in}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
