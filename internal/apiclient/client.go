// Package apiclient служит единственным шлюзом к удалённому хранилищу результатов.
//
// Защищённые ресурсы (Swimmers, Times, Events, Strokes) ходят через транспорт WithSession;
// Auth ходит через «голый» транспорт. Ответы возвращаются в объявленной форме, без кеша и без повторов.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/laplogger/internal/logger"
)

const DefaultBaseURL = "http://localhost:8080/api"

type Client struct {
	baseURL string
	raw     Doer

	Swimmers *SwimmersAPI
	Times    *TimesAPI
	Events   *EventsAPI
	Strokes  *StrokesAPI
	Auth     *AuthAPI
}

type options struct {
	doer    Doer
	timeout time.Duration
}

type Option func(*options)

// WithDoer подменяет транспорт (по умолчанию *http.Client).
func WithDoer(d Doer) Option {
	return func(o *options) { o.doer = d }
}

// WithTimeout задаёт таймаут *http.Client по умолчанию. Игнорируется при WithDoer.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// New создаёт клиент. sess: контекст сессии (обычно *session.Store), общий для всех вызовов.
func New(baseURL string, sess SessionContext, opts ...Option) *Client {
	o := options{timeout: 10 * time.Second}
	for _, opt := range opts {
		opt(&o)
	}
	if o.doer == nil {
		o.doer = &http.Client{Timeout: o.timeout}
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{baseURL: strings.TrimSuffix(baseURL, "/"), raw: o.doer}
	authed := WithSession(o.doer, sess)
	c.Swimmers = &SwimmersAPI{c: c, doer: authed}
	c.Times = &TimesAPI{c: c, doer: authed}
	c.Events = &EventsAPI{c: c, doer: authed}
	c.Strokes = &StrokesAPI{c: c, doer: authed}
	c.Auth = &AuthAPI{c: c, doer: o.doer}
	return c
}

// BaseURL возвращает адрес API без завершающего слэша.
func (c *Client) BaseURL() string { return c.baseURL }

type call struct {
	method   string
	path     string
	body     any
	authCall bool
}

// do выполняет запрос и декодирует успешный ответ в out (может быть nil).
func (c *Client) do(ctx context.Context, d Doer, cl call, out any) error {
	defer logger.DeferLogDuration("api "+cl.method+" "+cl.path, time.Now())()

	var body io.Reader
	if cl.body != nil {
		data, err := json.Marshal(cl.body)
		if err != nil {
			return fmt.Errorf("%s %s: encode body: %w", cl.method, cl.path, err)
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, cl.method, c.baseURL+cl.path, body)
	if err != nil {
		return fmt.Errorf("%s %s: %w", cl.method, cl.path, err)
	}
	req.Header.Set("Accept", "application/json")
	if cl.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := d.Do(req)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return apiErr
		}
		return fmt.Errorf("%w: %s %s: %w", ErrNetwork, cl.method, cl.path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := readAPIError(resp, kindForStatus(resp.StatusCode, cl.authCall))
		logger.Debugf("%s %s: %v", cl.method, cl.path, apiErr)
		return apiErr
	}
	defer resp.Body.Close()
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", cl.method, cl.path, err)
	}
	return nil
}
