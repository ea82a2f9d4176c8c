// Package repository хранит записи заглушки сервера в памяти: пользователей, пловцов, результаты и справочники.
package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/laplogger/internal/duration"
	"github.com/laplogger/internal/model"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("already exists")
)

type userRow struct {
	user         model.User
	passwordHash string
}

type Store struct {
	mu       sync.RWMutex
	now      func() time.Time
	users    []userRow
	swimmers []model.Swimmer
	times    []model.TimeRecord
	strokes  []model.Stroke
	events   []model.Event
	meets    map[int64]string
	nextID   map[string]int64
}

// NewStore создаёт хранилище с засеянными стилями, дистанциями и стартами.
func NewStore() *Store {
	s := &Store{
		now:    func() time.Time { return time.Now().UTC() },
		meets:  map[int64]string{1: "Spring Invitational", 2: "State Championships"},
		nextID: map[string]int64{},
	}
	s.seed()
	return s
}

// SetClock подменяет источник времени (тесты упорядочивают результаты по recorded_at).
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func (s *Store) seed() {
	strokes := []string{"Freestyle", "Backstroke", "Breaststroke", "Butterfly", "Individual Medley"}
	distances := map[string][]int{
		"Freestyle":         {50, 100, 200, 400, 800, 1500},
		"Backstroke":        {50, 100, 200},
		"Breaststroke":      {50, 100, 200},
		"Butterfly":         {50, 100, 200},
		"Individual Medley": {200, 400},
	}
	for _, name := range strokes {
		st := model.Stroke{ID: s.id("stroke"), Name: name}
		s.strokes = append(s.strokes, st)
		for _, d := range distances[name] {
			s.events = append(s.events, model.Event{
				ID:         s.id("event"),
				StrokeID:   st.ID,
				Distance:   d,
				Name:       fmt.Sprintf("%dm %s", d, name),
				StrokeName: name,
			})
		}
	}
}

func (s *Store) id(kind string) int64 {
	s.nextID[kind]++
	return s.nextID[kind]
}

func (s *Store) CreateUser(ctx context.Context, username, email, passwordHash string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if strings.EqualFold(u.user.Username, username) || strings.EqualFold(u.user.Email, email) {
			return nil, fmt.Errorf("user %q: %w", username, ErrDuplicate)
		}
	}
	now := s.now()
	u := model.User{ID: s.id("user"), Username: username, Email: email, CreatedAt: now, UpdatedAt: now}
	s.users = append(s.users, userRow{user: u, passwordHash: passwordHash})
	return &u, nil
}

// GetUserByUsername возвращает пользователя и хеш пароля.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (*model.User, string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.user.Username == username {
			cp := u.user
			return &cp, u.passwordHash, nil
		}
	}
	return nil, "", ErrNotFound
}

// ListSwimmers сортирует по имени, как в исходном сервере.
func (s *Store) ListSwimmers(ctx context.Context) ([]model.Swimmer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := append([]model.Swimmer{}, s.swimmers...)
	sort.SliceStable(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (s *Store) GetSwimmer(ctx context.Context, id int64) (*model.Swimmer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sw := range s.swimmers {
		if sw.ID == id {
			cp := sw
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Store) CreateSwimmer(ctx context.Context, in model.CreateSwimmerInput) (*model.Swimmer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sw := model.Swimmer{ID: s.id("swimmer"), Name: in.Name, Email: in.Email, CreatedAt: s.now()}
	s.swimmers = append(s.swimmers, sw)
	return &sw, nil
}

// CreateTime проверяет ссылки на пловца, дистанцию и старт и дополняет запись полями для отображения.
func (s *Store) CreateTime(ctx context.Context, in model.CreateTimeInput) (*model.TimeRecord, error) {
	formatted, err := duration.FormatFromMs(in.TimeMs)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var swimmer *model.Swimmer
	for i := range s.swimmers {
		if s.swimmers[i].ID == in.SwimmerID {
			swimmer = &s.swimmers[i]
		}
	}
	if swimmer == nil {
		return nil, fmt.Errorf("swimmer %d: %w", in.SwimmerID, ErrNotFound)
	}
	var event *model.Event
	for i := range s.events {
		if s.events[i].ID == in.EventID {
			event = &s.events[i]
		}
	}
	if event == nil {
		return nil, fmt.Errorf("event %d: %w", in.EventID, ErrNotFound)
	}
	rec := model.TimeRecord{
		ID:            s.id("time"),
		SwimmerID:     swimmer.ID,
		EventID:       event.ID,
		TimeMs:        in.TimeMs,
		Notes:         in.Notes,
		RecordedAt:    s.now(),
		SwimmerName:   swimmer.Name,
		EventName:     event.Name,
		StrokeName:    event.StrokeName,
		Distance:      event.Distance,
		FormattedTime: formatted,
	}
	if in.MeetID != nil {
		name, ok := s.meets[*in.MeetID]
		if !ok {
			return nil, fmt.Errorf("meet %d: %w", *in.MeetID, ErrNotFound)
		}
		meetID := *in.MeetID
		rec.MeetID = &meetID
		rec.MeetName = &name
	}
	s.times = append(s.times, rec)
	return &rec, nil
}

// ListTimes отдаёт новые первыми (recorded_at DESC, затем id DESC).
func (s *Store) ListTimes(ctx context.Context) ([]model.TimeRecord, error) {
	return s.listTimes(func(model.TimeRecord) bool { return true }), nil
}

func (s *Store) ListTimesBySwimmer(ctx context.Context, swimmerID int64) ([]model.TimeRecord, error) {
	return s.listTimes(func(t model.TimeRecord) bool { return t.SwimmerID == swimmerID }), nil
}

func (s *Store) listTimes(keep func(model.TimeRecord) bool) []model.TimeRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]model.TimeRecord, 0, len(s.times))
	for _, t := range s.times {
		if keep(t) {
			list = append(list, t)
		}
	}
	sort.SliceStable(list, func(i, j int) bool {
		if !list[i].RecordedAt.Equal(list[j].RecordedAt) {
			return list[i].RecordedAt.After(list[j].RecordedAt)
		}
		return list[i].ID > list[j].ID
	})
	return list
}

func (s *Store) ListStrokes(ctx context.Context) ([]model.Stroke, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Stroke{}, s.strokes...), nil
}

func (s *Store) ListEvents(ctx context.Context) ([]model.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Event{}, s.events...), nil
}
