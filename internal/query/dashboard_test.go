package query

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/laplogger/internal/model"
)

type swimmersFunc func(ctx context.Context) ([]model.Swimmer, error)

func (f swimmersFunc) List(ctx context.Context) ([]model.Swimmer, error) { return f(ctx) }

type timesFunc func(ctx context.Context) ([]model.TimeRecord, error)

func (f timesFunc) List(ctx context.Context) ([]model.TimeRecord, error) { return f(ctx) }

type eventsFunc func(ctx context.Context) ([]model.Event, error)

func (f eventsFunc) List(ctx context.Context) ([]model.Event, error) { return f(ctx) }

func makeTimes(n int) []model.TimeRecord {
	out := make([]model.TimeRecord, n)
	for i := range out {
		// сервер отдаёт новые первыми; id убывают, чтобы пересортировка была заметна
		out[i] = model.TimeRecord{ID: int64(100 - i), FormattedTime: fmt.Sprintf("00:3%d.000", i)}
	}
	return out
}

func TestDashboardSummary(t *testing.T) {
	swimmers := swimmersFunc(func(context.Context) ([]model.Swimmer, error) {
		return make([]model.Swimmer, 3), nil
	})
	times := makeTimes(7)
	s, err := Dashboard(context.Background(), swimmers, timesFunc(func(context.Context) ([]model.TimeRecord, error) {
		return times, nil
	}))
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if s.TotalSwimmers != 3 || s.TotalTimes != 7 {
		t.Fatalf("totals = %d/%d, want 3/7", s.TotalSwimmers, s.TotalTimes)
	}
	if len(s.RecentTimes) != RecentLimit {
		t.Fatalf("RecentTimes len = %d, want %d", len(s.RecentTimes), RecentLimit)
	}
	for i, r := range s.RecentTimes {
		if r.ID != times[i].ID {
			t.Fatalf("RecentTimes[%d].ID = %d, want %d (server order)", i, r.ID, times[i].ID)
		}
	}
	if s.LatestTime != times[0].FormattedTime {
		t.Fatalf("LatestTime = %q", s.LatestTime)
	}
}

func TestDashboardEmpty(t *testing.T) {
	s, err := Dashboard(context.Background(),
		swimmersFunc(func(context.Context) ([]model.Swimmer, error) { return nil, nil }),
		timesFunc(func(context.Context) ([]model.TimeRecord, error) { return nil, nil }),
	)
	if err != nil {
		t.Fatal(err)
	}
	if s.TotalTimes != 0 || len(s.RecentTimes) != 0 || s.LatestTime != "N/A" {
		t.Fatalf("empty summary = %+v", s)
	}
}

func TestDashboardRunsConcurrently(t *testing.T) {
	var inFlight, peak atomic.Int32
	enter := func() {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
	}
	// обе ветки ждут друг друга: последовательная реализация упрётся в таймаут
	both := make(chan struct{})
	var arrived atomic.Int32
	wait := func(ctx context.Context) error {
		enter()
		defer inFlight.Add(-1)
		if arrived.Add(1) == 2 {
			close(both)
		}
		select {
		case <-both:
			return nil
		case <-time.After(2 * time.Second):
			return errors.New("other leg never started")
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	_, err := Dashboard(context.Background(),
		swimmersFunc(func(ctx context.Context) ([]model.Swimmer, error) { return nil, wait(ctx) }),
		timesFunc(func(ctx context.Context) ([]model.TimeRecord, error) { return nil, wait(ctx) }),
	)
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if peak.Load() != 2 {
		t.Fatalf("peak concurrency = %d, want 2", peak.Load())
	}
}

func TestDashboardFailsAsWhole(t *testing.T) {
	boom := errors.New("boom")
	okSwimmers := swimmersFunc(func(context.Context) ([]model.Swimmer, error) { return make([]model.Swimmer, 2), nil })
	okTimes := timesFunc(func(context.Context) ([]model.TimeRecord, error) { return makeTimes(3), nil })
	badSwimmers := swimmersFunc(func(context.Context) ([]model.Swimmer, error) { return nil, boom })
	badTimes := timesFunc(func(context.Context) ([]model.TimeRecord, error) { return nil, boom })

	cases := []struct {
		name string
		sw   SwimmerLister
		tr   TimeLister
	}{
		{"swimmers fail", badSwimmers, okTimes},
		{"times fail", okSwimmers, badTimes},
		{"both fail", badSwimmers, badTimes},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := Dashboard(context.Background(), tc.sw, tc.tr)
			if !errors.Is(err, boom) {
				t.Fatalf("err = %v, want boom", err)
			}
			if s != nil {
				t.Fatalf("partial summary returned: %+v", s)
			}
		})
	}
}

func TestLoadTimeForm(t *testing.T) {
	f, err := LoadTimeForm(context.Background(),
		swimmersFunc(func(context.Context) ([]model.Swimmer, error) { return []model.Swimmer{{ID: 1, Name: "Ada"}}, nil }),
		eventsFunc(func(context.Context) ([]model.Event, error) { return []model.Event{{ID: 1}, {ID: 2}}, nil }),
	)
	if err != nil {
		t.Fatal(err)
	}
	if len(f.Swimmers) != 1 || len(f.Events) != 2 {
		t.Fatalf("form = %+v", f)
	}

	boom := errors.New("events down")
	if _, err := LoadTimeForm(context.Background(),
		swimmersFunc(func(context.Context) ([]model.Swimmer, error) { return nil, nil }),
		eventsFunc(func(context.Context) ([]model.Event, error) { return nil, boom }),
	); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
}
