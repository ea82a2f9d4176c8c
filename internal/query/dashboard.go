// Package query собирает составные представления только для чтения поверх apiclient.
package query

import (
	"context"
	"fmt"
	"time"

	"github.com/laplogger/internal/logger"
	"github.com/laplogger/internal/model"
	"golang.org/x/sync/errgroup"
)

// RecentLimit задаёт, сколько последних результатов показывает сводка.
const RecentLimit = 5

// SwimmerLister и TimeLister: то, что запросам нужно от apiclient (*apiclient.SwimmersAPI, *apiclient.TimesAPI).
type SwimmerLister interface {
	List(ctx context.Context) ([]model.Swimmer, error)
}

type TimeLister interface {
	List(ctx context.Context) ([]model.TimeRecord, error)
}

type EventLister interface {
	List(ctx context.Context) ([]model.Event, error)
}

// Summary содержит сводку для главного экрана.
type Summary struct {
	TotalSwimmers int
	TotalTimes    int
	RecentTimes   []model.TimeRecord
	// LatestTime содержит formatted_time первой записи или "N/A", если записей нет.
	LatestTime string
}

// Dashboard запрашивает пловцов и результаты параллельно и ждёт оба ответа.
// Ошибка любого запроса: ошибка всей сводки, частичного результата нет.
// RecentTimes содержит первые RecentLimit записей в порядке сервера, без пересортировки.
func Dashboard(ctx context.Context, swimmers SwimmerLister, times TimeLister) (*Summary, error) {
	defer logger.DeferLogDuration("query.Dashboard", time.Now())()
	var (
		sw []model.Swimmer
		tr []model.TimeRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sw, err = swimmers.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		tr, err = times.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}

	recent := tr
	if len(recent) > RecentLimit {
		recent = recent[:RecentLimit]
	}
	s := &Summary{
		TotalSwimmers: len(sw),
		TotalTimes:    len(tr),
		RecentTimes:   append([]model.TimeRecord(nil), recent...),
		LatestTime:    "N/A",
	}
	if len(recent) > 0 {
		s.LatestTime = recent[0].FormattedTime
	}
	return s, nil
}

// TimeForm содержит данные для формы ввода результата, то есть выпадающие списки пловцов и дистанций.
type TimeForm struct {
	Swimmers []model.Swimmer
	Events   []model.Event
}

// LoadTimeForm, как и Dashboard, грузит оба списка параллельно и падает целиком.
func LoadTimeForm(ctx context.Context, swimmers SwimmerLister, events EventLister) (*TimeForm, error) {
	defer logger.DeferLogDuration("query.LoadTimeForm", time.Now())()
	f := &TimeForm{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		f.Swimmers, err = swimmers.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		f.Events, err = events.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("time form: %w", err)
	}
	return f, nil
}
