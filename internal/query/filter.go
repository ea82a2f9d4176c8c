package query

import (
	"fmt"

	"github.com/laplogger/internal/model"
)

// Filter задаёт выбор в списке результатов.
type Filter string

const (
	FilterAll      Filter = "all"
	FilterPractice Filter = "practice"
	FilterMeets    Filter = "meets"
)

// ParseFilter принимает all|practice|meets; пустая строка: all.
func ParseFilter(s string) (Filter, error) {
	switch Filter(s) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterPractice, FilterMeets:
		return Filter(s), nil
	}
	return "", fmt.Errorf("unknown filter %q (want all, practice or meets)", s)
}

// FilterTimes строит чистую проекцию уже загруженного списка. practice: без названия старта, meets: с ним.
// Неизвестный фильтр ведёт себя как all. Порядок сохраняется.
func FilterTimes(times []model.TimeRecord, f Filter) []model.TimeRecord {
	out := make([]model.TimeRecord, 0, len(times))
	for _, t := range times {
		switch f {
		case FilterPractice:
			if t.IsMeet() {
				continue
			}
		case FilterMeets:
			if !t.IsMeet() {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}
