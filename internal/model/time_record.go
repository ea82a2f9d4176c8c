package model

import "time"

// TimeRecord описывает зафиксированный результат. Длительность хранится только в целых миллисекундах (TimeMs);
// FormattedTime считает сервер. После создания запись не меняется.
type TimeRecord struct {
	ID            int64     `json:"id"`
	SwimmerID     int64     `json:"swimmer_id"`
	EventID       int64     `json:"event_id"`
	MeetID        *int64    `json:"meet_id"`
	TimeMs        int64     `json:"time_ms"`
	Notes         string    `json:"notes"`
	RecordedAt    time.Time `json:"recorded_at"`
	SwimmerName   string    `json:"swimmer_name"`
	EventName     string    `json:"event_name"`
	StrokeName    string    `json:"stroke_name"`
	Distance      int       `json:"distance"`
	MeetName      *string   `json:"meet_name"`
	FormattedTime string    `json:"formatted_time"`
}

// IsMeet возвращает true, если результат показан на соревнованиях (есть непустое название старта).
func (t *TimeRecord) IsMeet() bool {
	return t.MeetName != nil && *t.MeetName != ""
}

// CreateTimeInput описывает тело POST /api/times.
type CreateTimeInput struct {
	SwimmerID int64  `json:"swimmer_id"`
	EventID   int64  `json:"event_id"`
	MeetID    *int64 `json:"meet_id,omitempty"`
	TimeMs    int64  `json:"time_ms"`
	Notes     string `json:"notes,omitempty"`
}
