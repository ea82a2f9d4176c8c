package model

// Stroke описывает стиль плавания (справочник сервера).
type Stroke struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Event описывает дистанцию и стиль, например "50m Freestyle". StrokeName сервер добавляет для отображения.
type Event struct {
	ID         int64  `json:"id"`
	StrokeID   int64  `json:"stroke_id"`
	Distance   int    `json:"distance"`
	Name       string `json:"name"`
	StrokeName string `json:"stroke_name,omitempty"`
}
