// Package duration переводит время заплыва между тремя полями ввода (минуты, секунды, миллисекунды),
// каноническим целым числом миллисекунд и строкой "MM:SS.mmm".
//
// Кодирование из формы прощает ошибки: пустое или нечисловое поле считается нулём.
// Разложение обратно строгое: отрицательная длительность: ошибка ErrInvalidDuration.
package duration

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	msPerSecond = 1000
	msPerMinute = 60 * msPerSecond
)

var ErrInvalidDuration = errors.New("invalid duration")

// Parts хранит разложение длительности на компоненты.
type Parts struct {
	Minutes      int64
	Seconds      int64
	Milliseconds int64
}

// Encode собирает миллисекунды из трёх строк формы. Пустое/нечисловое поле = 0,
// отрицательное значение тоже приводится к 0, так что результат всегда >= 0.
func Encode(minutes, seconds, milliseconds string) int64 {
	return EncodeInts(lenientInt(minutes), lenientInt(seconds), lenientInt(milliseconds))
}

// EncodeInts делает то же для уже разобранных чисел.
func EncodeInts(minutes, seconds, milliseconds int64) int64 {
	return clamp(minutes)*msPerMinute + clamp(seconds)*msPerSecond + clamp(milliseconds)
}

// FormatForDisplay форматирует компоненты как "MM:SS.mmm". Минуты не обрезаются: 100 и больше просто шире.
func FormatForDisplay(minutes, seconds, milliseconds int64) string {
	return fmt.Sprintf("%02d:%02d.%03d", minutes, seconds, milliseconds)
}

// Decompose раскладывает каноническую длительность на минуты, секунды и миллисекунды.
func Decompose(totalMs int64) (Parts, error) {
	if totalMs < 0 {
		return Parts{}, fmt.Errorf("%w: %d ms is negative", ErrInvalidDuration, totalMs)
	}
	return Parts{
		Minutes:      totalMs / msPerMinute,
		Seconds:      (totalMs % msPerMinute) / msPerSecond,
		Milliseconds: totalMs % msPerSecond,
	}, nil
}

// FormatFromMs форматирует записи, пришедших с сервера.
func FormatFromMs(totalMs int64) (string, error) {
	p, err := Decompose(totalMs)
	if err != nil {
		return "", err
	}
	return FormatForDisplay(p.Minutes, p.Seconds, p.Milliseconds), nil
}

// Parse выполняет строгий разбор строки вида "MM:SS.mmm" (или "SS.mmm", "SS") для флагов CLI.
// Доли секунды дополняются справа: "1:05.25" = 65250.
func Parse(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidDuration)
	}
	var minPart, secPart, fracPart string
	hasFrac := false
	rest := s
	if i := strings.IndexByte(rest, ':'); i >= 0 {
		minPart, rest = rest[:i], rest[i+1:]
	}
	secPart = rest
	if i := strings.IndexByte(rest, '.'); i >= 0 {
		secPart, fracPart = rest[:i], rest[i+1:]
		hasFrac = true
	}
	m, err := strictField(minPart, true)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}
	sec, err := strictField(secPart, false)
	if err != nil || (minPart != "" && sec > 59) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}
	if hasFrac && (fracPart == "" || len(fracPart) > 3) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}
	var ms int64
	if fracPart != "" {
		ms, err = strictField(fracPart+strings.Repeat("0", 3-len(fracPart)), false)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
		}
	}
	return EncodeInts(m, sec, ms), nil
}

func strictField(s string, optional bool) (int64, error) {
	if s == "" {
		if optional {
			return 0, nil
		}
		return 0, ErrInvalidDuration
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, ErrInvalidDuration
		}
	}
	return strconv.ParseInt(s, 10, 64)
}

// lenientInt ведёт себя как разбор поля формы: берёт ведущее целое ("12abc" -> 12), иначе 0.
func lenientInt(s string) int64 {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func clamp(n int64) int64 {
	if n < 0 {
		return 0
	}
	return n
}
