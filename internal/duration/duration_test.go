package duration

import (
	"errors"
	"testing"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name         string
		min, sec, ms string
		want         int64
	}{
		{"full", "1", "5", "250", 65250},
		{"empty components", "", "30", "", 30000},
		{"all empty", "", "", "", 0},
		{"non numeric", "abc", "x", "?", 0},
		{"leading digits", "2min", "3s", "7", 123007},
		{"whitespace", " 1 ", " 0", "1 ", 60001},
		{"negative clamped", "-1", "10", "", 10000},
		{"minutes over 99", "120", "0", "0", 7200000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Encode(tt.min, tt.sec, tt.ms); got != tt.want {
				t.Errorf("Encode(%q, %q, %q) = %d, want %d", tt.min, tt.sec, tt.ms, got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for m := int64(0); m <= 99; m += 7 {
		for s := int64(0); s <= 59; s++ {
			for _, ms := range []int64{0, 1, 9, 10, 99, 100, 250, 500, 998, 999} {
				total := EncodeInts(m, s, ms)
				p, err := Decompose(total)
				if err != nil {
					t.Fatalf("Decompose(%d): %v", total, err)
				}
				if p != (Parts{m, s, ms}) {
					t.Fatalf("Decompose(Encode(%d,%d,%d)) = %+v", m, s, ms, p)
				}
			}
		}
	}
}

func TestFormatFromMs(t *testing.T) {
	tests := []struct {
		ms   int64
		want string
	}{
		{0, "00:00.000"},
		{65250, "01:05.250"},
		{59999, "00:59.999"},
		{60000, "01:00.000"},
		{6000000, "100:00.000"},
	}
	for _, tt := range tests {
		got, err := FormatFromMs(tt.ms)
		if err != nil {
			t.Fatalf("FormatFromMs(%d): %v", tt.ms, err)
		}
		if got != tt.want {
			t.Errorf("FormatFromMs(%d) = %q, want %q", tt.ms, got, tt.want)
		}
	}
}

func TestFormatFromMsMatchesFormatForDisplay(t *testing.T) {
	for _, c := range [][3]int64{{1, 5, 250}, {0, 0, 1}, {12, 59, 999}} {
		want := FormatForDisplay(c[0], c[1], c[2])
		got, err := FormatFromMs(EncodeInts(c[0], c[1], c[2]))
		if err != nil || got != want {
			t.Errorf("FormatFromMs(Encode(%v)) = %q, %v; want %q", c, got, err, want)
		}
	}
}

func TestFormatFromMsMonotonic(t *testing.T) {
	prev, _ := FormatFromMs(0)
	for ms := int64(1); ms < 200000; ms += 37 {
		cur, err := FormatFromMs(ms)
		if err != nil {
			t.Fatal(err)
		}
		// одинаковая ширина ниже 100 минут: лексикографический порядок совпадает с числовым
		if cur <= prev {
			t.Fatalf("FormatFromMs not monotonic: %q after %q", cur, prev)
		}
		prev = cur
	}
}

func TestDecomposeNegative(t *testing.T) {
	if _, err := Decompose(-1); !errors.Is(err, ErrInvalidDuration) {
		t.Fatalf("Decompose(-1) err = %v, want ErrInvalidDuration", err)
	}
	if _, err := FormatFromMs(-65250); !errors.Is(err, ErrInvalidDuration) {
		t.Fatalf("FormatFromMs(-65250) err = %v, want ErrInvalidDuration", err)
	}
}

func TestParse(t *testing.T) {
	ok := map[string]int64{
		"01:05.250": 65250,
		"1:05.25":   65250,
		"00:00.000": 0,
		"59.9":      59900,
		"65":        65000,
		"100:00.5":  6000500,
	}
	for in, want := range ok {
		got, err := Parse(in)
		if err != nil || got != want {
			t.Errorf("Parse(%q) = %d, %v; want %d", in, got, err, want)
		}
	}
	for _, in := range []string{"", "abc", "1:60.000", "1:05.2500", "-1:00", "1:xx", "1:05.", ":"} {
		if _, err := Parse(in); !errors.Is(err, ErrInvalidDuration) {
			t.Errorf("Parse(%q) err = %v, want ErrInvalidDuration", in, err)
		}
	}
}
