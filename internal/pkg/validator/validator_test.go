package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidClock(t *testing.T) {
	valid := []string{"00:00", "08:00", "8:00", "23:59", "17:30"}
	invalid := []string{"24:00", "12:60", "8:0", "0800", "8", "", "ab:cd", "-1:30"}
	for _, clock := range valid {
		if !IsValidClock(clock) {
			t.Errorf("IsValidClock(%q) = false, want true", clock)
		}
	}
	for _, clock := range invalid {
		if IsValidClock(clock) {
			t.Errorf("IsValidClock(%q) = true, want false", clock)
		}
	}
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		input      string
		hour, min  int
		shouldFail bool
	}{
		{"08:00", 8, 0, false},
		{"8:05", 8, 5, false},
		{"23:59", 23, 59, false},
		{"00:00", 0, 0, false},
		{"24:00", 0, 0, true},
		{"12:60", 0, 0, true},
		{"noon", 0, 0, true},
		{"", 0, 0, true},
	}
	for _, c := range cases {
		hour, min, err := ParseClock(c.input)
		if c.shouldFail {
			if err == nil {
				t.Errorf("ParseClock(%q) = (%d, %d), want error", c.input, hour, min)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q) returned error: %v", c.input, err)
			continue
		}
		if hour != c.hour || min != c.min {
			t.Errorf("ParseClock(%q) = (%d, %d), want (%d, %d)", c.input, hour, min, c.hour, c.min)
		}
	}
}

func TestParseDateInput(t *testing.T) {
	valid := []string{"2024-01-15T10:30:00Z", "2024-01-15T10:30:00+03:00", "2024-01-15"}
	invalid := []string{"15/01/2024", "2024-13-01", "yesterday", ""}
	for _, input := range valid {
		if _, ok := ParseDateInput(input); !ok {
			t.Errorf("ParseDateInput(%q) = false, want true", input)
		}
	}
	for _, input := range invalid {
		if _, ok := ParseDateInput(input); ok {
			t.Errorf("ParseDateInput(%q) = true, want false", input)
		}
	}
}
