package lovetime

import (
	"errors"
	"testing"
	"time"
)

func TestParseReference(t *testing.T) {
	loc := time.FixedZone("local", -3*3600)

	tests := []struct {
		value string
		want  time.Time
	}{
		{"2022-11-29T22:06:00", time.Date(2022, 11, 29, 22, 6, 0, 0, loc)},
		{"2022-11-29T22:06", time.Date(2022, 11, 29, 22, 6, 0, 0, loc)},
		{"2022-11-29 22:06:00", time.Date(2022, 11, 29, 22, 6, 0, 0, loc)},
		{"2022-11-29", time.Date(2022, 11, 29, 0, 0, 0, 0, loc)},
		{"2022-11-29T22:06:00.250", time.Date(2022, 11, 29, 22, 6, 0, 250*int(time.Millisecond), loc)},
		{"2022-11-29T22:06:00Z", time.Date(2022, 11, 29, 22, 6, 0, 0, time.UTC)},
		{"  2022-11-29T22:06:00+05:30 ", time.Date(2022, 11, 29, 16, 36, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		got, err := ParseReference(tt.value, loc)
		if err != nil {
			t.Fatalf("ParseReference(%q) failed: %v", tt.value, err)
		}
		if !got.Equal(tt.want) {
			t.Errorf("ParseReference(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestParseReferenceKeepsLocation(t *testing.T) {
	loc := time.FixedZone("local", 2*3600)
	got, err := ParseReference(DefaultReference, loc)
	if err != nil {
		t.Fatalf("Failed to parse default reference: %v", err)
	}
	if got.Location() != loc {
		t.Errorf("Expected location %v, got %v", loc, got.Location())
	}
	if got.Hour() != 22 || got.Minute() != 6 {
		t.Errorf("Expected 22:06 local, got %s", got.Format("15:04"))
	}
}

func TestParseReferenceInSkippedHour(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("time zone unavailable: %v", err)
	}

	got, err := ParseReference("2026-03-08T02:30:00", loc)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	if want := time.Date(2026, 3, 8, 7, 30, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("Expected skipped 02:30 to move forward to %v, got %v", want, got.UTC())
	}
}

func TestParseReferenceInvalid(t *testing.T) {
	for _, value := range []string{"", "   ", "yesterday", "2022-13-45T99:00:00", "29/11/2022"} {
		_, err := ParseReference(value, time.UTC)
		if err == nil {
			t.Errorf("Expected error for %q", value)
			continue
		}
		if !errors.Is(err, ErrInvalidReference) {
			t.Errorf("Expected ErrInvalidReference for %q, got %v", value, err)
		}
	}
}

func TestParseWhen(t *testing.T) {
	fallback := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	result, err := ParseWhen("", fallback)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !result.Equal(fallback) {
		t.Errorf("Expected fallback time, got %v", result)
	}

	result, err = ParseWhen("2024-01-15T14:30:00Z", fallback)
	if err != nil {
		t.Fatalf("Failed to parse ISO: %v", err)
	}
	expected := time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC)
	if !result.Equal(expected) {
		t.Errorf("Expected %v, got %v", expected, result)
	}

	result, err = ParseWhen("9:05", fallback)
	if err != nil {
		t.Fatalf("Failed to parse HH:MM: %v", err)
	}
	expected = time.Date(2024, 1, 15, 9, 5, 0, 0, time.UTC)
	if !result.Equal(expected) {
		t.Errorf("Expected %v, got %v", expected, result)
	}

	if _, err := ParseWhen("99:99", fallback); err == nil {
		t.Error("Expected error for invalid time 99:99")
	}
	if _, err := ParseWhen("later", fallback); err == nil {
		t.Error("Expected error for unparseable value")
	}
}

func TestMustParseReferencePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for invalid reference")
		}
	}()
	MustParseReference("not a date")
}
