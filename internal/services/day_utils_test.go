package services

import (
	"testing"
	"time"
)

func TestCalendarDayUsesLocation(t *testing.T) {
	location := time.FixedZone("UTC+9", 9*60*60)
	instant := time.Date(2026, time.January, 31, 18, 0, 0, 0, time.UTC)

	got := CalendarDay(instant, location)
	want := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %s, got %s", want, got)
	}
	if got := CalendarDay(instant, nil); !got.Equal(time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected UTC fallback, got %s", got)
	}
}

func TestParseMealDate(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "2023-10-15", want: "2023-10-15"},
		{raw: "2023-10-15T23:30:00-03:00", want: "2023-10-16"},
		{raw: "2023-10-15T10:00:00Z", want: "2023-10-15"},
		{raw: "15/10/2023", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, testCase := range tests {
		got, err := ParseMealDate(testCase.raw, time.UTC)
		if testCase.wantErr {
			if err == nil {
				t.Fatalf("ParseMealDate(%q) expected error", testCase.raw)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseMealDate(%q) returned error: %v", testCase.raw, err)
		}
		if got.Format("2006-01-02") != testCase.want {
			t.Fatalf("ParseMealDate(%q) = %s, want %s", testCase.raw, got.Format("2006-01-02"), testCase.want)
		}
	}
}
