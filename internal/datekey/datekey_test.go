package datekey

import (
	"errors"
	"testing"
	"time"
)

func TestFromTimeUsesLocalCalendarDay(t *testing.T) {
	east := time.FixedZone("UTC+13", 13*60*60)
	west := time.FixedZone("UTC-11", -11*60*60)

	// Midnight local in both zones: the UTC reading differs by a day,
	// the key must not.
	cases := []struct {
		name string
		in   time.Time
		want Key
	}{
		{"utc midnight", time.Date(2023, 11, 15, 0, 0, 0, 0, time.UTC), "2023-11-15"},
		{"east of utc midnight", time.Date(2023, 11, 15, 0, 0, 0, 0, east), "2023-11-15"},
		{"west of utc midnight", time.Date(2023, 11, 15, 0, 0, 0, 0, west), "2023-11-15"},
		{"east late evening", time.Date(2023, 11, 15, 23, 59, 59, 0, east), "2023-11-15"},
	}
	for _, tc := range cases {
		if got := FromTime(tc.in); got != tc.want {
			t.Fatalf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestFromTimeStable(t *testing.T) {
	in := time.Date(2024, 2, 29, 10, 30, 0, 0, time.Local)
	first := FromTime(in)
	for i := 0; i < 3; i++ {
		if got := FromTime(in); got != first {
			t.Fatalf("unstable key: got %q, want %q", got, first)
		}
	}
	if first != "2024-02-29" {
		t.Fatalf("got %q, want 2024-02-29", first)
	}
}

func TestSameLocalDaySameKey(t *testing.T) {
	a := time.Date(2023, 11, 15, 0, 0, 0, 0, time.Local)
	b := time.Date(2023, 11, 15, 23, 59, 59, 0, time.Local)
	c := time.Date(2023, 11, 16, 0, 0, 0, 0, time.Local)
	if FromTime(a) != FromTime(b) {
		t.Fatal("same local day produced different keys")
	}
	if FromTime(a) == FromTime(c) {
		t.Fatal("different local days produced the same key")
	}
}

func TestParseRejectsMalformedInput(t *testing.T) {
	bad := []string{"", "2023-13-01", "2023-11-31", "15-11-2023", "2023/11/15", "2023-1-5", "garbage"}
	for _, in := range bad {
		if _, err := Parse(in); !errors.Is(err, ErrInvalidKey) {
			t.Fatalf("Parse(%q): expected ErrInvalidKey, got %v", in, err)
		}
	}
	got, err := Parse("2023-11-15")
	if err != nil {
		t.Fatalf("Parse valid key: %v", err)
	}
	if got != "2023-11-15" {
		t.Fatalf("got %q, want 2023-11-15", got)
	}
}

func TestAddDaysAndWeekday(t *testing.T) {
	k := Key("2023-11-15")
	next, err := k.AddDays(16)
	if err != nil {
		t.Fatalf("AddDays: %v", err)
	}
	if next != "2023-12-01" {
		t.Fatalf("got %q, want 2023-12-01", next)
	}
	wd, err := k.Weekday()
	if err != nil {
		t.Fatalf("Weekday: %v", err)
	}
	if wd != time.Wednesday {
		t.Fatalf("got %v, want Wednesday", wd)
	}
}

func TestInvalidKeyOperationsFail(t *testing.T) {
	k := Key("not-a-date")
	if k.IsValid() {
		t.Fatal("expected invalid key")
	}
	if _, err := k.AddDays(1); !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("expected ErrInvalidKey, got %v", err)
	}
	if _, err := k.Weekday(); !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("expected ErrInvalidKey, got %v", err)
	}
}
