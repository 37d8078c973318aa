package config

import (
	"testing"
	"time"

	"echub/internal/calendar"
	"echub/internal/store"
)

func TestRuntimeConfigFromEnvDefaults(t *testing.T) {
	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())

	if cfg.CascadeStrategy != store.CascadeOne {
		t.Fatalf("expected cascade %q, got %q", store.CascadeOne, cfg.CascadeStrategy)
	}
	if cfg.CalendarMode != calendar.ModeMonth {
		t.Fatalf("expected month mode, got %q", cfg.CalendarMode)
	}
	if cfg.SplitSubtasks {
		t.Fatal("split subtasks should default to false")
	}
	if cfg.ReminderHour != 9 {
		t.Fatalf("expected reminder hour 9, got %d", cfg.ReminderHour)
	}
	if !cfg.WorkingDays[time.Monday] || cfg.WorkingDays[time.Sunday] {
		t.Fatal("expected Monday-Friday working days")
	}
}

func TestRuntimeConfigFromEnvOverrides(t *testing.T) {
	t.Setenv("ECHUB_DB_PATH", "/tmp/echub.db")
	t.Setenv("ECHUB_CASCADE_STRATEGY", "deep")
	t.Setenv("ECHUB_SPLIT_SUBTASKS", "true")
	t.Setenv("ECHUB_CALENDAR_MODE", "week")
	t.Setenv("ECHUB_WORKING_DAYS", "1,3,5")
	t.Setenv("ECHUB_REMINDER_HOUR", "14")
	t.Setenv("ECHUB_AGENDA_BUFFER", "128")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())

	if cfg.DBPath != "/tmp/echub.db" {
		t.Fatalf("unexpected db path %q", cfg.DBPath)
	}
	if cfg.CascadeStrategy != store.CascadeDeep {
		t.Fatalf("expected deep cascade, got %q", cfg.CascadeStrategy)
	}
	if !cfg.SplitSubtasks {
		t.Fatal("expected split subtasks enabled")
	}
	if cfg.CalendarMode != calendar.ModeWeek {
		t.Fatalf("expected week mode, got %q", cfg.CalendarMode)
	}
	if !cfg.WorkingDays[time.Monday] || !cfg.WorkingDays[time.Wednesday] || !cfg.WorkingDays[time.Friday] {
		t.Fatal("expected Mon/Wed/Fri working days")
	}
	if cfg.WorkingDays[time.Tuesday] || cfg.WorkingDays[time.Sunday] {
		t.Fatal("unexpected extra working days")
	}
	if cfg.ReminderHour != 14 {
		t.Fatalf("expected reminder hour 14, got %d", cfg.ReminderHour)
	}
	if cfg.AgendaBuffer != 128 {
		t.Fatalf("expected agenda buffer 128, got %d", cfg.AgendaBuffer)
	}
}

func TestRuntimeConfigFromEnvRejectsBadValues(t *testing.T) {
	t.Setenv("ECHUB_CASCADE_STRATEGY", "sideways")
	t.Setenv("ECHUB_CALENDAR_MODE", "quarter")
	t.Setenv("ECHUB_WORKING_DAYS", "x,y")
	t.Setenv("ECHUB_REMINDER_HOUR", "27")
	t.Setenv("ECHUB_AGENDA_BUFFER", "-4")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())

	if cfg.CascadeStrategy != store.CascadeOne {
		t.Fatalf("invalid cascade should keep default, got %q", cfg.CascadeStrategy)
	}
	if cfg.CalendarMode != calendar.ModeMonth {
		t.Fatalf("invalid mode should keep default, got %q", cfg.CalendarMode)
	}
	if len(cfg.WorkingDays) != 5 {
		t.Fatalf("invalid working days should keep default, got %v", cfg.WorkingDays)
	}
	if cfg.ReminderHour != 9 {
		t.Fatalf("out-of-range hour should keep default, got %d", cfg.ReminderHour)
	}
	if cfg.AgendaBuffer != 64 {
		t.Fatalf("negative buffer should keep default, got %d", cfg.AgendaBuffer)
	}
}
