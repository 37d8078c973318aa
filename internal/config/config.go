// Package config reads runtime settings from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"echub/internal/calendar"
	"echub/internal/store"
)

type RuntimeConfig struct {
	// DBPath switches the TUI to the SQLite store when set; empty means the
	// seeded in-memory store.
	DBPath          string
	CurrentUserID   string
	CascadeStrategy store.CascadeStrategy
	// SplitSubtasks re-buckets kanban subtasks into their own status column
	// instead of nesting them under the parent card.
	SplitSubtasks bool
	CalendarMode  calendar.Mode
	WorkingDays   calendar.WorkingDays
	ReminderHour  int
	AgendaBuffer  int
	// DesktopNotifications forwards due reminders to the OS notifier.
	DesktopNotifications bool
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		CurrentUserID:   "u-anna",
		CascadeStrategy: store.CascadeOne,
		SplitSubtasks:   false,
		CalendarMode:    calendar.ModeMonth,
		WorkingDays:     calendar.DefaultWorkingDays(),
		ReminderHour:    9,
		AgendaBuffer:    64,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v := strings.TrimSpace(os.Getenv("ECHUB_DB_PATH")); v != "" {
		cfg.DBPath = v
	}
	if v := strings.TrimSpace(os.Getenv("ECHUB_CURRENT_USER")); v != "" {
		cfg.CurrentUserID = v
	}
	if v := store.CascadeStrategy(strings.TrimSpace(os.Getenv("ECHUB_CASCADE_STRATEGY"))); v.IsValid() {
		cfg.CascadeStrategy = v
	}
	if v, ok := getEnvBool("ECHUB_SPLIT_SUBTASKS"); ok {
		cfg.SplitSubtasks = v
	}
	if v := calendar.Mode(strings.ToLower(strings.TrimSpace(os.Getenv("ECHUB_CALENDAR_MODE")))); v.IsValid() {
		cfg.CalendarMode = v
	}
	if days, ok := parseWorkingDays(os.Getenv("ECHUB_WORKING_DAYS")); ok {
		cfg.WorkingDays = days
	}
	if v, ok := getEnvInt("ECHUB_REMINDER_HOUR"); ok && v >= 0 && v <= 23 {
		cfg.ReminderHour = v
	}
	if v, ok := getEnvInt("ECHUB_AGENDA_BUFFER"); ok && v > 0 {
		cfg.AgendaBuffer = v
	}
	if v, ok := getEnvBool("ECHUB_DESKTOP_NOTIFICATIONS"); ok {
		cfg.DesktopNotifications = v
	}
	return cfg
}

// parseWorkingDays reads a comma-separated list of weekday indices,
// 0=Sunday..6=Saturday. An empty or fully invalid value is rejected so the
// working-day set can never start out empty.
func parseWorkingDays(raw string) (calendar.WorkingDays, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, false
	}
	out := make(calendar.WorkingDays)
	for _, part := range strings.Split(trimmed, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 || n > 6 {
			continue
		}
		out[time.Weekday(n)] = true
	}
	if len(out) == 0 {
		return nil, false
	}
	return out, true
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
