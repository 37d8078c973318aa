package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"echub/internal/datekey"
)

var (
	ErrInvalidActivityType   = errors.New("model: invalid activity type")
	ErrInvalidActivityStatus = errors.New("model: invalid activity status")
)

type ActivityType string

const (
	ActivityCall    ActivityType = "Call"
	ActivityMeeting ActivityType = "Meeting"
	ActivityEmail   ActivityType = "Email"
)

func (t ActivityType) IsValid() bool {
	switch t {
	case ActivityCall, ActivityMeeting, ActivityEmail:
		return true
	default:
		return false
	}
}

type ActivityStatus string

const (
	ActivityPlanned ActivityStatus = "Planned"
	ActivityDone    ActivityStatus = "Done"
)

func (s ActivityStatus) IsValid() bool {
	return s == ActivityPlanned || s == ActivityDone
}

// Activity is a CRM touchpoint (call, meeting, email) tied to a calendar day
// and optionally to a deal or contact.
type Activity struct {
	ID              string
	Type            ActivityType
	Subject         string
	Date            datekey.Key
	Status          ActivityStatus
	RelatedEntityID string
	CreatedAt       time.Time
}

func (a Activity) Validate() error {
	if strings.TrimSpace(a.ID) == "" {
		return errors.New("model: activity id is required")
	}
	if strings.TrimSpace(a.Subject) == "" {
		return errors.New("model: activity subject is required")
	}
	if !a.Type.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidActivityType, a.Type)
	}
	if !a.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidActivityStatus, a.Status)
	}
	if !a.Date.IsValid() {
		return fmt.Errorf("%w: activity date %q", datekey.ErrInvalidKey, a.Date)
	}
	if a.CreatedAt.IsZero() {
		return errors.New("model: activity created_at is required")
	}
	return nil
}
