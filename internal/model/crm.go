package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidDealStage = errors.New("model: invalid deal stage")

type DealStage string

const (
	StageLead        DealStage = "Lead"
	StageNegotiation DealStage = "Negotiation"
	StageContract    DealStage = "Contract"
	StageWon         DealStage = "Won"
	StageLost        DealStage = "Lost"
)

func (s DealStage) IsValid() bool {
	switch s {
	case StageLead, StageNegotiation, StageContract, StageWon, StageLost:
		return true
	default:
		return false
	}
}

type Deal struct {
	ID        string
	Title     string
	CompanyID string
	ContactID string
	Amount    int64
	Stage     DealStage
	OwnerID   string
	CreatedAt time.Time
}

func (d Deal) Validate() error {
	if strings.TrimSpace(d.ID) == "" {
		return errors.New("model: deal id is required")
	}
	if strings.TrimSpace(d.Title) == "" {
		return errors.New("model: deal title is required")
	}
	if !d.Stage.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidDealStage, d.Stage)
	}
	if d.Amount < 0 {
		return errors.New("model: deal amount cannot be negative")
	}
	return nil
}

type Company struct {
	ID      string
	Name    string
	INN     string
	Segment string
}

func (c Company) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return errors.New("model: company id is required")
	}
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("model: company name is required")
	}
	return nil
}

type Contact struct {
	ID        string
	Name      string
	CompanyID string
	Position  string
	Phone     string
	Email     string
}

func (c Contact) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return errors.New("model: contact id is required")
	}
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("model: contact name is required")
	}
	return nil
}
