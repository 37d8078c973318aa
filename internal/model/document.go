package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"echub/internal/datekey"
)

var ErrInvalidDocumentKind = errors.New("model: invalid document kind")

type DocumentKind string

const (
	DocContract DocumentKind = "Contract"
	DocInvoice  DocumentKind = "Invoice"
	DocAct      DocumentKind = "Act"
	DocProposal DocumentKind = "Proposal"
)

func (k DocumentKind) IsValid() bool {
	switch k {
	case DocContract, DocInvoice, DocAct, DocProposal:
		return true
	default:
		return false
	}
}

// Document is a registry entry pointing at a signed business document.
type Document struct {
	ID       string
	Title    string
	Kind     DocumentKind
	DealID   string
	Number   string
	SignedOn datekey.Key
	Status   string
}

func (d Document) Validate() error {
	if strings.TrimSpace(d.ID) == "" {
		return errors.New("model: document id is required")
	}
	if strings.TrimSpace(d.Title) == "" {
		return errors.New("model: document title is required")
	}
	if !d.Kind.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidDocumentKind, d.Kind)
	}
	if d.SignedOn != "" && !d.SignedOn.IsValid() {
		return fmt.Errorf("%w: document signed_on %q", datekey.ErrInvalidKey, d.SignedOn)
	}
	return nil
}

// Article is a knowledge base entry; Body is markdown.
type Article struct {
	ID        string
	Title     string
	Category  string
	Body      string
	AuthorID  string
	UpdatedAt time.Time
}

func (a Article) Validate() error {
	if strings.TrimSpace(a.ID) == "" {
		return errors.New("model: article id is required")
	}
	if strings.TrimSpace(a.Title) == "" {
		return errors.New("model: article title is required")
	}
	return nil
}
