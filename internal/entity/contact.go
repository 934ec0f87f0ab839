package entity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	// IMPORTANT: no usecase or infra imports here
)

var (
	ErrEmailAlreadyExists = errors.New("a contact with this email already exists")
	ErrContactNotFound    = errors.New("contact not found")
)

// Pipeline stages in funnel order. Any stage can be set from any other
// stage; the order only matters for the UI.
var PipelineStatuses = []string{
	"New",
	"Contacted",
	"Meeting",
	"Quoted",
	"Won",
	"Lost",
	"Nurture",
	"Pending",
	"On hold",
	"Irrelevant",
}

const StatusNew = "New"

func IsValidStatus(status string) bool {
	for _, s := range PipelineStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type Contact struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email,omitempty"`
	Organization string `json:"organization,omitempty"`
	JobTitle     string `json:"job_title,omitempty"`
	Category     string `json:"category"`
	Status       string `json:"status"`

	Phone           string `json:"phone,omitempty"`
	Website         string `json:"website,omitempty"`
	City            string `json:"city,omitempty"`
	State           string `json:"state,omitempty"`
	Country         string `json:"country,omitempty"`
	Owner           string `json:"owner,omitempty"`
	Application     string `json:"application,omitempty"`
	ProductInterest string `json:"product_interest,omitempty"`

	// Spreadsheet columns that did not map to a known field.
	Extra map[string]string `json:"extra,omitempty"`

	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	ArchivedAt *time.Time `json:"archived_at,omitempty"`
}

// Factory
func NewContact(name, email, organization, jobTitle string) (*Contact, error) {
	now := time.Now().UTC()

	contact := &Contact{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(name),
		Email:        strings.TrimSpace(email),
		Organization: strings.TrimSpace(organization),
		JobTitle:     strings.TrimSpace(jobTitle),
		Category:     DeriveCategory(jobTitle),
		Status:       StatusNew,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := contact.Validate(); err != nil {
		return nil, err
	}

	return contact, nil
}

// Validate enforces the identity invariant: a contact is addressable by
// email or by name, so at least one must be present.
func (c *Contact) Validate() error {
	if c.Name == "" && c.Email == "" {
		return errors.New("name or email is required")
	}
	if !IsValidStatus(c.Status) {
		return errors.New("invalid pipeline status: " + c.Status)
	}
	if !IsValidCategory(c.Category) {
		return errors.New("invalid category: " + c.Category)
	}
	return nil
}

// Touch refreshes the last-updated timestamp. Every mutation, including
// note additions, goes through here.
func (c *Contact) Touch() {
	c.UpdatedAt = time.Now().UTC()
}
