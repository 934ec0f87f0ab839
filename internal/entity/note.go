package entity

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrNoteNotFound = errors.New("note not found")

// A note is immutable once created; it can only be deleted. The owning
// contact is exclusive: removing the contact removes its notes.
type Note struct {
	ID        string    `json:"id"`
	ContactID string    `json:"contact_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

func NewNote(contactID, body string) (*Note, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, errors.New("note body is required")
	}

	return &Note{
		ID:        uuid.New().String(),
		ContactID: contactID,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}, nil
}

type NoteRepositoryInterface interface {
	Create(ctx context.Context, note *Note) error

	// ListByContact returns the contact's notes ordered by creation
	// time ascending.
	ListByContact(ctx context.Context, contactID string) ([]Note, error)

	Delete(ctx context.Context, id string) error
}
