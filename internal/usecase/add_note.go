package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/radomlabs/radom-crm/internal/entity"
)

type AddNoteUseCase struct {
	Contacts ContactRepositoryInterface
	Notes    entity.NoteRepositoryInterface
}

func NewAddNoteUseCase(contacts ContactRepositoryInterface, notes entity.NoteRepositoryInterface) *AddNoteUseCase {
	return &AddNoteUseCase{Contacts: contacts, Notes: notes}
}

func (uc *AddNoteUseCase) Execute(ctx context.Context, contactID, body string) (*entity.Note, error) {
	if _, err := uc.Contacts.FindByID(ctx, contactID); err != nil {
		if errors.Is(err, entity.ErrContactNotFound) {
			return nil, err
		}
		return nil, &StorageError{Op: "find contact", Err: err}
	}

	note, err := entity.NewNote(contactID, body)
	if err != nil {
		return nil, ValidationError{"body", err.Error()}
	}

	if err := uc.Notes.Create(ctx, note); err != nil {
		return nil, &StorageError{Op: "create note", Err: err}
	}

	// A note addition counts as a contact mutation.
	if err := uc.Contacts.Touch(ctx, contactID, time.Now().UTC()); err != nil {
		return nil, &StorageError{Op: "touch contact", Err: err}
	}

	return note, nil
}
