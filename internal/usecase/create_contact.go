package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/radomlabs/radom-crm/internal/entity"
)

type CreateContactUseCase struct {
	Repo  ContactRepositoryInterface
	Notes entity.NoteRepositoryInterface
}

func NewCreateContactUseCase(repo ContactRepositoryInterface, notes entity.NoteRepositoryInterface) *CreateContactUseCase {
	return &CreateContactUseCase{Repo: repo, Notes: notes}
}

func (uc *CreateContactUseCase) Execute(ctx context.Context, input CreateContactInput) (*entity.Contact, error) {
	if validationErrors := ValidateCreateContactInput(input); len(validationErrors) > 0 {
		return nil, validationErrors[0]
	}

	contact, err := entity.NewContact(input.Name, input.Email, input.Organization, input.JobTitle)
	if err != nil {
		return nil, ValidationError{"contact", err.Error()}
	}

	contact.Phone = strings.TrimSpace(input.Phone)
	contact.Website = normalizeURL(input.Website)
	contact.City = strings.TrimSpace(input.City)
	contact.State = strings.TrimSpace(input.State)
	contact.Country = strings.TrimSpace(input.Country)
	contact.Owner = strings.TrimSpace(input.Owner)
	contact.Application = strings.TrimSpace(input.Application)
	contact.ProductInterest = strings.TrimSpace(input.ProductInterest)

	// Explicit category wins over the derived one.
	if input.Category != "" {
		contact.Category = input.Category
	}
	if input.Status != "" {
		contact.Status = input.Status
	}

	var note *entity.Note
	if strings.TrimSpace(input.Note) != "" {
		note, err = entity.NewNote(contact.ID, input.Note)
		if err != nil {
			return nil, ValidationError{"note", err.Error()}
		}
	}

	txn := NewTransaction()

	txn.AddOperation("create_contact", func(ctx context.Context) error {
		return uc.Repo.Create(ctx, contact)
	})
	txn.AddCompensation("delete_contact", func(ctx context.Context) error {
		return uc.Repo.Delete(ctx, contact.ID)
	})

	if note != nil {
		txn.AddOperation("create_note", func(ctx context.Context) error {
			return uc.Notes.Create(ctx, note)
		})
	}

	if err := txn.Execute(ctx); err != nil {
		if errors.Is(err, entity.ErrEmailAlreadyExists) {
			return nil, entity.ErrEmailAlreadyExists
		}
		return nil, &StorageError{Op: "create contact", Err: err}
	}

	return contact, nil
}
