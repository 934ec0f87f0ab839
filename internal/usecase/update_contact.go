package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/radomlabs/radom-crm/internal/entity"
)

type UpdateContactUseCase struct {
	Repo ContactRepositoryInterface
}

func NewUpdateContactUseCase(repo ContactRepositoryInterface) *UpdateContactUseCase {
	return &UpdateContactUseCase{Repo: repo}
}

// Execute applies the non-empty fields of input to the stored contact and
// touches the last-updated timestamp. When the job title changes and no
// explicit category came with it, the category is re-derived.
func (uc *UpdateContactUseCase) Execute(ctx context.Context, id string, input UpdateContactInput) (*entity.Contact, error) {
	if validationErrors := ValidateUpdateContactInput(input); len(validationErrors) > 0 {
		return nil, validationErrors[0]
	}

	contact, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrContactNotFound) {
			return nil, err
		}
		return nil, &StorageError{Op: "find contact", Err: err}
	}

	titleChanged := false
	if v := strings.TrimSpace(input.JobTitle); v != "" && v != contact.JobTitle {
		contact.JobTitle = v
		titleChanged = true
	}

	setIfPresent(&contact.Name, input.Name)
	setIfPresent(&contact.Email, input.Email)
	setIfPresent(&contact.Organization, input.Organization)
	setIfPresent(&contact.Phone, input.Phone)
	setIfPresent(&contact.City, input.City)
	setIfPresent(&contact.State, input.State)
	setIfPresent(&contact.Country, input.Country)
	setIfPresent(&contact.Owner, input.Owner)
	setIfPresent(&contact.Application, input.Application)
	setIfPresent(&contact.ProductInterest, input.ProductInterest)

	if v := normalizeURL(input.Website); v != "" {
		contact.Website = v
	}

	switch {
	case input.Category != "":
		contact.Category = input.Category
	case titleChanged:
		contact.Category = entity.DeriveCategory(contact.JobTitle)
	}

	if input.Status != "" {
		contact.Status = input.Status
	}

	if err := contact.Validate(); err != nil {
		return nil, ValidationError{"contact", err.Error()}
	}

	contact.Touch()

	if err := uc.Repo.Update(ctx, contact); err != nil {
		if errors.Is(err, entity.ErrEmailAlreadyExists) {
			return nil, entity.ErrEmailAlreadyExists
		}
		return nil, &StorageError{Op: "update contact", Err: err}
	}

	return contact, nil
}

func setIfPresent(dst *string, v string) {
	if s := strings.TrimSpace(v); s != "" {
		*dst = s
	}
}
