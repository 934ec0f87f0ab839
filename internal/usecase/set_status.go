package usecase

import (
	"context"
	"errors"

	"github.com/radomlabs/radom-crm/internal/entity"
)

type SetStatusUseCase struct {
	Repo ContactRepositoryInterface
}

func NewSetStatusUseCase(repo ContactRepositoryInterface) *SetStatusUseCase {
	return &SetStatusUseCase{Repo: repo}
}

// Execute moves a contact to any pipeline stage. There is no transition
// table: the UI offers every stage at all times.
func (uc *SetStatusUseCase) Execute(ctx context.Context, id, status string) (*entity.Contact, error) {
	if !entity.IsValidStatus(status) {
		return nil, ValidationError{"status", "must be one of the pipeline stages"}
	}

	contact, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrContactNotFound) {
			return nil, err
		}
		return nil, &StorageError{Op: "find contact", Err: err}
	}

	contact.Status = status
	contact.Touch()

	if err := uc.Repo.Update(ctx, contact); err != nil {
		return nil, &StorageError{Op: "update status", Err: err}
	}

	return contact, nil
}
