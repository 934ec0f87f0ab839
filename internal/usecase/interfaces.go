package usecase

import (
	"context"
	"time"

	"github.com/radomlabs/radom-crm/internal/entity"
)

// ContactFilter narrows a listing. Zero values mean "no restriction";
// Search matches name, organization and job title case-insensitively.
type ContactFilter struct {
	Status          string
	Category        string
	Search          string
	IncludeArchived bool
}

type ContactRepositoryInterface interface {
	Create(ctx context.Context, c *entity.Contact) error
	Update(ctx context.Context, c *entity.Contact) error
	FindByID(ctx context.Context, id string) (*entity.Contact, error)

	// FindByEmail matches case-insensitively.
	FindByEmail(ctx context.Context, email string) (*entity.Contact, error)

	// List returns matching contacts ordered by last update descending,
	// id as tie-breaker.
	List(ctx context.Context, filter ContactFilter) ([]entity.Contact, error)

	// Touch bumps updated_at without changing anything else.
	Touch(ctx context.Context, id string, when time.Time) error

	// Archive soft-deletes; archived contacts drop out of default
	// listings but stay in the store.
	Archive(ctx context.Context, id string, when time.Time) error

	// Delete removes the row for real. Only used to roll back a failed
	// multi-step creation; the user-facing path is Archive.
	Delete(ctx context.Context, id string) error
}
