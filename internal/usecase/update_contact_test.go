package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/radomlabs/radom-crm/internal/entity"
)

func storedContact(t *testing.T) *entity.Contact {
	t.Helper()
	contact, err := entity.NewContact("Jane Doe", "jane@uni.edu", "State University", "PhD Candidate")
	assert.NoError(t, err)
	return contact
}

func TestUpdateContactAppliesNonEmptyFields(t *testing.T) {
	ctx := context.Background()
	repo := new(MockContactRepository)
	contact := storedContact(t)
	before := contact.UpdatedAt

	repo.On("FindByID", ctx, contact.ID).Return(contact, nil)
	repo.On("Update", ctx, mock.Anything).Return(nil)

	time.Sleep(time.Millisecond)

	uc := NewUpdateContactUseCase(repo)
	updated, err := uc.Execute(ctx, contact.ID, UpdateContactInput{
		Organization: "Radom Institute",
		Phone:        "+46 555 0100",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Radom Institute", updated.Organization)
	assert.Equal(t, "+46 555 0100", updated.Phone)
	assert.Equal(t, "Jane Doe", updated.Name) // untouched
	assert.True(t, updated.UpdatedAt.After(before))
}

func TestUpdateContactRederivesCategoryOnTitleChange(t *testing.T) {
	ctx := context.Background()
	repo := new(MockContactRepository)
	contact := storedContact(t)
	assert.Equal(t, entity.CategoryPhDStudent, contact.Category)

	repo.On("FindByID", ctx, contact.ID).Return(contact, nil)
	repo.On("Update", ctx, mock.Anything).Return(nil)

	uc := NewUpdateContactUseCase(repo)
	updated, err := uc.Execute(ctx, contact.ID, UpdateContactInput{
		JobTitle: "Assistant Professor",
	})

	assert.NoError(t, err)
	assert.Equal(t, entity.CategoryProfessor, updated.Category)
}

func TestUpdateContactExplicitCategoryWins(t *testing.T) {
	ctx := context.Background()
	repo := new(MockContactRepository)
	contact := storedContact(t)

	repo.On("FindByID", ctx, contact.ID).Return(contact, nil)
	repo.On("Update", ctx, mock.Anything).Return(nil)

	uc := NewUpdateContactUseCase(repo)
	updated, err := uc.Execute(ctx, contact.ID, UpdateContactInput{
		JobTitle: "Assistant Professor",
		Category: entity.CategoryIndustry,
	})

	assert.NoError(t, err)
	assert.Equal(t, entity.CategoryIndustry, updated.Category)
}

func TestUpdateContactNotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(MockContactRepository)

	repo.On("FindByID", ctx, "missing").Return(nil, entity.ErrContactNotFound)

	uc := NewUpdateContactUseCase(repo)
	_, err := uc.Execute(ctx, "missing", UpdateContactInput{Name: "X"})

	assert.ErrorIs(t, err, entity.ErrContactNotFound)
}

func TestSetStatusAllowsEveryTransition(t *testing.T) {
	ctx := context.Background()

	// Every stage is reachable from every other stage, including
	// backwards moves out of Won and Lost.
	for _, from := range entity.PipelineStatuses {
		for _, to := range entity.PipelineStatuses {
			repo := new(MockContactRepository)
			contact := storedContact(t)
			contact.Status = from

			repo.On("FindByID", ctx, contact.ID).Return(contact, nil)
			repo.On("Update", ctx, mock.Anything).Return(nil)

			uc := NewSetStatusUseCase(repo)
			updated, err := uc.Execute(ctx, contact.ID, to)

			assert.NoError(t, err, "%s -> %s", from, to)
			assert.Equal(t, to, updated.Status)
		}
	}
}

func TestSetStatusRejectsUnknownStage(t *testing.T) {
	repo := new(MockContactRepository)

	uc := NewSetStatusUseCase(repo)
	_, err := uc.Execute(context.Background(), "any", "Closed")

	assert.True(t, IsValidationError(err))
	repo.AssertNotCalled(t, "FindByID")
}

func TestSetStatusTouchesUpdatedAt(t *testing.T) {
	ctx := context.Background()
	repo := new(MockContactRepository)
	contact := storedContact(t)
	before := contact.UpdatedAt

	repo.On("FindByID", ctx, contact.ID).Return(contact, nil)
	repo.On("Update", ctx, mock.Anything).Return(nil)

	time.Sleep(time.Millisecond)

	uc := NewSetStatusUseCase(repo)
	updated, err := uc.Execute(ctx, contact.ID, "Contacted")

	assert.NoError(t, err)
	assert.True(t, updated.UpdatedAt.After(before))
}

func TestAddNoteTouchesContact(t *testing.T) {
	ctx := context.Background()
	repo := new(MockContactRepository)
	notes := new(MockNoteRepository)
	contact := storedContact(t)

	repo.On("FindByID", ctx, contact.ID).Return(contact, nil)
	notes.On("Create", ctx, mock.Anything).Return(nil)
	repo.On("Touch", ctx, contact.ID, mock.Anything).Return(nil)

	uc := NewAddNoteUseCase(repo, notes)
	note, err := uc.Execute(ctx, contact.ID, "followed up by phone")

	assert.NoError(t, err)
	assert.Equal(t, contact.ID, note.ContactID)
	assert.False(t, note.CreatedAt.Before(contact.CreatedAt))
	repo.AssertCalled(t, "Touch", ctx, contact.ID, mock.Anything)
}

func TestAddNoteToMissingContact(t *testing.T) {
	ctx := context.Background()
	repo := new(MockContactRepository)
	notes := new(MockNoteRepository)

	repo.On("FindByID", ctx, "missing").Return(nil, entity.ErrContactNotFound)

	uc := NewAddNoteUseCase(repo, notes)
	_, err := uc.Execute(ctx, "missing", "body")

	assert.ErrorIs(t, err, entity.ErrContactNotFound)
	notes.AssertNotCalled(t, "Create")
}

func TestAddNoteRejectsEmptyBody(t *testing.T) {
	ctx := context.Background()
	repo := new(MockContactRepository)
	notes := new(MockNoteRepository)
	contact := storedContact(t)

	repo.On("FindByID", ctx, contact.ID).Return(contact, nil)

	uc := NewAddNoteUseCase(repo, notes)
	_, err := uc.Execute(ctx, contact.ID, "   ")

	assert.True(t, IsValidationError(err))
	notes.AssertNotCalled(t, "Create")
}
