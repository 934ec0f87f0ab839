package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/radomlabs/radom-crm/internal/entity"
)

func TestCreateContactSuccess(t *testing.T) {
	ctx := context.Background()
	repo := new(MockContactRepository)
	notes := new(MockNoteRepository)

	repo.On("Create", ctx, mock.Anything).Return(nil)

	uc := NewCreateContactUseCase(repo, notes)
	contact, err := uc.Execute(ctx, CreateContactInput{
		Name:     "Grace Hopper",
		Email:    "grace@navy.mil",
		JobTitle: "Director of Systems",
		Website:  "example.com",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, contact.ID)
	assert.Equal(t, entity.CategoryIndustry, contact.Category)
	assert.Equal(t, entity.StatusNew, contact.Status)
	assert.Equal(t, "https://example.com", contact.Website)
	notes.AssertNotCalled(t, "Create")
}

func TestCreateContactWithInitialNote(t *testing.T) {
	ctx := context.Background()
	repo := new(MockContactRepository)
	notes := new(MockNoteRepository)

	repo.On("Create", ctx, mock.Anything).Return(nil)
	notes.On("Create", ctx, mock.Anything).Return(nil)

	uc := NewCreateContactUseCase(repo, notes)
	contact, err := uc.Execute(ctx, CreateContactInput{
		Name: "Grace Hopper",
		Note: "met at SC25 booth",
	})

	assert.NoError(t, err)

	note := notes.Calls[0].Arguments.Get(1).(*entity.Note)
	assert.Equal(t, contact.ID, note.ContactID)
	assert.Equal(t, "met at SC25 booth", note.Body)
}

func TestCreateContactRollsBackWhenNoteFails(t *testing.T) {
	ctx := context.Background()
	repo := new(MockContactRepository)
	notes := new(MockNoteRepository)

	repo.On("Create", ctx, mock.Anything).Return(nil)
	notes.On("Create", ctx, mock.Anything).Return(errors.New("disk full"))
	repo.On("Delete", ctx, mock.Anything).Return(nil)

	uc := NewCreateContactUseCase(repo, notes)
	contact, err := uc.Execute(ctx, CreateContactInput{
		Name: "Grace Hopper",
		Note: "this one will not stick",
	})

	assert.Nil(t, contact)
	assert.True(t, IsStorageError(err))
	repo.AssertCalled(t, "Delete", ctx, mock.Anything)
}

func TestCreateContactValidationFailure(t *testing.T) {
	repo := new(MockContactRepository)
	notes := new(MockNoteRepository)

	uc := NewCreateContactUseCase(repo, notes)

	_, err := uc.Execute(context.Background(), CreateContactInput{})
	assert.True(t, IsValidationError(err))

	_, err = uc.Execute(context.Background(), CreateContactInput{Name: "A", Email: "not-an-email"})
	assert.True(t, IsValidationError(err))

	_, err = uc.Execute(context.Background(), CreateContactInput{Name: "A", Status: "Closed"})
	assert.True(t, IsValidationError(err))

	repo.AssertNotCalled(t, "Create")
}

func TestCreateContactDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := new(MockContactRepository)
	notes := new(MockNoteRepository)

	repo.On("Create", ctx, mock.Anything).Return(entity.ErrEmailAlreadyExists)

	uc := NewCreateContactUseCase(repo, notes)
	_, err := uc.Execute(ctx, CreateContactInput{Name: "A", Email: "dup@example.com"})

	assert.ErrorIs(t, err, entity.ErrEmailAlreadyExists)
}
