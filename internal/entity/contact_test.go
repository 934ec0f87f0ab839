package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewContactDerivesCategoryAndDefaults(t *testing.T) {
	contact, err := NewContact("Ada Lovelace", "ada@example.edu", "Analytical Engines Inc", "PhD Candidate")

	assert.NoError(t, err)
	assert.NotEmpty(t, contact.ID)
	assert.Equal(t, CategoryPhDStudent, contact.Category)
	assert.Equal(t, StatusNew, contact.Status)
	assert.False(t, contact.CreatedAt.IsZero())
	assert.Equal(t, contact.CreatedAt, contact.UpdatedAt)
	assert.Nil(t, contact.ArchivedAt)
}

func TestNewContactRequiresNameOrEmail(t *testing.T) {
	_, err := NewContact("", "", "Some Org", "CEO")
	assert.Error(t, err)

	_, err = NewContact("Name Only", "", "", "")
	assert.NoError(t, err)

	_, err = NewContact("", "email@only.com", "", "")
	assert.NoError(t, err)
}

func TestNewContactTrimsWhitespace(t *testing.T) {
	contact, err := NewContact("  Ada  ", " ada@example.edu ", " Org ", " Professor ")

	assert.NoError(t, err)
	assert.Equal(t, "Ada", contact.Name)
	assert.Equal(t, "ada@example.edu", contact.Email)
	assert.Equal(t, "Org", contact.Organization)
	assert.Equal(t, "Professor", contact.JobTitle)
}

func TestContactTouchAdvancesUpdatedAt(t *testing.T) {
	contact, err := NewContact("Ada", "", "", "")
	assert.NoError(t, err)

	before := contact.UpdatedAt
	time.Sleep(time.Millisecond)
	contact.Touch()

	assert.True(t, contact.UpdatedAt.After(before))
	assert.Equal(t, before, contact.CreatedAt)
}

func TestIsValidStatusCoversEveryPipelineStage(t *testing.T) {
	for _, s := range PipelineStatuses {
		assert.True(t, IsValidStatus(s), "stage %q", s)
	}
	assert.False(t, IsValidStatus("Closed"))
	assert.False(t, IsValidStatus(""))
	assert.False(t, IsValidStatus("new")) // statuses are case-sensitive
}

func TestNewNote(t *testing.T) {
	note, err := NewNote("contact-1", "  met at conference  ")

	assert.NoError(t, err)
	assert.NotEmpty(t, note.ID)
	assert.Equal(t, "contact-1", note.ContactID)
	assert.Equal(t, "met at conference", note.Body)
	assert.False(t, note.CreatedAt.IsZero())
}

func TestNewNoteRejectsEmptyBody(t *testing.T) {
	_, err := NewNote("contact-1", "   ")
	assert.Error(t, err)
}
