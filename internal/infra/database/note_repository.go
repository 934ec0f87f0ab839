package database

import (
	"context"
	"database/sql"

	"github.com/radomlabs/radom-crm/internal/entity"
)

type NoteRepository struct {
	DB *sql.DB
}

func NewNoteRepository(db *sql.DB) *NoteRepository {
	return &NoteRepository{DB: db}
}

func (r *NoteRepository) Create(ctx context.Context, note *entity.Note) error {
	query := `INSERT INTO notes (id, contact_id, body, created_at) VALUES (?, ?, ?, ?)`

	_, err := r.DB.ExecContext(ctx, query,
		note.ID,
		note.ContactID,
		note.Body,
		note.CreatedAt,
	)
	return err
}

func (r *NoteRepository) ListByContact(ctx context.Context, contactID string) ([]entity.Note, error) {
	query := `
		SELECT id, contact_id, body, created_at
		FROM notes
		WHERE contact_id = ?
		ORDER BY created_at ASC, id
	`

	rows, err := r.DB.QueryContext(ctx, query, contactID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := []entity.Note{}
	for rows.Next() {
		var n entity.Note
		if err := rows.Scan(&n.ID, &n.ContactID, &n.Body, &n.CreatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}

	return notes, rows.Err()
}

func (r *NoteRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrNoteNotFound
	}
	return nil
}
