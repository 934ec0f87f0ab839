package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/radomlabs/radom-crm/internal/entity"
	"github.com/radomlabs/radom-crm/internal/usecase"
)

const contactColumns = `
	id, name, email, organization, job_title, category, status,
	phone, website, city, state, country, owner, application,
	product_interest, extra, created_at, updated_at, archived_at`

type ContactRepository struct {
	DB *sql.DB
}

func NewContactRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{DB: db}
}

func (r *ContactRepository) Create(ctx context.Context, c *entity.Contact) error {
	extra, err := marshalExtra(c.Extra)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO contacts (` + contactColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.DB.ExecContext(ctx, query,
		c.ID,
		c.Name,
		nullString(c.Email),
		c.Organization,
		c.JobTitle,
		c.Category,
		c.Status,
		c.Phone,
		c.Website,
		c.City,
		c.State,
		c.Country,
		c.Owner,
		c.Application,
		c.ProductInterest,
		extra,
		c.CreatedAt,
		c.UpdatedAt,
		nullTime(c.ArchivedAt),
	)

	if err != nil {
		var se *sqlite.Error
		if errors.As(err, &se) && se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
			return entity.ErrEmailAlreadyExists
		}
		return err
	}

	return nil
}

func (r *ContactRepository) Update(ctx context.Context, c *entity.Contact) error {
	extra, err := marshalExtra(c.Extra)
	if err != nil {
		return err
	}

	query := `
		UPDATE contacts SET
			name = ?, email = ?, organization = ?, job_title = ?,
			category = ?, status = ?, phone = ?, website = ?,
			city = ?, state = ?, country = ?, owner = ?,
			application = ?, product_interest = ?, extra = ?,
			updated_at = ?, archived_at = ?
		WHERE id = ?
	`

	res, err := r.DB.ExecContext(ctx, query,
		c.Name,
		nullString(c.Email),
		c.Organization,
		c.JobTitle,
		c.Category,
		c.Status,
		c.Phone,
		c.Website,
		c.City,
		c.State,
		c.Country,
		c.Owner,
		c.Application,
		c.ProductInterest,
		extra,
		c.UpdatedAt,
		nullTime(c.ArchivedAt),
		c.ID,
	)

	if err != nil {
		var se *sqlite.Error
		if errors.As(err, &se) && se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
			return entity.ErrEmailAlreadyExists
		}
		return err
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrContactNotFound
	}
	return nil
}

func (r *ContactRepository) FindByID(ctx context.Context, id string) (*entity.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE id = ?`
	return scanContact(r.DB.QueryRowContext(ctx, query, id))
}

func (r *ContactRepository) FindByEmail(ctx context.Context, email string) (*entity.Contact, error) {
	// email is declared COLLATE NOCASE, so = matches case-insensitively.
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE email = ?`
	return scanContact(r.DB.QueryRowContext(ctx, query, strings.TrimSpace(email)))
}

func (r *ContactRepository) List(ctx context.Context, filter usecase.ContactFilter) ([]entity.Contact, error) {
	var (
		where []string
		args  []any
	)

	if !filter.IncludeArchived {
		where = append(where, "archived_at IS NULL")
	}
	if filter.Status != "" {
		where = append(where, "status = ?")
		args = append(args, filter.Status)
	}
	if filter.Category != "" {
		where = append(where, "category = ?")
		args = append(args, filter.Category)
	}
	if q := strings.TrimSpace(filter.Search); q != "" {
		where = append(where, `(
			lower(name) LIKE '%' || ? || '%' OR
			lower(organization) LIKE '%' || ? || '%' OR
			lower(job_title) LIKE '%' || ? || '%'
		)`)
		needle := strings.ToLower(q)
		args = append(args, needle, needle, needle)
	}

	query := `SELECT ` + contactColumns + ` FROM contacts`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY updated_at DESC, id"

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []entity.Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, *c)
	}

	return contacts, rows.Err()
}

func (r *ContactRepository) Touch(ctx context.Context, id string, when time.Time) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE contacts SET updated_at = ? WHERE id = ?`, when, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrContactNotFound
	}
	return nil
}

func (r *ContactRepository) Archive(ctx context.Context, id string, when time.Time) error {
	query := `UPDATE contacts SET archived_at = ?, updated_at = ? WHERE id = ? AND archived_at IS NULL`
	res, err := r.DB.ExecContext(ctx, query, when, when, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrContactNotFound
	}
	return nil
}

// Delete removes the row for real; notes cascade with it. Only the
// rollback path of contact creation uses this.
func (r *ContactRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM contacts WHERE id = ?`, id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanContact(row rowScanner) (*entity.Contact, error) {
	var (
		c        entity.Contact
		email    sql.NullString
		extra    string
		archived sql.NullTime
	)

	err := row.Scan(
		&c.ID,
		&c.Name,
		&email,
		&c.Organization,
		&c.JobTitle,
		&c.Category,
		&c.Status,
		&c.Phone,
		&c.Website,
		&c.City,
		&c.State,
		&c.Country,
		&c.Owner,
		&c.Application,
		&c.ProductInterest,
		&extra,
		&c.CreatedAt,
		&c.UpdatedAt,
		&archived,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrContactNotFound
		}
		return nil, err
	}

	c.Email = email.String
	if archived.Valid {
		t := archived.Time
		c.ArchivedAt = &t
	}
	if extra != "" && extra != "{}" {
		if err := json.Unmarshal([]byte(extra), &c.Extra); err != nil {
			return nil, fmt.Errorf("corrupt extra column on contact %s: %w", c.ID, err)
		}
	}

	return &c, nil
}

func marshalExtra(extra map[string]string) (string, error) {
	if len(extra) == 0 {
		return "{}", nil
	}
	b, err := json.Marshal(extra)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Empty emails are stored as NULL so the unique index only applies to
// contacts that actually have one.
func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}
