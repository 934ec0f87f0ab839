package usecase

import (
	"context"
	"io"
	"time"

	"github.com/radomlabs/radom-crm/internal/entity"
	"github.com/radomlabs/radom-crm/internal/infra/spreadsheet"
)

// ExportColumns is the fixed export schema, in order. "title" maps back
// to job_title on import, so an exported file re-imports cleanly.
var ExportColumns = []string{
	"id", "name", "email", "organization", "title",
	"category", "status", "created", "updated",
}

type ExportContactsUseCase struct {
	Repo ContactRepositoryInterface
}

func NewExportContactsUseCase(repo ContactRepositoryInterface) *ExportContactsUseCase {
	return &ExportContactsUseCase{Repo: repo}
}

// Execute serializes the filtered contact list to w, one row per
// contact, ordered by last update descending.
func (uc *ExportContactsUseCase) Execute(ctx context.Context, filter ContactFilter, format spreadsheet.Format, w io.Writer) error {
	contacts, err := uc.Repo.List(ctx, filter)
	if err != nil {
		return &StorageError{Op: "list contacts", Err: err}
	}

	if err := spreadsheet.Write(format, w, BuildContactTable(contacts)); err != nil {
		return &StorageError{Op: "write export", Err: err}
	}
	return nil
}

func BuildContactTable(contacts []entity.Contact) *spreadsheet.Table {
	table := &spreadsheet.Table{
		Headers: ExportColumns,
		Rows:    make([][]string, 0, len(contacts)),
	}

	for _, c := range contacts {
		table.Rows = append(table.Rows, []string{
			c.ID,
			c.Name,
			c.Email,
			c.Organization,
			c.JobTitle,
			c.Category,
			c.Status,
			c.CreatedAt.UTC().Format(time.RFC3339),
			c.UpdatedAt.UTC().Format(time.RFC3339),
		})
	}

	return table
}
