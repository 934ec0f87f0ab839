package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/radomlabs/radom-crm/internal/entity"
	"github.com/radomlabs/radom-crm/internal/infra/spreadsheet"
)

type ImportContactsUseCase struct {
	Repo   ContactRepositoryInterface
	Mapper *ColumnMapper

	// When set, the full contact list is rewritten to this CSV after
	// every successful import.
	BackupPath string
}

func NewImportContactsUseCase(repo ContactRepositoryInterface, mapper *ColumnMapper, backupPath string) *ImportContactsUseCase {
	return &ImportContactsUseCase{
		Repo:       repo,
		Mapper:     mapper,
		BackupPath: backupPath,
	}
}

// Execute walks the uploaded table row by row: map columns, derive the
// category, then insert or merge. An id column (exports carry one)
// addresses the stored row directly; otherwise the email is the dedup
// key. Malformed rows are counted and skipped; only a storage failure
// aborts the import.
func (uc *ImportContactsUseCase) Execute(ctx context.Context, table *spreadsheet.Table) (*ImportSummary, error) {
	if table == nil || len(table.Headers) == 0 {
		return nil, ValidationError{"file", "the spreadsheet has no header row"}
	}

	mapping := uc.Mapper.Map(table.Headers)
	if !mapping.hasIdentity() {
		return nil, ValidationError{"file", "no recognizable email or name column"}
	}

	summary := &ImportSummary{Rows: len(table.Rows)}

	// Rows without an email dedup against each other by exact name, but
	// only within this upload.
	byName := make(map[string]*entity.Contact)

	for i, row := range table.Rows {
		rowNum := i + 2 // 1-based, after the header row

		rec := uc.Mapper.Record(mapping, row)
		name := rec.fields[fieldName]
		email := rec.fields[fieldEmail]

		existing, err := uc.findExisting(ctx, rec.fields[fieldID], email, name, byName)
		if err != nil {
			return nil, &StorageError{Op: fmt.Sprintf("lookup row %d", rowNum), Err: err}
		}

		if existing != nil {
			mergeContact(existing, rec)
			if err := uc.Repo.Update(ctx, existing); err != nil {
				return nil, &StorageError{Op: fmt.Sprintf("merge row %d", rowNum), Err: err}
			}
			summary.Merged++
			continue
		}

		if name == "" && email == "" {
			summary.Skipped++
			summary.RowErrors = append(summary.RowErrors, ImportRowError{
				Row:    rowNum,
				Reason: "missing both name and email",
			})
			continue
		}

		incoming, err := contactFromRecord(rec)
		if err != nil {
			summary.Skipped++
			summary.RowErrors = append(summary.RowErrors, ImportRowError{Row: rowNum, Reason: err.Error()})
			continue
		}

		if err := uc.Repo.Create(ctx, incoming); err != nil {
			return nil, &StorageError{Op: fmt.Sprintf("insert row %d", rowNum), Err: err}
		}
		summary.Imported++
		if email == "" {
			byName[strings.ToLower(name)] = incoming
		}
	}

	if uc.BackupPath != "" {
		// Best effort: the import already succeeded.
		if err := uc.writeBackup(ctx); err != nil {
			log.Printf("contact backup to %s failed: %v", uc.BackupPath, err)
		}
	}

	return summary, nil
}

func (uc *ImportContactsUseCase) findExisting(ctx context.Context, id, email, name string, byName map[string]*entity.Contact) (*entity.Contact, error) {
	if id != "" {
		existing, err := uc.Repo.FindByID(ctx, id)
		if err == nil {
			return existing, nil
		}
		if !errors.Is(err, entity.ErrContactNotFound) {
			return nil, err
		}
	}
	if email != "" {
		existing, err := uc.Repo.FindByEmail(ctx, email)
		if errors.Is(err, entity.ErrContactNotFound) {
			return nil, nil
		}
		return existing, err
	}
	return byName[strings.ToLower(name)], nil
}

// contactFromRecord builds a fresh contact from a mapped row. An explicit
// valid category column beats the derived one; an explicit valid status
// column beats New. Invalid values fall back rather than fail: a typo in
// one cell should not cost the whole row.
func contactFromRecord(rec contactRecord) (*entity.Contact, error) {
	contact, err := entity.NewContact(
		rec.fields[fieldName],
		rec.fields[fieldEmail],
		rec.fields[fieldOrganization],
		rec.fields[fieldJobTitle],
	)
	if err != nil {
		return nil, err
	}

	contact.Phone = rec.fields[fieldPhone]
	contact.Website = normalizeURL(rec.fields[fieldWebsite])
	contact.City = rec.fields[fieldCity]
	contact.State = rec.fields[fieldState]
	contact.Country = rec.fields[fieldCountry]
	contact.Owner = rec.fields[fieldOwner]
	contact.Application = rec.fields[fieldApplication]
	contact.ProductInterest = rec.fields[fieldProductInterest]
	contact.Extra = rec.extra

	if c := rec.fields[fieldCategory]; entity.IsValidCategory(c) {
		contact.Category = c
	}
	if s := rec.fields[fieldStatus]; entity.IsValidStatus(s) {
		contact.Status = s
	}

	return contact, nil
}

// mergeContact applies a mapped row onto an existing contact: non-empty
// incoming values win, empty ones preserve what is stored.
func mergeContact(existing *entity.Contact, rec contactRecord) {
	titleChanged := false
	if v := rec.fields[fieldJobTitle]; v != "" && v != existing.JobTitle {
		existing.JobTitle = v
		titleChanged = true
	}

	setIfPresent(&existing.Name, rec.fields[fieldName])
	setIfPresent(&existing.Email, rec.fields[fieldEmail])
	setIfPresent(&existing.Organization, rec.fields[fieldOrganization])
	setIfPresent(&existing.Phone, rec.fields[fieldPhone])
	setIfPresent(&existing.Website, normalizeURL(rec.fields[fieldWebsite]))
	setIfPresent(&existing.City, rec.fields[fieldCity])
	setIfPresent(&existing.State, rec.fields[fieldState])
	setIfPresent(&existing.Country, rec.fields[fieldCountry])
	setIfPresent(&existing.Owner, rec.fields[fieldOwner])
	setIfPresent(&existing.Application, rec.fields[fieldApplication])
	setIfPresent(&existing.ProductInterest, rec.fields[fieldProductInterest])

	switch {
	case entity.IsValidCategory(rec.fields[fieldCategory]):
		existing.Category = rec.fields[fieldCategory]
	case titleChanged:
		existing.Category = entity.DeriveCategory(existing.JobTitle)
	}

	if s := rec.fields[fieldStatus]; entity.IsValidStatus(s) {
		existing.Status = s
	}

	for k, v := range rec.extra {
		if existing.Extra == nil {
			existing.Extra = make(map[string]string)
		}
		existing.Extra[k] = v
	}

	existing.Touch()
}

func (uc *ImportContactsUseCase) writeBackup(ctx context.Context) error {
	contacts, err := uc.Repo.List(ctx, ContactFilter{IncludeArchived: true})
	if err != nil {
		return err
	}

	if dir := filepath.Dir(uc.BackupPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	f, err := os.Create(uc.BackupPath)
	if err != nil {
		return err
	}
	defer f.Close()

	return spreadsheet.Write(spreadsheet.FormatCSV, f, BuildContactTable(contacts))
}
