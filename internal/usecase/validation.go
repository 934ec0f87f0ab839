package usecase

import (
	"net/mail"
	"strings"

	"github.com/radomlabs/radom-crm/internal/entity"
)

func ValidateCreateContactInput(input CreateContactInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" && strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"name", "name or email is required"})
	}
	if len(input.Name) > 200 {
		errors = append(errors, ValidationError{"name", "must not exceed 200 characters"})
	}

	if e := strings.TrimSpace(input.Email); e != "" && !isValidEmail(e) {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	if input.Status != "" && !entity.IsValidStatus(input.Status) {
		errors = append(errors, ValidationError{"status", "must be one of the pipeline stages"})
	}

	if input.Category != "" && !entity.IsValidCategory(input.Category) {
		errors = append(errors, ValidationError{"category", "is not a known category"})
	}

	return errors
}

func ValidateUpdateContactInput(input UpdateContactInput) []ValidationError {
	var errors []ValidationError

	if len(input.Name) > 200 {
		errors = append(errors, ValidationError{"name", "must not exceed 200 characters"})
	}

	if e := strings.TrimSpace(input.Email); e != "" && !isValidEmail(e) {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	if input.Status != "" && !entity.IsValidStatus(input.Status) {
		errors = append(errors, ValidationError{"status", "must be one of the pipeline stages"})
	}

	if input.Category != "" && !entity.IsValidCategory(input.Category) {
		errors = append(errors, ValidationError{"category", "is not a known category"})
	}

	return errors
}

func isValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

// normalizeURL makes bare domains clickable in the UI.
func normalizeURL(v string) string {
	s := strings.TrimSpace(v)
	if s == "" {
		return ""
	}
	if strings.HasPrefix(s, "http") {
		return s
	}
	return "https://" + s
}
