package usecase

type CreateContactInput struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Organization string `json:"organization"`
	JobTitle     string `json:"job_title"`
	Category     string `json:"category"`
	Status       string `json:"status"`

	Phone           string `json:"phone"`
	Website         string `json:"website"`
	City            string `json:"city"`
	State           string `json:"state"`
	Country         string `json:"country"`
	Owner           string `json:"owner"`
	Application     string `json:"application"`
	ProductInterest string `json:"product_interest"`

	// Optional first note, saved together with the contact.
	Note string `json:"note"`
}

// UpdateContactInput carries field edits. Empty fields leave the stored
// value untouched, mirroring the import merge policy.
type UpdateContactInput struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Organization string `json:"organization"`
	JobTitle     string `json:"job_title"`
	Category     string `json:"category"`
	Status       string `json:"status"`

	Phone           string `json:"phone"`
	Website         string `json:"website"`
	City            string `json:"city"`
	State           string `json:"state"`
	Country         string `json:"country"`
	Owner           string `json:"owner"`
	Application     string `json:"application"`
	ProductInterest string `json:"product_interest"`
}

type ImportSummary struct {
	Rows      int              `json:"rows"`
	Imported  int              `json:"imported"`
	Merged    int              `json:"merged"`
	Skipped   int              `json:"skipped"`
	RowErrors []ImportRowError `json:"row_errors,omitempty"`
}
