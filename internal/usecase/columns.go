package usecase

import "strings"

// Canonical fields a spreadsheet column can map to. First and last name
// are intermediates that fold into name; fieldID addresses an existing
// row (exports carry it); fieldIgnored marks recognized timestamp
// columns that never import.
const (
	fieldName            = "name"
	fieldFirstName       = "first_name"
	fieldLastName        = "last_name"
	fieldEmail           = "email"
	fieldOrganization    = "organization"
	fieldJobTitle        = "job_title"
	fieldPhone           = "phone"
	fieldWebsite         = "website"
	fieldCity            = "city"
	fieldState           = "state"
	fieldCountry         = "country"
	fieldOwner           = "owner"
	fieldApplication     = "application"
	fieldProductInterest = "product_interest"
	fieldCategory        = "category"
	fieldStatus          = "status"
	fieldID              = "id"
	fieldIgnored         = "-"
)

// Header synonyms, keyed by canonicalized header. This is the enumerable
// configuration surface: IMPORT_HEADER_SYNONYMS extends it at startup.
var defaultHeaderSynonyms = map[string]string{
	"name":        fieldName,
	"fullname":    fieldName,
	"contactname": fieldName,
	"contact":     fieldName,

	"firstname":  fieldFirstName,
	"givenname":  fieldFirstName,
	"lastname":   fieldLastName,
	"surname":    fieldLastName,
	"familyname": fieldLastName,

	"email":        fieldEmail,
	"emailaddress": fieldEmail,
	"mail":         fieldEmail,

	"organization": fieldOrganization,
	"organisation": fieldOrganization,
	"company":      fieldOrganization,
	"affiliation":  fieldOrganization,
	"institution":  fieldOrganization,
	"employer":     fieldOrganization,

	"jobtitle":   fieldJobTitle,
	"title":      fieldJobTitle,
	"position":   fieldJobTitle,
	"role":       fieldJobTitle,
	"occupation": fieldJobTitle,

	"phone":       fieldPhone,
	"phonenumber": fieldPhone,
	"mobile":      fieldPhone,
	"telephone":   fieldPhone,

	"website":  fieldWebsite,
	"web":      fieldWebsite,
	"url":      fieldWebsite,
	"homepage": fieldWebsite,

	"city":     fieldCity,
	"state":    fieldState,
	"province": fieldState,
	"country":  fieldCountry,

	"owner":      fieldOwner,
	"salesowner": fieldOwner,

	"application":     fieldApplication,
	"productinterest": fieldProductInterest,
	"product":         fieldProductInterest,

	"category": fieldCategory,

	"status":   fieldStatus,
	"stage":    fieldStatus,
	"pipeline": fieldStatus,

	"id":        fieldID,
	"created":   fieldIgnored,
	"createdat": fieldIgnored,
	"updated":   fieldIgnored,
	"updatedat": fieldIgnored,
}

// canonicalizeHeader lowercases and strips everything but letters and
// digits, so "E-Mail Address", "email_address" and "EmailAddress" all
// land on the same key.
func canonicalizeHeader(header string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(header)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ParseHeaderSynonyms parses the IMPORT_HEADER_SYNONYMS value, a
// comma-separated list of header=field pairs. Unknown fields are dropped
// silently; a bad entry should not take the service down.
func ParseHeaderSynonyms(raw string) map[string]string {
	known := map[string]bool{
		fieldName: true, fieldFirstName: true, fieldLastName: true,
		fieldEmail: true, fieldOrganization: true, fieldJobTitle: true,
		fieldPhone: true, fieldWebsite: true, fieldCity: true,
		fieldState: true, fieldCountry: true, fieldOwner: true,
		fieldApplication: true, fieldProductInterest: true,
		fieldCategory: true, fieldStatus: true, fieldID: true,
		fieldIgnored: true,
	}

	out := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 {
			continue
		}
		header := canonicalizeHeader(kv[0])
		field := strings.TrimSpace(kv[1])
		if header == "" || !known[field] {
			continue
		}
		out[header] = field
	}
	return out
}

type ColumnMapper struct {
	synonyms map[string]string
}

func NewColumnMapper(extra map[string]string) *ColumnMapper {
	synonyms := make(map[string]string, len(defaultHeaderSynonyms)+len(extra))
	for k, v := range defaultHeaderSynonyms {
		synonyms[k] = v
	}
	for k, v := range extra {
		synonyms[canonicalizeHeader(k)] = v
	}
	return &ColumnMapper{synonyms: synonyms}
}

type columnMapping struct {
	fields   map[int]string // column index -> canonical field
	unmapped map[int]string // column index -> original header, kept as extra metadata
}

// hasIdentity reports whether the mapped columns can address a contact:
// an id, an email, or a name in some form.
func (m columnMapping) hasIdentity() bool {
	for _, f := range m.fields {
		switch f {
		case fieldID, fieldEmail, fieldName, fieldFirstName, fieldLastName:
			return true
		}
	}
	return false
}

func (cm *ColumnMapper) Map(headers []string) columnMapping {
	mapping := columnMapping{
		fields:   make(map[int]string),
		unmapped: make(map[int]string),
	}
	seen := make(map[string]bool)

	for i, header := range headers {
		key := canonicalizeHeader(header)
		field, ok := cm.synonyms[key]

		// First matching column wins; a second "Email" column is data,
		// not schema.
		if !ok || (field != fieldIgnored && seen[field]) {
			if strings.TrimSpace(header) != "" {
				mapping.unmapped[i] = strings.TrimSpace(header)
			}
			continue
		}

		mapping.fields[i] = field
		seen[field] = true
	}

	return mapping
}

type contactRecord struct {
	fields map[string]string
	extra  map[string]string
}

// Record projects one spreadsheet row through the mapping. Short rows
// are fine; missing cells read as empty.
func (cm *ColumnMapper) Record(mapping columnMapping, row []string) contactRecord {
	rec := contactRecord{fields: make(map[string]string)}

	for i, field := range mapping.fields {
		if field == fieldIgnored || i >= len(row) {
			continue
		}
		if v := strings.TrimSpace(row[i]); v != "" {
			rec.fields[field] = v
		}
	}

	if first, last := rec.fields[fieldFirstName], rec.fields[fieldLastName]; first != "" || last != "" {
		if rec.fields[fieldName] == "" {
			rec.fields[fieldName] = strings.TrimSpace(first + " " + last)
		}
		delete(rec.fields, fieldFirstName)
		delete(rec.fields, fieldLastName)
	}

	for i, header := range mapping.unmapped {
		if i >= len(row) {
			continue
		}
		if v := strings.TrimSpace(row[i]); v != "" {
			if rec.extra == nil {
				rec.extra = make(map[string]string)
			}
			rec.extra[header] = v
		}
	}

	return rec
}
