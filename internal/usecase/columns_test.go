package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeHeader(t *testing.T) {
	assert.Equal(t, "email", canonicalizeHeader("E-Mail"))
	assert.Equal(t, "emailaddress", canonicalizeHeader("  Email Address "))
	assert.Equal(t, "jobtitle", canonicalizeHeader("Job_Title"))
	assert.Equal(t, "", canonicalizeHeader("  ---  "))
}

func TestColumnMapperMapsSynonyms(t *testing.T) {
	mapper := NewColumnMapper(nil)

	mapping := mapper.Map([]string{"e-mail", "Company", "Position", "Phone Number", "Favorite Color"})

	assert.Equal(t, fieldEmail, mapping.fields[0])
	assert.Equal(t, fieldOrganization, mapping.fields[1])
	assert.Equal(t, fieldJobTitle, mapping.fields[2])
	assert.Equal(t, fieldPhone, mapping.fields[3])
	assert.Equal(t, "Favorite Color", mapping.unmapped[4])
	assert.True(t, mapping.hasIdentity())
}

func TestColumnMapperFirstMatchWins(t *testing.T) {
	mapper := NewColumnMapper(nil)

	mapping := mapper.Map([]string{"Email", "E-Mail Address"})

	assert.Equal(t, fieldEmail, mapping.fields[0])
	// The second email-ish column is treated as data, not schema.
	assert.Equal(t, "E-Mail Address", mapping.unmapped[1])
}

func TestColumnMapperKeepsIDDropsTimestamps(t *testing.T) {
	mapper := NewColumnMapper(nil)

	mapping := mapper.Map([]string{"id", "Created", "Updated", "Name"})
	rec := mapper.Record(mapping, []string{"abc-123", "2024-01-01", "2024-06-01", "Jane"})

	assert.Equal(t, "abc-123", rec.fields[fieldID])
	assert.Equal(t, "Jane", rec.fields[fieldName])
	assert.Empty(t, rec.fields[fieldIgnored])
	assert.Empty(t, rec.extra)
	assert.True(t, mapping.hasIdentity())
}

func TestRecordJoinsFirstAndLastName(t *testing.T) {
	mapper := NewColumnMapper(nil)

	mapping := mapper.Map([]string{"First Name", "Last Name", "Email"})
	rec := mapper.Record(mapping, []string{"Jane", "Doe", "jane@uni.edu"})

	assert.Equal(t, "Jane Doe", rec.fields[fieldName])
	assert.Equal(t, "jane@uni.edu", rec.fields[fieldEmail])
}

func TestRecordHandlesShortRows(t *testing.T) {
	mapper := NewColumnMapper(nil)

	mapping := mapper.Map([]string{"Name", "Email", "Company"})
	rec := mapper.Record(mapping, []string{"Jane"})

	assert.Equal(t, "Jane", rec.fields[fieldName])
	assert.Empty(t, rec.fields[fieldEmail])
}

func TestParseHeaderSynonyms(t *testing.T) {
	extra := ParseHeaderSynonyms("Ansprechpartner=name, Firma=organization, bogus, Nope=notafield")

	assert.Equal(t, map[string]string{
		"ansprechpartner": "name",
		"firma":           "organization",
	}, extra)

	mapper := NewColumnMapper(extra)
	mapping := mapper.Map([]string{"Ansprechpartner", "Firma"})
	assert.Equal(t, fieldName, mapping.fields[0])
	assert.Equal(t, fieldOrganization, mapping.fields[1])
}
