package entity

import "strings"

const (
	CategoryPhDStudent = "PhD/Student"
	CategoryProfessor  = "Professor"
	CategoryIndustry   = "Industry"
	CategoryOther      = "Other"
)

var Categories = []string{
	CategoryPhDStudent,
	CategoryProfessor,
	CategoryIndustry,
	CategoryOther,
}

func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// Keyword groups are checked in order: academic titles win over industry
// ones, so "Professor of Chemical Engineering" stays academic even though
// "engineer" is an industry keyword.
var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{CategoryPhDStudent, []string{
		"phd", "ph.d", "doctoral", "candidate", "postdoc", "post-doc",
		"student", "research assistant", "grad ",
	}},
	{CategoryProfessor, []string{
		"professor", "prof.", "prof ", "faculty", "lecturer", "dean",
		"principal investigator", "department chair",
	}},
	{CategoryIndustry, []string{
		"engineer", "scientist", "developer", "manager", "director",
		"ceo", "cto", "coo", "cfo", "founder", "president", "vp",
		"vice president", "head of", "lead", "consultant", "analyst",
		"sales", "business", "product", "specialist", "officer",
	}},
}

// DeriveCategory maps a free-text job title to one of the fixed contact
// categories via case-insensitive substring match. Titles matching no
// keyword, including empty ones, fall back to Other.
func DeriveCategory(jobTitle string) string {
	title := strings.ToLower(strings.TrimSpace(jobTitle))
	if title == "" {
		return CategoryOther
	}

	for _, group := range categoryKeywords {
		for _, kw := range group.keywords {
			if strings.Contains(title, kw) {
				return group.category
			}
		}
	}

	return CategoryOther
}
