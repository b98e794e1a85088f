package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppendSkill(t *testing.T) {
	skills := AppendSkill(nil, "Go")
	skills = AppendSkill(skills, "SQL")
	assert.Equal(t, []string{"Go", "SQL"}, skills)

	// duplicates and blanks are dropped
	skills = AppendSkill(skills, "Go")
	skills = AppendSkill(skills, "  ")
	assert.Equal(t, []string{"Go", "SQL"}, skills)

	// entries are trimmed before comparison
	skills = AppendSkill(skills, " SQL ")
	assert.Equal(t, []string{"Go", "SQL"}, skills)
}

func TestListingPatchApplyTo(t *testing.T) {
	listing := Listing{
		ID:          "1",
		Title:       "Intern",
		CompanyName: "Acme",
		Stipend:     "$1000/mo",
		Skills:      []string{"Go"},
	}

	stipend := "$2000/mo"
	ListingPatch{Stipend: &stipend}.ApplyTo(&listing)

	assert.Equal(t, "$2000/mo", listing.Stipend)
	assert.Equal(t, "Intern", listing.Title)
	assert.Equal(t, "Acme", listing.CompanyName)
	assert.Equal(t, []string{"Go"}, listing.Skills)

	empty := ""
	skills := []string{"Go", "SQL"}
	ListingPatch{Title: &empty, Skills: &skills}.ApplyTo(&listing)

	// present fields override even with zero values
	assert.Equal(t, "", listing.Title)
	assert.Equal(t, []string{"Go", "SQL"}, listing.Skills)
}
