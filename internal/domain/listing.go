package domain

import (
	"strings"
	"time"
)

// WorkType enumerates how an internship is attended.
type WorkType string

const (
	WorkTypeRemote WorkType = "Remote"
	WorkTypeOnSite WorkType = "On-site"
	WorkTypeHybrid WorkType = "Hybrid"
)

// Listing represents an internship posting.
type Listing struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	CompanyName string    `json:"companyName"`
	CompanyLogo string    `json:"companyLogo"`
	Location    string    `json:"location"`
	Stipend     string    `json:"stipend"`
	Duration    string    `json:"duration"`
	Description string    `json:"description"`
	Industry    string    `json:"industry"`
	Type        WorkType  `json:"type"`
	Skills      []string  `json:"skills"`
	CreatedAt   time.Time `json:"createdAt"`
	CreatedBy   string    `json:"createdBy"`
}

// ListingPatch carries a partial listing update. Nil fields are absent
// from the patch and leave the stored value untouched.
type ListingPatch struct {
	Title       *string   `json:"title"`
	CompanyName *string   `json:"companyName"`
	CompanyLogo *string   `json:"companyLogo"`
	Location    *string   `json:"location"`
	Stipend     *string   `json:"stipend"`
	Duration    *string   `json:"duration"`
	Description *string   `json:"description"`
	Industry    *string   `json:"industry"`
	Type        *WorkType `json:"type"`
	Skills      *[]string `json:"skills"`
	CreatedBy   *string   `json:"createdBy"`
}

// ApplyTo shallow-merges the patch over the listing: only present fields
// override.
func (p ListingPatch) ApplyTo(l *Listing) {
	if p.Title != nil {
		l.Title = *p.Title
	}
	if p.CompanyName != nil {
		l.CompanyName = *p.CompanyName
	}
	if p.CompanyLogo != nil {
		l.CompanyLogo = *p.CompanyLogo
	}
	if p.Location != nil {
		l.Location = *p.Location
	}
	if p.Stipend != nil {
		l.Stipend = *p.Stipend
	}
	if p.Duration != nil {
		l.Duration = *p.Duration
	}
	if p.Description != nil {
		l.Description = *p.Description
	}
	if p.Industry != nil {
		l.Industry = *p.Industry
	}
	if p.Type != nil {
		l.Type = *p.Type
	}
	if p.Skills != nil {
		l.Skills = *p.Skills
	}
	if p.CreatedBy != nil {
		l.CreatedBy = *p.CreatedBy
	}
}

// AppendSkill adds a skill to the list unless it is already present.
// Duplicates are applied here, not enforced by storage.
func AppendSkill(skills []string, skill string) []string {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return skills
	}
	for _, s := range skills {
		if s == skill {
			return skills
		}
	}
	return append(skills, skill)
}
