package domain

import "time"

// SeedListings returns the initial catalog used to populate the listings
// collection on first read.
func SeedListings() []Listing {
	now := time.Now().UTC()
	return []Listing{
		{
			ID:          "1",
			Title:       "Frontend Developer Intern",
			CompanyName: "Meta",
			CompanyLogo: "https://picsum.photos/seed/meta/100/100",
			Location:    "Remote",
			Stipend:     "₹35,000/mo",
			Duration:    "6 Months",
			Industry:    "Technology",
			Type:        WorkTypeRemote,
			Description: "Work on building high-performance React components for global scale applications.",
			Skills:      []string{"React", "TypeScript", "Tailwind"},
			CreatedAt:   now,
			CreatedBy:   "admin-1",
		},
		{
			ID:          "2",
			Title:       "Data Analyst Intern",
			CompanyName: "Amazon",
			CompanyLogo: "https://picsum.photos/seed/amazon/100/100",
			Location:    "Bangalore, India",
			Stipend:     "₹30,000/mo",
			Duration:    "3 Months",
			Industry:    "E-commerce",
			Type:        WorkTypeOnSite,
			Description: "Help us derive insights from massive datasets to improve supply chain efficiency.",
			Skills:      []string{"Python", "SQL", "Tableau"},
			CreatedAt:   now,
			CreatedBy:   "admin-1",
		},
	}
}
