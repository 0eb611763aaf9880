// Package seeder drives a running service end to end with generated
// demo data: one profile, a batch of plausible contacts, then the
// analyze/suggest/stats flow.
package seeder

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"math/rand"
)

// sample value pools for generated contacts.
var (
	firstNames = []string{"Sarah", "James", "Priya", "Miguel", "Elena", "David", "Aisha", "Tom", "Linda", "Omar"}
	lastNames  = []string{"Chen", "Okafor", "Martinez", "Kim", "Novak", "Patel", "Johnson", "Weber", "Ali", "Brooks"}

	titles = []string{
		"Chief Medical Officer",
		"VP Digital Transformation",
		"Director of Innovation",
		"Clinical Analyst",
		"Sales Manager",
		"Head of AI Research",
		"Procurement Specialist",
		"CTO",
	}
	companies = []string{
		"Mercy General Hospital",
		"Lakeside Health System",
		"Acme Devices",
		"BrightPath Clinic",
		"Northgate Medical Center",
		"Vertex Supplies",
		"CarePoint Healthcare Network",
	}
	industries = []string{
		"Healthcare",
		"Digital Health",
		"Medical Devices",
		"Pharma",
		"Retail",
		"Biotech",
	}
	conferences = []string{
		"HIMSS 2025",
		"AHA 2025",
		"JP Morgan 2025",
		"BIO 2025",
	}
)

// GenerateCSV produces a header-keyed contact CSV with count rows.
// The rng seed makes runs reproducible.
func GenerateCSV(rng *rand.Rand, count int) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"name", "email", "company", "title", "industry", "conference"}); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for i := 0; i < count; i++ {
		first := firstNames[rng.Intn(len(firstNames))]
		last := lastNames[rng.Intn(len(lastNames))]
		row := []string{
			first + " " + last,
			fmt.Sprintf("%s.%s%d@example.com", first, last, i),
			companies[rng.Intn(len(companies))],
			titles[rng.Intn(len(titles))],
			industries[rng.Intn(len(industries))],
			conferences[rng.Intn(len(conferences))],
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// demoProfile is the profile payload seeded before the contact flow.
func demoProfile() map[string]any {
	return map[string]any{
		"name":     "Demo User",
		"email":    "demo@medahead.example",
		"company":  "MedAhead",
		"industry": "Digital Health",
		"role":     "Business Development",
		"goals":    []string{"strategic partnerships", "pilot programs"},
		"target_conferences": []string{"himss-2025", "bio-2025"},
	}
}
