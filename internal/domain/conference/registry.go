// Package conference holds the static catalogue of known conferences,
// the filter-key mapping used to scope contact queries, and the fixed
// relevance rules applied to the listing endpoint.
package conference

import "strings"

// FilterAll is the sentinel filter key that matches every contact.
const FilterAll = "all"

// Conference describes one catalogue entry. RelevanceScore is only set
// on annotated copies returned by Annotate.
type Conference struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Date           string `json:"date"`
	Location       string `json:"location"`
	Focus          string `json:"focus"`
	Attendees      int    `json:"attendees"`
	Description    string `json:"description"`
	RelevanceScore int    `json:"relevance_score,omitempty"`
}

// catalogue is static configuration data, not a mutable entity.
var catalogue = []Conference{
	{
		ID:          "himss-2025",
		Name:        "HIMSS Global Health Conference & Exhibition",
		Date:        "2025-03-15 to 2025-03-18",
		Location:    "Las Vegas, NV",
		Focus:       "Health Information Technology",
		Attendees:   45000,
		Description: "World's largest health information technology conference",
	},
	{
		ID:          "aha-2025",
		Name:        "American Hospital Association Annual Membership Meeting",
		Date:        "2025-05-04 to 2025-05-07",
		Location:    "Washington, DC",
		Focus:       "Hospital Administration & Leadership",
		Attendees:   5000,
		Description: "Premier event for hospital and health system leaders",
	},
	{
		ID:          "jp-morgan-2025",
		Name:        "J.P. Morgan Healthcare Conference",
		Date:        "2025-01-13 to 2025-01-16",
		Location:    "San Francisco, CA",
		Focus:       "Healthcare Investment & Innovation",
		Attendees:   9000,
		Description: "Leading healthcare investment conference",
	},
	{
		ID:          "bio-2025",
		Name:        "BIO International Convention",
		Date:        "2025-06-09 to 2025-06-12",
		Location:    "Boston, MA",
		Focus:       "Biotechnology & Life Sciences",
		Attendees:   18000,
		Description: "Global biotechnology partnering conference",
	},
}

// filterValues maps a short conference id to the canonical string
// stored on Contact.Conference.
var filterValues = map[string]string{
	"himss-2025":     "HIMSS 2025",
	"aha-2025":       "AHA 2025",
	"jp-morgan-2025": "JP Morgan 2025",
	"bio-2025":       "BIO 2025",
}

// All returns a copy of the catalogue.
func All() []Conference {
	out := make([]Conference, len(catalogue))
	copy(out, catalogue)
	return out
}

// FilterValue resolves a conference id to the canonical value contacts
// carry. The sentinel FilterAll and unrecognized ids resolve to the
// empty string, meaning no filtering; this permissive fallback is
// deliberate, not an error.
func FilterValue(id string) string {
	id = strings.ToLower(strings.TrimSpace(id))
	if id == "" || id == FilterAll {
		return ""
	}
	return filterValues[id]
}

// Relevance rule scores for Annotate.
const (
	relevanceTop     = 90
	relevanceDefault = 75
)

// Annotate returns the catalogue with a relevance_score per entry
// derived from fixed industry-category rules. An empty industry returns
// the catalogue unannotated.
func Annotate(industry string) []Conference {
	confs := All()
	industry = strings.ToLower(strings.TrimSpace(industry))
	if industry == "" {
		return confs
	}
	for i := range confs {
		confs[i].RelevanceScore = relevanceFor(industry, confs[i].ID)
	}
	return confs
}

func relevanceFor(industry, confID string) int {
	switch industry {
	case "technology", "it", "digital":
		if confID == "himss-2025" {
			return relevanceTop
		}
		return 70
	case "pharma", "biotech", "pharmaceutical":
		if confID == "bio-2025" {
			return relevanceTop
		}
		return 60
	case "finance", "investment":
		if confID == "jp-morgan-2025" {
			return relevanceTop
		}
		return 50
	default:
		return relevanceDefault
	}
}
