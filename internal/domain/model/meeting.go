package model

import "github.com/google/uuid"

// MeetingRecommendation pairs a contact with a suggested slot and
// templated outreach text. Records are append-only: each composer run
// creates fresh rows and never mutates earlier ones.
type MeetingRecommendation struct {
	ID                  string   `json:"id"`
	ContactID           string   `json:"contact_id"`
	ContactName         string   `json:"contact_name"`
	ContactCompany      string   `json:"contact_company"`
	SuggestedTime       string   `json:"suggested_time"`
	Reason              string   `json:"reason"`
	PersonalizedMessage string   `json:"personalized_message"`
	Priority            Priority `json:"priority"`
}

// NewMeetingRecommendation creates a recommendation for a contact,
// copying the contact's tier at generation time.
func NewMeetingRecommendation(c Contact, slot, reason, message string) MeetingRecommendation {
	return MeetingRecommendation{
		ID:                  uuid.NewString(),
		ContactID:           c.ID,
		ContactName:         c.Name,
		ContactCompany:      c.Company,
		SuggestedTime:       slot,
		Reason:              reason,
		PersonalizedMessage: message,
		Priority:            c.Priority,
	}
}
