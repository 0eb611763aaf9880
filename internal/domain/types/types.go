// Package types contains read shapes shared between the service and the
// HTTP boundary.
package types

import "github.com/medahead/conftarget/internal/domain/model"

// AnalysisReport is the result of a scoring run: the top contacts by
// score plus tier counts over the full analyzed set.
type AnalysisReport struct {
	AnalyzedContacts []model.Contact `json:"analyzed_contacts"`
	TotalAnalyzed    int             `json:"total_analyzed"`
	HighPriority     int             `json:"high_priority"`
	MediumPriority   int             `json:"medium_priority"`
	LowPriority      int             `json:"low_priority"`
	Message          string          `json:"message,omitempty"`
}

// SuggestionBatch is the result of one composer invocation.
type SuggestionBatch struct {
	MeetingSuggestions []model.MeetingRecommendation `json:"meeting_suggestions"`
	TotalSuggestions   int                           `json:"total_suggestions"`
}

// DashboardStats aggregates counts over the contact and meeting
// collections. ROIProjection is purely presentational.
type DashboardStats struct {
	TotalContacts        int    `json:"total_contacts"`
	HighPriorityContacts int    `json:"high_priority_contacts"`
	MeetingSuggestions   int    `json:"meeting_suggestions"`
	ROIProjection        string `json:"roi_projection"`
}
