package seeder

import (
	"context"
	"fmt"
	"math/rand"
	"net/url"
	"time"

	"github.com/medahead/conftarget/pkg/logger"
)

// Config controls one seeding run.
type Config struct {
	BaseURL      string
	ContactCount int
	ConferenceID string
	Seed         int64
	Timeout      time.Duration
}

// Run seeds a demo profile and contacts into the running service and
// walks the full flow: upload, analyze, suggest, stats.
func Run(ctx context.Context, cfg *Config) error {
	log := logger.Named("seeder")
	log.Info(ctx, "starting demo seed run",
		logger.String("baseURL", cfg.BaseURL),
		logger.Int("contacts", cfg.ContactCount),
		logger.String("conferenceID", cfg.ConferenceID),
	)

	client := newHTTPClient(cfg.BaseURL, cfg.Timeout)

	var health struct {
		Status string `json:"status"`
	}
	if err := client.getJSON(ctx, "/api/health", &health); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	var saved struct {
		Profile struct {
			ID string `json:"id"`
		} `json:"profile"`
	}
	if err := client.postJSON(ctx, "/api/user/profile", demoProfile(), &saved); err != nil {
		return fmt.Errorf("seed profile: %w", err)
	}
	userID := saved.Profile.ID
	log.Info(ctx, "profile seeded", logger.String("userID", userID))

	rng := rand.New(rand.NewSource(cfg.Seed)) //nolint:gosec // reproducible demo data
	csvData, err := GenerateCSV(rng, cfg.ContactCount)
	if err != nil {
		return fmt.Errorf("generate contacts: %w", err)
	}
	var upload struct {
		ContactsUploaded int `json:"contacts_uploaded"`
	}
	if err := client.postCSV(ctx, "/api/contacts/upload", "demo_contacts.csv", csvData, userID, &upload); err != nil {
		return fmt.Errorf("upload contacts: %w", err)
	}
	log.Info(ctx, "contacts uploaded", logger.Int("count", upload.ContactsUploaded))

	params := url.Values{"user_id": {userID}, "conference_id": {cfg.ConferenceID}}
	var analysis struct {
		TotalAnalyzed int `json:"total_analyzed"`
		HighPriority  int `json:"high_priority"`
	}
	if err := client.postJSON(ctx, "/api/contacts/analyze?"+params.Encode(), nil, &analysis); err != nil {
		return fmt.Errorf("analyze contacts: %w", err)
	}
	log.Info(ctx, "contacts analyzed",
		logger.Int("total", analysis.TotalAnalyzed),
		logger.Int("highPriority", analysis.HighPriority),
	)

	var suggestions struct {
		TotalSuggestions int `json:"total_suggestions"`
	}
	if err := client.postJSON(ctx, "/api/meetings/suggest?"+params.Encode(), nil, &suggestions); err != nil {
		return fmt.Errorf("suggest meetings: %w", err)
	}
	log.Info(ctx, "meetings suggested", logger.Int("count", suggestions.TotalSuggestions))

	var stats struct {
		TotalContacts        int    `json:"total_contacts"`
		HighPriorityContacts int    `json:"high_priority_contacts"`
		MeetingSuggestions   int    `json:"meeting_suggestions"`
		ROIProjection        string `json:"roi_projection"`
	}
	if err := client.getJSON(ctx, "/api/dashboard/stats?user_id="+url.QueryEscape(userID), &stats); err != nil {
		return fmt.Errorf("dashboard stats: %w", err)
	}
	log.Info(ctx, "seed run complete",
		logger.Int("totalContacts", stats.TotalContacts),
		logger.Int("highPriority", stats.HighPriorityContacts),
		logger.Int("meetings", stats.MeetingSuggestions),
		logger.String("roi", stats.ROIProjection),
	)
	return nil
}
