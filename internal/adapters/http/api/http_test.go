package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/medahead/conftarget/internal/adapters/ai"
	"github.com/medahead/conftarget/internal/adapters/http/api"
	"github.com/medahead/conftarget/internal/adapters/repository"
	"github.com/medahead/conftarget/internal/domain/conference"
	"github.com/medahead/conftarget/internal/domain/model"
	"github.com/medahead/conftarget/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

// mockDependencies implements api.Dependencies with pluggable behavior.
type mockDependencies struct {
	saveProfileFunc    func(ctx context.Context, p model.UserProfile) (model.UserProfile, error)
	profileFunc        func(ctx context.Context, id string) (model.UserProfile, error)
	researchFunc       func(ctx context.Context, query, year string) (string, error)
	importContactsFunc func(ctx context.Context, contacts []model.Contact) (int, error)
	analyzeFunc        func(ctx context.Context, userID, conferenceID string) (types.AnalysisReport, error)
	suggestFunc        func(ctx context.Context, userID, conferenceID string) (types.SuggestionBatch, error)
	statsFunc          func(ctx context.Context, userID string) (types.DashboardStats, error)
}

func (m *mockDependencies) SaveProfile(ctx context.Context, p model.UserProfile) (model.UserProfile, error) {
	if m.saveProfileFunc != nil {
		return m.saveProfileFunc(ctx, p)
	}
	p.EnsureID()
	return p, nil
}

func (m *mockDependencies) Profile(ctx context.Context, id string) (model.UserProfile, error) {
	if m.profileFunc != nil {
		return m.profileFunc(ctx, id)
	}
	return model.UserProfile{ID: id}, nil
}

func (m *mockDependencies) Conferences(_ context.Context, industry string) []conference.Conference {
	return conference.Annotate(industry)
}

func (m *mockDependencies) Research(ctx context.Context, query, year string) (string, error) {
	if m.researchFunc != nil {
		return m.researchFunc(ctx, query, year)
	}
	return "", ai.ErrUnavailable
}

func (m *mockDependencies) ImportContacts(ctx context.Context, contacts []model.Contact) (int, error) {
	if m.importContactsFunc != nil {
		return m.importContactsFunc(ctx, contacts)
	}
	return len(contacts), nil
}

func (m *mockDependencies) Analyze(ctx context.Context, userID, conferenceID string) (types.AnalysisReport, error) {
	if m.analyzeFunc != nil {
		return m.analyzeFunc(ctx, userID, conferenceID)
	}
	return types.AnalysisReport{}, nil
}

func (m *mockDependencies) Suggest(ctx context.Context, userID, conferenceID string) (types.SuggestionBatch, error) {
	if m.suggestFunc != nil {
		return m.suggestFunc(ctx, userID, conferenceID)
	}
	return types.SuggestionBatch{}, nil
}

func (m *mockDependencies) Stats(ctx context.Context, userID string) (types.DashboardStats, error) {
	if m.statsFunc != nil {
		return m.statsFunc(ctx, userID)
	}
	return types.DashboardStats{}, nil
}

func newTestServer(deps api.Dependencies) *httptest.Server {
	mux := http.NewServeMux()
	api.NewServer(deps).Register(context.Background(), mux)
	return httptest.NewServer(mux)
}

func decodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

func multipartCSV(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return &buf, writer.FormDataContentType()
}

func TestHealthEndpoint(t *testing.T) {
	Convey("Given a running API server", t, func() {
		srv := newTestServer(&mockDependencies{})
		defer srv.Close()

		Convey("When requesting the health endpoint", func() {
			resp, err := http.Get(srv.URL + "/api/health")
			So(err, ShouldBeNil)

			Convey("Then it reports healthy", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				var body map[string]string
				decodeBody(t, resp, &body)
				So(body["status"], ShouldEqual, "healthy")
			})
		})

		Convey("When requesting with a wrong method", func() {
			resp, err := http.Post(srv.URL+"/api/health", "application/json", nil)
			So(err, ShouldBeNil)
			resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestProfileEndpoints(t *testing.T) {
	Convey("Given a running API server", t, func() {
		deps := &mockDependencies{}
		srv := newTestServer(deps)
		defer srv.Close()

		Convey("When posting a valid profile", func() {
			body := `{"name":"Demo","email":"demo@example.com","company":"MedAhead","goals":["partnerships"]}`
			resp, err := http.Post(srv.URL+"/api/user/profile", "application/json", strings.NewReader(body))
			So(err, ShouldBeNil)

			Convey("Then the saved profile returns with an identifier", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				var got struct {
					Success bool              `json:"success"`
					Profile model.UserProfile `json:"profile"`
				}
				decodeBody(t, resp, &got)
				So(got.Success, ShouldBeTrue)
				So(got.Profile.ID, ShouldNotBeEmpty)
				So(got.Profile.Name, ShouldEqual, "Demo")
			})
		})

		Convey("When posting a profile without a name", func() {
			resp, err := http.Post(srv.URL+"/api/user/profile", "application/json",
				strings.NewReader(`{"email":"demo@example.com"}`))
			So(err, ShouldBeNil)
			resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When posting a malformed body", func() {
			resp, err := http.Post(srv.URL+"/api/user/profile", "application/json",
				strings.NewReader(`{not json`))
			So(err, ShouldBeNil)
			resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When fetching an unknown profile", func() {
			deps.profileFunc = func(context.Context, string) (model.UserProfile, error) {
				return model.UserProfile{}, fmt.Errorf("get profile: %w", repository.ErrNotFound)
			}
			resp, err := http.Get(srv.URL + "/api/user/profile/ghost")
			So(err, ShouldBeNil)

			Convey("Then the wrapped not-found error maps to 404", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
				var got struct {
					Code string `json:"code"`
				}
				decodeBody(t, resp, &got)
				So(got.Code, ShouldEqual, "not_found")
			})
		})

		Convey("When fetching a known profile", func() {
			deps.profileFunc = func(_ context.Context, id string) (model.UserProfile, error) {
				return model.UserProfile{ID: id, Name: "Demo"}, nil
			}
			resp, err := http.Get(srv.URL + "/api/user/profile/u1")
			So(err, ShouldBeNil)

			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			var got model.UserProfile
			decodeBody(t, resp, &got)
			So(got.ID, ShouldEqual, "u1")
		})
	})
}

func TestConferencesEndpoint(t *testing.T) {
	Convey("Given a running API server", t, func() {
		srv := newTestServer(&mockDependencies{})
		defer srv.Close()

		Convey("When listing conferences without an industry", func() {
			resp, err := http.Get(srv.URL + "/api/conferences")
			So(err, ShouldBeNil)

			Convey("Then the full catalogue returns without relevance", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				var got struct {
					Conferences []conference.Conference `json:"conferences"`
				}
				decodeBody(t, resp, &got)
				So(len(got.Conferences), ShouldEqual, 4)
				So(got.Conferences[0].RelevanceScore, ShouldEqual, 0)
			})
		})

		Convey("When listing with an industry filter", func() {
			resp, err := http.Get(srv.URL + "/api/conferences?industry=Technology")
			So(err, ShouldBeNil)

			Convey("Then relevance scores annotate each entry", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				var got struct {
					Conferences []conference.Conference `json:"conferences"`
				}
				decodeBody(t, resp, &got)
				for _, c := range got.Conferences {
					So(c.RelevanceScore, ShouldBeGreaterThan, 0)
				}
			})
		})
	})
}

func TestResearchEndpoint(t *testing.T) {
	Convey("Given a running API server", t, func() {
		deps := &mockDependencies{}
		srv := newTestServer(deps)
		defer srv.Close()

		Convey("When researching without a query", func() {
			resp, err := http.Post(srv.URL+"/api/conferences/research", "application/json", nil)
			So(err, ShouldBeNil)
			resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When the collaborator succeeds", func() {
			deps.researchFunc = func(context.Context, string, string) (string, error) {
				return "HIMSS draws 40k attendees", nil
			}
			resp, err := http.Post(srv.URL+"/api/conferences/research?query=himss&year=2025", "application/json", nil)
			So(err, ShouldBeNil)

			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			var got struct {
				Success bool   `json:"success"`
				Results string `json:"results"`
			}
			decodeBody(t, resp, &got)
			So(got.Success, ShouldBeTrue)
			So(got.Results, ShouldContainSubstring, "HIMSS")
		})

		Convey("When the collaborator fails", func() {
			deps.researchFunc = func(context.Context, string, string) (string, error) {
				return "", errors.New("quota exhausted")
			}
			resp, err := http.Post(srv.URL+"/api/conferences/research?query=himss", "application/json", nil)
			So(err, ShouldBeNil)

			Convey("Then the failure is a structured 200 payload", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				var got struct {
					Success bool   `json:"success"`
					Error   string `json:"error"`
				}
				decodeBody(t, resp, &got)
				So(got.Success, ShouldBeFalse)
				So(got.Error, ShouldContainSubstring, "quota exhausted")
			})
		})
	})
}

func TestUploadEndpoint(t *testing.T) {
	Convey("Given a running API server", t, func() {
		deps := &mockDependencies{}
		srv := newTestServer(deps)
		defer srv.Close()

		Convey("When uploading a valid CSV file", func() {
			var imported []model.Contact
			deps.importContactsFunc = func(_ context.Context, contacts []model.Contact) (int, error) {
				imported = contacts
				return len(contacts), nil
			}
			body, contentType := multipartCSV(t, "contacts.csv",
				"name,email,company,title\nJane,jane@acme.test,Acme,CEO\nJohn,john@acme.test,Acme,Analyst\n")
			resp, err := http.Post(srv.URL+"/api/contacts/upload", contentType, body)
			So(err, ShouldBeNil)

			Convey("Then contacts import and the count is reported", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				var got struct {
					Success          bool   `json:"success"`
					ContactsUploaded int    `json:"contacts_uploaded"`
					Message          string `json:"message"`
				}
				decodeBody(t, resp, &got)
				So(got.Success, ShouldBeTrue)
				So(got.ContactsUploaded, ShouldEqual, 2)
				So(got.Message, ShouldEqual, "Successfully uploaded 2 contacts")
				So(len(imported), ShouldEqual, 2)
				So(imported[0].Name, ShouldEqual, "Jane")
			})
		})

		Convey("When uploading a non-CSV file", func() {
			body, contentType := multipartCSV(t, "contacts.xlsx", "not a csv")
			resp, err := http.Post(srv.URL+"/api/contacts/upload", contentType, body)
			So(err, ShouldBeNil)

			Convey("Then it is rejected as a validation error", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
				var got struct {
					Code string `json:"code"`
				}
				decodeBody(t, resp, &got)
				So(got.Code, ShouldEqual, "validation_error")
			})
		})

		Convey("When uploading without a file field", func() {
			resp, err := http.Post(srv.URL+"/api/contacts/upload", "multipart/form-data; boundary=x", strings.NewReader("--x--"))
			So(err, ShouldBeNil)
			resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
		})
	})
}

func TestAnalyzeAndSuggestEndpoints(t *testing.T) {
	Convey("Given a running API server", t, func() {
		deps := &mockDependencies{}
		srv := newTestServer(deps)
		defer srv.Close()

		Convey("When analyzing without a user_id", func() {
			resp, err := http.Post(srv.URL+"/api/contacts/analyze", "application/json", nil)
			So(err, ShouldBeNil)
			resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When analyzing without a conference_id", func() {
			var gotConference string
			deps.analyzeFunc = func(_ context.Context, _, conferenceID string) (types.AnalysisReport, error) {
				gotConference = conferenceID
				return types.AnalysisReport{TotalAnalyzed: 1}, nil
			}
			resp, err := http.Post(srv.URL+"/api/contacts/analyze?user_id=u1", "application/json", nil)
			So(err, ShouldBeNil)
			resp.Body.Close()

			Convey("Then the default conference scopes the run", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				So(gotConference, ShouldEqual, "himss-2025")
			})
		})

		Convey("When analyzing for an unknown user", func() {
			deps.analyzeFunc = func(context.Context, string, string) (types.AnalysisReport, error) {
				return types.AnalysisReport{}, fmt.Errorf("load profile: %w", repository.ErrNotFound)
			}
			resp, err := http.Post(srv.URL+"/api/contacts/analyze?user_id=ghost", "application/json", nil)
			So(err, ShouldBeNil)
			resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
		})

		Convey("When requesting suggestions", func() {
			deps.suggestFunc = func(context.Context, string, string) (types.SuggestionBatch, error) {
				return types.SuggestionBatch{
					MeetingSuggestions: []model.MeetingRecommendation{{ID: "m1", ContactName: "Jane"}},
					TotalSuggestions:   1,
				}, nil
			}
			resp, err := http.Post(srv.URL+"/api/meetings/suggest?user_id=u1&conference_id=himss-2025", "application/json", nil)
			So(err, ShouldBeNil)

			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			var got types.SuggestionBatch
			decodeBody(t, resp, &got)
			So(got.TotalSuggestions, ShouldEqual, 1)
			So(got.MeetingSuggestions[0].ContactName, ShouldEqual, "Jane")
		})

		Convey("When suggesting without a user_id", func() {
			resp, err := http.Post(srv.URL+"/api/meetings/suggest", "application/json", nil)
			So(err, ShouldBeNil)
			resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
		})
	})
}

func TestDashboardEndpoint(t *testing.T) {
	Convey("Given a running API server", t, func() {
		deps := &mockDependencies{}
		srv := newTestServer(deps)
		defer srv.Close()

		Convey("When requesting dashboard stats", func() {
			deps.statsFunc = func(context.Context, string) (types.DashboardStats, error) {
				return types.DashboardStats{
					TotalContacts:        10,
					HighPriorityContacts: 4,
					MeetingSuggestions:   3,
					ROIProjection:        "45% increase in qualified leads",
				}, nil
			}
			resp, err := http.Get(srv.URL + "/api/dashboard/stats?user_id=u1")
			So(err, ShouldBeNil)

			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			var got types.DashboardStats
			decodeBody(t, resp, &got)
			So(got.TotalContacts, ShouldEqual, 10)
			So(got.ROIProjection, ShouldEqual, "45% increase in qualified leads")
		})

		Convey("When the store fails", func() {
			deps.statsFunc = func(context.Context, string) (types.DashboardStats, error) {
				return types.DashboardStats{}, errors.New("disk error")
			}
			resp, err := http.Get(srv.URL + "/api/dashboard/stats")
			So(err, ShouldBeNil)
			resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusInternalServerError)
		})
	})
}

func TestCORSPreflight(t *testing.T) {
	Convey("Given a running API server", t, func() {
		srv := newTestServer(&mockDependencies{})
		defer srv.Close()

		Convey("When sending an OPTIONS preflight", func() {
			req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/conferences", nil)
			So(err, ShouldBeNil)
			resp, err := http.DefaultClient.Do(req)
			So(err, ShouldBeNil)
			resp.Body.Close()

			Convey("Then CORS headers allow the call", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusNoContent)
				So(resp.Header.Get("Access-Control-Allow-Origin"), ShouldEqual, "*")
			})
		})
	})
}
