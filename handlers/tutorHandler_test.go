package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"studybuddy/models"
	"studybuddy/personas"
	"studybuddy/services/tutor"

	"github.com/gorilla/mux"
)

type fakeGenerator struct {
	reply string
	err   error
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func newTestRouter(t *testing.T, gen *fakeGenerator) *mux.Router {
	t.Helper()
	registry, err := personas.NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry() failed: %v", err)
	}
	service := tutor.NewService(registry, gen, nil)
	handler := NewTutorHandler(service)

	router := mux.NewRouter()
	handler.RegisterRoutes(router)
	return router
}

func TestChatEndpoint(t *testing.T) {
	router := newTestRouter(t, &fakeGenerator{reply: "Photosynthesis is how plants eat sunlight."})

	body := `{"message":"Explain photosynthesis","personality":"coach","topic":"photosynthesis"}`
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", rec.Code)
	}

	var resp models.ChatResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "success" {
		t.Errorf("status = %q, expected success", resp.Status)
	}
	if resp.Personality != "motivator" {
		t.Errorf("personality = %q, expected coach to resolve to motivator", resp.Personality)
	}
	if resp.Response != "Photosynthesis is how plants eat sunlight." {
		t.Errorf("response = %q, expected the generated answer", resp.Response)
	}
	if resp.AudioB64 != "" {
		t.Errorf("audio_b64 present without a synthesizer")
	}
}

func TestChatEndpointGenerationFailure(t *testing.T) {
	router := newTestRouter(t, &fakeGenerator{err: errors.New("provider down")})

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message":"hi"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, expected 500", rec.Code)
	}

	var resp models.ChatResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "error" {
		t.Errorf("status = %q, expected error", resp.Status)
	}
	if resp.Personality == "" {
		t.Errorf("degraded envelope is missing the active persona")
	}
}

func TestChatEndpointInvalidJSON(t *testing.T) {
	router := newTestRouter(t, &fakeGenerator{reply: "hi"})

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, expected 400", rec.Code)
	}
}

func TestSwitchPersonalityEndpoint(t *testing.T) {
	router := newTestRouter(t, &fakeGenerator{reply: "hi"})

	tests := []struct {
		name           string
		body           string
		wantStatus     int
		wantPersona    string
		messageContain string
	}{
		{
			name:        "alias switch succeeds",
			body:        `{"personality":"sage"}`,
			wantStatus:  http.StatusOK,
			wantPersona: "serious_professor",
		},
		{
			name:           "unknown persona rejected with unchanged key",
			body:           `{"personality":"zzz"}`,
			wantStatus:     http.StatusBadRequest,
			wantPersona:    "serious_professor",
			messageContain: "not found",
		},
		{
			name:        "missing persona defaults",
			body:        `{}`,
			wantStatus:  http.StatusOK,
			wantPersona: "friendly_tutor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/personality", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, expected %d", rec.Code, tt.wantStatus)
			}

			var resp models.PersonalityResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Personality != tt.wantPersona {
				t.Errorf("personality = %q, expected %q", resp.Personality, tt.wantPersona)
			}
			if tt.messageContain != "" && !strings.Contains(resp.Message, tt.messageContain) {
				t.Errorf("message = %q, expected it to contain %q", resp.Message, tt.messageContain)
			}
		})
	}
}

func TestListPersonalitiesEndpoint(t *testing.T) {
	router := newTestRouter(t, &fakeGenerator{reply: "hi"})

	req := httptest.NewRequest(http.MethodGet, "/api/personalities", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", rec.Code)
	}

	var resp models.PersonalitiesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.AvailablePersonalities) != 5 {
		t.Errorf("enumeration has %d personas, expected 5", len(resp.AvailablePersonalities))
	}
	if resp.ActivePersonality != "friendly_tutor" {
		t.Errorf("active = %q, expected the default friendly_tutor", resp.ActivePersonality)
	}
	for _, info := range resp.AvailablePersonalities {
		if info.Key == "" || info.Name == "" || info.Description == "" {
			t.Errorf("enumeration entry %+v has empty fields", info)
		}
	}
}
