package tutor

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"strings"
	"sync"

	"studybuddy/models"
	"studybuddy/personas"
	"studybuddy/services/llm"
	"studybuddy/services/tts"

	"github.com/samber/lo"
)

// sessionState is the single shared mutable in the whole service: the
// process-wide current persona. All reads and writes go through it so a
// request observes one consistent value for its whole execution.
type sessionState struct {
	mu  sync.RWMutex
	key string
}

func (s *sessionState) current() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.key
}

func (s *sessionState) set(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.key = key
}

// Service orchestrates a tutoring request: resolve the persona, build the
// prompt, generate the answer, and optionally synthesize audio.
type Service struct {
	registry  *personas.Registry
	generator llm.Generator
	synth     tts.Synthesizer // nil when audio is disabled for this deployment
	session   sessionState
}

func NewService(registry *personas.Registry, generator llm.Generator, synth tts.Synthesizer) *Service {
	s := &Service{
		registry:  registry,
		generator: generator,
		synth:     synth,
	}
	s.session.key = personas.DefaultKey
	return s
}

// Chat answers a student's question. The returned envelope is always
// well-formed; a non-nil error only signals that generation failed and the
// envelope carries a degraded error payload. A request-level persona
// override never mutates the session state.
func (s *Service) Chat(ctx context.Context, req *models.ChatRequest) (*models.ChatResponse, error) {
	activeKey := s.session.current()
	if resolved := personas.Resolve(req.Personality); resolved != "" && s.registry.Has(resolved) {
		activeKey = resolved
	}

	log.Printf("[INFO] Handling chat request with persona %q", activeKey)

	prompt := s.registry.BuildPrompt(req.Message, activeKey, personas.LearnerContext{
		Topic:        req.Topic,
		Education:    req.Education,
		Grade:        string(req.Grade),
		PriorContext: req.PriorContext,
	})

	answer, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		log.Printf("[ERROR] Answer generation failed: %v", err)
		return &models.ChatResponse{
			Response:    fmt.Sprintf("Sorry, AI is taking a break: %v", err),
			Personality: activeKey,
			Status:      "error",
		}, err
	}

	resp := &models.ChatResponse{
		Response:    answer,
		Personality: activeKey,
		Status:      "success",
	}

	// Audio is an enhancement, not the deliverable: any failure here
	// degrades to a text-only response, never to an error.
	if audio := s.synthesize(ctx, answer, activeKey); audio != "" {
		resp.AudioB64 = audio
	}

	return resp, nil
}

func (s *Service) synthesize(ctx context.Context, text, personaKey string) string {
	if s.synth == nil {
		return ""
	}

	voiceID, ok := personas.VoiceFor(personaKey)
	if !ok {
		log.Printf("[INFO] No voice bound to persona %q, skipping audio", personaKey)
		return ""
	}

	audio, err := s.synth.Synthesize(ctx, text, voiceID)
	if err != nil {
		log.Printf("[ERROR] Speech synthesis failed, returning text only: %v", err)
		return ""
	}

	return base64.StdEncoding.EncodeToString(audio)
}

// SwitchPersonality is the only mutator of the session persona. It reports
// false when the identifier does not resolve to a registered persona, in
// which case the state is left untouched and the message echoes the valid
// keys.
func (s *Service) SwitchPersonality(raw string) (*models.PersonalityResponse, bool) {
	mapped := personas.Resolve(raw)

	if mapped != "" && s.registry.Has(mapped) {
		s.session.set(mapped)
		log.Printf("[INFO] Switched session persona to %q", mapped)
		return &models.PersonalityResponse{
			Message:     fmt.Sprintf("🎭 Switched to %s mode!", mapped),
			Personality: mapped,
		}, true
	}

	log.Printf("[INFO] Rejected switch to unknown persona %q", raw)
	keys := s.registry.Keys()
	message := fmt.Sprintf("❌ Personality '%s' not found. Available: %s", raw, strings.Join(keys, ", "))
	if hint, ok := personas.ClosestKey(mapped, keys); ok {
		message += fmt.Sprintf(". Did you mean '%s'?", hint)
	}

	return &models.PersonalityResponse{
		Message:     message,
		Personality: s.session.current(),
	}, false
}

// ListPersonalities enumerates the catalog for clients: key, name and
// description only, never the instruction text.
func (s *Service) ListPersonalities() *models.PersonalitiesResponse {
	available := lo.Map(s.registry.Keys(), func(key string, _ int) models.PersonalityInfo {
		p := s.registry.Lookup(key)
		return models.PersonalityInfo{
			Key:         p.Key,
			Name:        p.Name,
			Description: p.Description,
		}
	})

	return &models.PersonalitiesResponse{
		AvailablePersonalities: available,
		ActivePersonality:      s.session.current(),
	}
}

// CurrentPersonality returns the session's active persona key.
func (s *Service) CurrentPersonality() string {
	return s.session.current()
}
