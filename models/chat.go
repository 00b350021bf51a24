package models

import (
	"encoding/json"
	"fmt"
)

// FlexibleString accepts either a JSON string or a JSON number, since
// clients send the grade field both ways.
type FlexibleString string

func (f *FlexibleString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexibleString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("value must be a string or number, got %s", data)
	}
	*f = FlexibleString(n.String())
	return nil
}

type ChatRequest struct {
	Message      string         `json:"message"`
	Personality  string         `json:"personality,omitempty"`
	Topic        string         `json:"topic,omitempty"`
	Education    string         `json:"education,omitempty"`
	Grade        FlexibleString `json:"grade,omitempty"`
	PriorContext string         `json:"prior_context,omitempty"`
}

type ChatResponse struct {
	Response    string `json:"response"`
	Personality string `json:"personality"`
	AudioB64    string `json:"audio_b64,omitempty"`
	Status      string `json:"status"`
}

type PersonalityRequest struct {
	Personality string `json:"personality"`
}

type PersonalityResponse struct {
	Message     string `json:"message"`
	Personality string `json:"personality"`
}

type PersonalityInfo struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type PersonalitiesResponse struct {
	AvailablePersonalities []PersonalityInfo `json:"available_personalities"`
	ActivePersonality      string            `json:"active_personality"`
}

type ListenResponse struct {
	Text    string `json:"text"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type HealthResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}
