package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"studybuddy/models"
	"studybuddy/personas"
	"studybuddy/services/tutor"

	"github.com/gorilla/mux"
)

type TutorHandler struct {
	service *tutor.Service
}

func NewTutorHandler(service *tutor.Service) *TutorHandler {
	return &TutorHandler{service: service}
}

func (h *TutorHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/chat", h.Chat).Methods("POST")
	router.HandleFunc("/api/personality", h.SwitchPersonality).Methods("POST")
	router.HandleFunc("/api/personalities", h.ListPersonalities).Methods("GET")
}

func (h *TutorHandler) Chat(w http.ResponseWriter, r *http.Request) {
	log.Printf("[INFO] Received chat request")

	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[ERROR] Failed to decode chat request JSON: %v", err)
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if req.Message == "" {
		req.Message = "Hello!"
	}

	resp, err := h.service.Chat(r.Context(), &req)
	if err != nil {
		// Degraded envelope: generation failed but the payload is still
		// well-formed for the caller.
		h.writeJSONResponse(w, http.StatusInternalServerError, resp)
		return
	}

	log.Printf("[INFO] Chat request completed successfully")
	h.writeJSONResponse(w, http.StatusOK, resp)
}

func (h *TutorHandler) SwitchPersonality(w http.ResponseWriter, r *http.Request) {
	log.Printf("[INFO] Received personality switch request")

	var req models.PersonalityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[ERROR] Failed to decode personality request JSON: %v", err)
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if req.Personality == "" {
		req.Personality = personas.DefaultKey
	}

	resp, ok := h.service.SwitchPersonality(req.Personality)
	if !ok {
		h.writeJSONResponse(w, http.StatusBadRequest, resp)
		return
	}

	h.writeJSONResponse(w, http.StatusOK, resp)
}

func (h *TutorHandler) ListPersonalities(w http.ResponseWriter, r *http.Request) {
	h.writeJSONResponse(w, http.StatusOK, h.service.ListPersonalities())
}

func (h *TutorHandler) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func (h *TutorHandler) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
