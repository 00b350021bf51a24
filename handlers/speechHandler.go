package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"studybuddy/models"
	"studybuddy/services/speech"

	"github.com/gorilla/mux"
)

const maxAudioBytes = 10 << 20

type SpeechHandler struct {
	service *speech.Service // nil when speech capture is disabled
}

func NewSpeechHandler(service *speech.Service) *SpeechHandler {
	return &SpeechHandler{service: service}
}

func (h *SpeechHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/listen", h.Listen).Methods("POST")
}

func (h *SpeechHandler) Listen(w http.ResponseWriter, r *http.Request) {
	log.Printf("[INFO] Received speech capture request")

	if h.service == nil {
		h.writeListenResponse(w, http.StatusServiceUnavailable, &models.ListenResponse{
			Status:  "error",
			Message: "Speech capture is not enabled on this deployment",
		})
		return
	}

	audio, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxAudioBytes))
	if err != nil {
		log.Printf("[ERROR] Failed to read audio body: %v", err)
		h.writeListenResponse(w, http.StatusBadRequest, &models.ListenResponse{
			Status:  "error",
			Message: "Failed to read audio payload",
		})
		return
	}
	if len(audio) == 0 {
		h.writeListenResponse(w, http.StatusBadRequest, &models.ListenResponse{
			Status:  "error",
			Message: "Audio payload is required",
		})
		return
	}

	text, err := h.service.Recognize(r.Context(), audio, r.Header.Get("Content-Type"))
	if errors.Is(err, context.DeadlineExceeded) {
		h.writeListenResponse(w, http.StatusOK, &models.ListenResponse{
			Status:  "no_speech",
			Message: "No speech detected - timeout",
		})
		return
	}
	if err != nil {
		h.writeListenResponse(w, http.StatusInternalServerError, &models.ListenResponse{
			Status:  "error",
			Message: "Error capturing speech: " + err.Error(),
		})
		return
	}

	if text == "" {
		h.writeListenResponse(w, http.StatusOK, &models.ListenResponse{
			Status:  "no_speech",
			Message: "Could not understand audio or no speech detected",
		})
		return
	}

	log.Printf("[INFO] Speech capture recognized text successfully")
	h.writeListenResponse(w, http.StatusOK, &models.ListenResponse{
		Text:   text,
		Status: "success",
	})
}

func (h *SpeechHandler) writeListenResponse(w http.ResponseWriter, statusCode int, resp *models.ListenResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(resp)
}
