package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"studybuddy/config"
	"studybuddy/handlers"
	"studybuddy/models"
	"studybuddy/personas"
	"studybuddy/services/llm"
	"studybuddy/services/speech"
	"studybuddy/services/tts"
	"studybuddy/services/tutor"

	"github.com/gorilla/mux"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	registry, err := personas.NewRegistry()
	if err != nil {
		log.Fatalf("Invalid persona catalog: %v", err)
	}

	generator, err := llm.NewGenerator(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize text generator: %v", err)
	}

	var synth tts.Synthesizer
	if cfg.ElevenLabsAPIKey != "" {
		synth = tts.NewElevenLabsService(cfg.ElevenLabsAPIKey)
	} else {
		log.Printf("[INFO] ELEVEN_LABS_API_KEY not set, audio responses disabled")
	}

	tutorService := tutor.NewService(registry, generator, synth)
	tutorHandler := handlers.NewTutorHandler(tutorService)

	var speechService *speech.Service
	if cfg.SpeechEnabled {
		speechService, err = speech.NewService(ctx)
		if err != nil {
			log.Fatalf("Failed to initialize speech service: %v", err)
		}
		defer speechService.Close()
	} else {
		log.Printf("[INFO] SPEECH_ENABLED not set, speech capture disabled")
	}
	speechHandler := handlers.NewSpeechHandler(speechService)

	router := mux.NewRouter()

	router.Use(corsMiddleware)
	router.Use(jsonMiddleware)

	router.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("OPTIONS")

	tutorHandler.RegisterRoutes(router)
	speechHandler.RegisterRoutes(router)

	router.HandleFunc("/health", healthCheckHandler).Methods("GET")

	addr := ":" + cfg.Port
	fmt.Printf("Server starting on port %s\n", cfg.Port)
	fmt.Printf("Personalities: %v\n", registry.Keys())

	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Expose-Headers", "*")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func jsonMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(models.HealthResponse{
		Message: "✅ Backend with AI is working!",
		Status:  "healthy",
	})
}
