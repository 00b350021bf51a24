package speech

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	speech "cloud.google.com/go/speech/apiv1"
	speechpb "cloud.google.com/go/speech/apiv1/speechpb"
)

// listenTimeout bounds a single capture: the 5s listen window plus the 10s
// max phrase duration the capture contract allows.
const listenTimeout = 15 * time.Second

// Service transcribes captured audio through Google Cloud Speech-to-Text.
// Credentials come from GOOGLE_APPLICATION_CREDENTIALS.
type Service struct {
	client *speech.Client
}

func NewService(ctx context.Context) (*Service, error) {
	client, err := speech.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create speech client: %w", err)
	}
	return &Service{client: client}, nil
}

func (s *Service) Close() error {
	return s.client.Close()
}

// Recognize transcribes audio bytes and returns the recognized text. An
// empty string with a nil error means no speech was detected.
func (s *Service) Recognize(ctx context.Context, audio []byte, mimeType string) (string, error) {
	log.Printf("[INFO] Starting speech recognition on %d audio bytes", len(audio))

	ctx, cancel := context.WithTimeout(ctx, listenTimeout)
	defer cancel()

	resp, err := s.client.Recognize(ctx, &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:                   inferEncoding(mimeType),
			LanguageCode:               "en-US",
			EnableAutomaticPunctuation: true,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: audio},
		},
	})
	if err != nil {
		log.Printf("[ERROR] Speech recognition failed: %v", err)
		return "", fmt.Errorf("speech recognition failed: %w", err)
	}

	var transcripts []string
	for _, result := range resp.Results {
		if len(result.Alternatives) > 0 {
			transcripts = append(transcripts, result.Alternatives[0].Transcript)
		}
	}

	text := strings.TrimSpace(strings.Join(transcripts, " "))
	log.Printf("[INFO] Speech recognition produced %d characters", len(text))
	return text, nil
}

func inferEncoding(mimeType string) speechpb.RecognitionConfig_AudioEncoding {
	m := strings.ToLower(strings.TrimSpace(mimeType))
	switch {
	case strings.Contains(m, "wav"):
		return speechpb.RecognitionConfig_LINEAR16
	case strings.Contains(m, "flac"):
		return speechpb.RecognitionConfig_FLAC
	case strings.Contains(m, "mp3") || strings.Contains(m, "mpeg"):
		return speechpb.RecognitionConfig_MP3
	case strings.Contains(m, "ogg") || strings.Contains(m, "opus"):
		return speechpb.RecognitionConfig_OGG_OPUS
	default:
		return speechpb.RecognitionConfig_ENCODING_UNSPECIFIED
	}
}
