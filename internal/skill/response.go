package skill

import (
	"github.com/Jco131169Jco/alexa-gemini-skill/internal/models"
	"github.com/Jco131169Jco/alexa-gemini-skill/internal/ssml"
)

func speech(text string) *models.OutputSpeech {
	return &models.OutputSpeech{
		Type: models.SpeechTypeSSML,
		SSML: ssml.Wrap(text),
	}
}

// ask произносит text и оставляет сессию открытой с переспросом.
func ask(text, reprompt string) models.Response {
	keepOpen := false
	return models.Response{
		Version: models.Version,
		Response: models.ResponsePayload{
			OutputSpeech:     speech(text),
			Reprompt:         &models.Reprompt{OutputSpeech: speech(reprompt)},
			ShouldEndSession: &keepOpen,
		},
	}
}

// tell произносит text и завершает сессию.
func tell(text string) models.Response {
	end := true
	return models.Response{
		Version: models.Version,
		Response: models.ResponsePayload{
			OutputSpeech:     speech(text),
			ShouldEndSession: &end,
		},
	}
}

func empty() models.Response {
	return models.Response{Version: models.Version}
}
