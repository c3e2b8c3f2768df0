package skill

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jco131169Jco/alexa-gemini-skill/internal/gemini"
	"github.com/Jco131169Jco/alexa-gemini-skill/internal/models"
	"github.com/Jco131169Jco/alexa-gemini-skill/internal/skill/mock"
	"github.com/Jco131169Jco/alexa-gemini-skill/internal/ssml"
	"github.com/Jco131169Jco/alexa-gemini-skill/internal/timezone"
)

func intentRequest(name string, slots map[string]models.Slot) models.Request {
	return models.Request{
		Version: models.Version,
		Request: models.RequestPayload{
			Type:   models.TypeIntentRequest,
			Intent: &models.Intent{Name: name, Slots: slots},
		},
	}
}

func utterance(value string) map[string]models.Slot {
	return map[string]models.Slot{
		models.SlotUtterance: {Name: models.SlotUtterance, Value: value},
	}
}

func newTestRouter(t *testing.T) (*Router, *mock.MockZoneResolver, *mock.MockAnswerer) {
	ctrl := gomock.NewController(t)
	zones := mock.NewMockZoneResolver(ctrl)
	answers := mock.NewMockAnswerer(ctrl)
	return NewRouter(zones, answers), zones, answers
}

func assertAsk(t *testing.T, resp models.Response, text, reprompt string) {
	t.Helper()

	require.NotNil(t, resp.Response.OutputSpeech)
	assert.Equal(t, models.SpeechTypeSSML, resp.Response.OutputSpeech.Type)
	assert.Equal(t, ssml.Wrap(text), resp.Response.OutputSpeech.SSML)

	require.NotNil(t, resp.Response.Reprompt)
	assert.Equal(t, ssml.Wrap(reprompt), resp.Response.Reprompt.OutputSpeech.SSML)

	require.NotNil(t, resp.Response.ShouldEndSession)
	assert.False(t, *resp.Response.ShouldEndSession)
}

func TestClassify(t *testing.T) {
	testCases := []struct {
		name string
		req  models.Request
		want Route
	}{
		{name: "launch", req: models.Request{Request: models.RequestPayload{Type: models.TypeLaunchRequest}}, want: RouteLaunch},
		{name: "ask", req: intentRequest(models.IntentAskGemini, nil), want: RouteAskGemini},
		{name: "help", req: intentRequest(models.IntentHelp, nil), want: RouteHelp},
		{name: "cancel", req: intentRequest(models.IntentCancel, nil), want: RouteCancelStop},
		{name: "stop", req: intentRequest(models.IntentStop, nil), want: RouteCancelStop},
		{name: "fallback", req: intentRequest(models.IntentFallback, nil), want: RouteFallback},
		{name: "session_ended", req: models.Request{Request: models.RequestPayload{Type: models.TypeSessionEndedRequest, Reason: "USER_INITIATED"}}, want: RouteSessionEnded},
		{name: "unknown_intent", req: intentRequest("AMAZON.NavigateHomeIntent", nil), want: RouteUnmatched},
		{name: "intent_without_payload", req: models.Request{Request: models.RequestPayload{Type: models.TypeIntentRequest}}, want: RouteUnmatched},
		{name: "unknown_type", req: models.Request{Request: models.RequestPayload{Type: "CanFulfillIntentRequest"}}, want: RouteUnmatched},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.req))
		})
	}
}

func TestRouteNames(t *testing.T) {
	seen := map[string]bool{}
	for r := RouteUnmatched; r <= RouteSessionEnded; r++ {
		name := r.String()
		assert.NotEqual(t, "unknown", name, "route %d", r)
		assert.False(t, seen[name], "duplicate name %s", name)
		seen[name] = true
	}
	assert.Equal(t, "unknown", Route(100).String())
}

func TestLaunch(t *testing.T) {
	router, zones, _ := newTestRouter(t)
	router.now = func() time.Time { return time.Date(2026, time.October, 16, 12, 0, 0, 0, time.UTC) }

	sys := models.System{
		APIEndpoint:    "https://api.amazonalexa.com",
		APIAccessToken: "token",
		Device:         models.Device{DeviceID: "device-1"},
	}
	req := models.Request{
		Context: models.Context{System: sys},
		Request: models.RequestPayload{Type: models.TypeLaunchRequest},
	}

	zones.EXPECT().
		Resolve(gomock.Any(), sys).
		Return(timezone.Result{Zone: "America/Sao_Paulo"})

	resp := router.Handle(context.Background(), req)

	assertAsk(t, resp, "Bom dia! Eu sou seu assistente com Gemini. O que você quer saber?", launchReprompt)
}

func TestLaunchWithFailingSettingsAPI(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	ctrl := gomock.NewController(t)
	// Зона по умолчанию не загружается, поэтому час считается как UTC-3.
	router := NewRouter(timezone.NewResolver("Invalid/Zone", time.Second), mock.NewMockAnswerer(ctrl))
	router.now = func() time.Time { return time.Date(2026, time.October, 16, 15, 0, 0, 0, time.UTC) }

	req := models.Request{
		Context: models.Context{System: models.System{
			APIEndpoint:    srv.URL,
			APIAccessToken: "token",
			Device:         models.Device{DeviceID: "device-1"},
		}},
		Request: models.RequestPayload{Type: models.TypeLaunchRequest},
	}

	resp := router.Handle(context.Background(), req)

	assertAsk(t, resp, "Boa tarde! Eu sou seu assistente com Gemini. O que você quer saber?", launchReprompt)
	assert.True(t, strings.HasPrefix(resp.Response.OutputSpeech.SSML, "<speak>"))
	assert.True(t, strings.HasSuffix(resp.Response.OutputSpeech.SSML, "</speak>"))
}

func TestAskGemini(t *testing.T) {
	t.Run("empty_utterance", func(t *testing.T) {
		router, _, _ := newTestRouter(t)

		resp := router.Handle(context.Background(), intentRequest(models.IntentAskGemini, utterance("")))
		assertAsk(t, resp, repeatQuestion, howCanIHelp)
	})

	t.Run("blank_utterance", func(t *testing.T) {
		router, _, _ := newTestRouter(t)

		resp := router.Handle(context.Background(), intentRequest(models.IntentAskGemini, utterance("   ")))
		assertAsk(t, resp, repeatQuestion, howCanIHelp)
	})

	t.Run("no_slots", func(t *testing.T) {
		router, _, _ := newTestRouter(t)

		resp := router.Handle(context.Background(), intentRequest(models.IntentAskGemini, nil))
		assertAsk(t, resp, repeatQuestion, howCanIHelp)
	})

	t.Run("answer", func(t *testing.T) {
		router, _, answers := newTestRouter(t)

		answers.EXPECT().
			Ask(gomock.Any(), "quanto é 2 < 3?").
			Return(gemini.Answer{Text: "Sim, 2 < 3 & 3 > 2."})

		resp := router.Handle(context.Background(), intentRequest(models.IntentAskGemini, utterance("  quanto é 2 < 3?  ")))

		assertAsk(t, resp, "Sim, 2 < 3 & 3 > 2.", anythingElse)
		assert.Contains(t, resp.Response.OutputSpeech.SSML, "2 &lt; 3 &amp; 3 &gt; 2")
	})

	t.Run("fallback_answer", func(t *testing.T) {
		router, _, answers := newTestRouter(t)

		answers.EXPECT().
			Ask(gomock.Any(), "pergunta").
			Return(gemini.Answer{Text: gemini.MsgUnavailable, Err: gemini.ErrUnavailable})

		resp := router.Handle(context.Background(), intentRequest(models.IntentAskGemini, utterance("pergunta")))
		assertAsk(t, resp, gemini.MsgUnavailable, anythingElse)
	})

	t.Run("long_answer_truncated", func(t *testing.T) {
		router, _, answers := newTestRouter(t)

		long := strings.Repeat("palavra ", 2000)
		answers.EXPECT().
			Ask(gomock.Any(), "conte uma história").
			Return(gemini.Answer{Text: long})

		resp := router.Handle(context.Background(), intentRequest(models.IntentAskGemini, utterance("conte uma história")))
		assertAsk(t, resp, ssml.Truncate(long, ssml.MaxSpeechLength), anythingElse)
		assert.Contains(t, resp.Response.OutputSpeech.SSML, "…</prosody>")
	})
}

func TestHelp(t *testing.T) {
	router, _, _ := newTestRouter(t)

	resp := router.Handle(context.Background(), intentRequest(models.IntentHelp, nil))
	assertAsk(t, resp, helpText, helpReprompt)
}

func TestCancelStop(t *testing.T) {
	for _, intent := range []string{models.IntentCancel, models.IntentStop} {
		t.Run(intent, func(t *testing.T) {
			router, _, _ := newTestRouter(t)

			resp := router.Handle(context.Background(), intentRequest(intent, nil))

			require.NotNil(t, resp.Response.OutputSpeech)
			assert.Equal(t, ssml.Wrap(goodbye), resp.Response.OutputSpeech.SSML)
			assert.Nil(t, resp.Response.Reprompt)
			require.NotNil(t, resp.Response.ShouldEndSession)
			assert.True(t, *resp.Response.ShouldEndSession)
		})
	}
}

func TestFallback(t *testing.T) {
	router, _, _ := newTestRouter(t)

	resp := router.Handle(context.Background(), intentRequest(models.IntentFallback, nil))
	assertAsk(t, resp, notUnderstood, howCanIHelp)
}

func TestSessionEnded(t *testing.T) {
	router, _, _ := newTestRouter(t)

	resp := router.Handle(context.Background(), models.Request{
		Request: models.RequestPayload{Type: models.TypeSessionEndedRequest, Reason: "USER_INITIATED"},
	})

	assert.Equal(t, models.Version, resp.Version)
	assert.Equal(t, models.ResponsePayload{}, resp.Response)
}

func TestUnmatched(t *testing.T) {
	router, _, _ := newTestRouter(t)

	resp := router.Handle(context.Background(), intentRequest("AMAZON.NavigateHomeIntent", nil))
	assertAsk(t, resp, unsupported, howCanIHelp)
}

func TestPanicBecomesApology(t *testing.T) {
	router, _, answers := newTestRouter(t)

	answers.EXPECT().
		Ask(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string) gemini.Answer {
			panic("boom")
		})

	resp := router.Handle(context.Background(), intentRequest(models.IntentAskGemini, utterance("pergunta")))
	assertAsk(t, resp, apology, howCanIHelp)
}
