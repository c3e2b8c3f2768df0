package main

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/Jco131169Jco/alexa-gemini-skill/internal/logger"
	"github.com/Jco131169Jco/alexa-gemini-skill/internal/models"
)

type handler interface {
	Handle(ctx context.Context, req models.Request) models.Response
}

type app struct {
	skill handler
}

func newApp(h handler) *app {
	return &app{skill: h}
}

func (a *app) webhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		logger.Log.Debug("got request with bad method", zap.String("method", r.Method))

		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	logger.Log.Debug("decoding request")
	var req models.Request
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&req); err != nil {
		logger.Log.Debug("cannot decode request JSON body", zap.Error(err))

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	logger.Log.Debug("handling request",
		zap.String("type", req.Request.Type),
		zap.String("intent", req.IntentName()),
		zap.String("request_id", req.Request.RequestID),
	)

	// роутер всегда возвращает ответ, ошибки уже превращены в реплики
	resp := a.skill.Handle(ctx, req)

	w.Header().Set("Content-Type", "application/json")

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(resp); err != nil {
		logger.Log.Debug("error encoding response", zap.Error(err))
		return
	}
	logger.Log.Debug("sending HTTP 200 response")
}
