// Package gemini задаёт вопросы генеративной модели Gemini через REST API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/Jco131169Jco/alexa-gemini-skill/internal/logger"
	"github.com/Jco131169Jco/alexa-gemini-skill/internal/metrics"
)

const (
	MsgNotConfigured = "A chave do Gemini não está configurada."
	MsgUnavailable   = "Desculpe, tive um problema para consultar o Gemini agora."
	MsgNoAnswer      = "Desculpe, não consegui responder agora."
)

const persona = "Você é um assistente em português do Brasil. Responda de forma objetiva e educada. " +
	"Quando fizer sentido, traga passos práticos."

const answerPath = "candidates.0.content.parts.0.text"

var (
	ErrNotConfigured     = errors.New("gemini api key is not configured")
	ErrUnavailable       = errors.New("gemini api unavailable")
	ErrMalformedResponse = errors.New("gemini response is not json")
	ErrNoAnswer          = errors.New("gemini response has no text")
)

// Answer всегда содержит текст для озвучивания. Непустой Err означает,
// что в Text лежит сообщение-заглушка.
type Answer struct {
	Text string
	Err  error
}

func (a Answer) Fallback() bool {
	return a.Err != nil
}

type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	http   *resty.Client
	apiKey string
	model  string
}

func NewClient(cfg Config) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
			SetTimeout(cfg.Timeout),
		apiKey: cfg.APIKey,
		model:  cfg.Model,
	}
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role"`
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

func newGenerateRequest(question string) generateRequest {
	return generateRequest{
		Contents: []content{{
			Role:  "user",
			Parts: []part{{Text: persona + "\n\nPergunta: " + question}},
		}},
	}
}

// Ask не делает повторных попыток и не возвращает ошибок наружу.
func (c *Client) Ask(ctx context.Context, question string) Answer {
	if c.apiKey == "" {
		return Answer{Text: MsgNotConfigured, Err: ErrNotConfigured}
	}

	start := time.Now()
	ans := c.ask(ctx, question)
	metrics.OutboundLatency.WithLabelValues(metrics.TargetGemini).Observe(time.Since(start).Seconds())

	if ans.Fallback() {
		metrics.OutboundCallsTotal.WithLabelValues(metrics.TargetGemini, metrics.OutcomeFallback).Inc()
		logger.Log.Error("gemini request failed",
			zap.String("model", c.model),
			zap.Error(ans.Err),
		)
		return ans
	}

	metrics.OutboundCallsTotal.WithLabelValues(metrics.TargetGemini, metrics.OutcomeOK).Inc()
	return ans
}

func (c *Client) ask(ctx context.Context, question string) Answer {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(newGenerateRequest(question)).
		Post("/models/" + c.model + ":generateContent")
	if err != nil {
		return Answer{Text: MsgUnavailable, Err: fmt.Errorf("%w: %v", ErrUnavailable, err)}
	}
	if resp.IsError() {
		return Answer{Text: MsgUnavailable, Err: fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode())}
	}

	body := resp.Body()
	if !gjson.ValidBytes(body) {
		return Answer{Text: MsgUnavailable, Err: ErrMalformedResponse}
	}

	text := gjson.GetBytes(body, answerPath)
	if !text.Exists() {
		return Answer{Text: MsgNoAnswer, Err: fmt.Errorf("%w: missing %s", ErrNoAnswer, answerPath)}
	}

	answer := strings.TrimSpace(text.String())
	if answer == "" {
		return Answer{Text: MsgNoAnswer, Err: fmt.Errorf("%w: blank text", ErrNoAnswer)}
	}
	return Answer{Text: answer}
}
