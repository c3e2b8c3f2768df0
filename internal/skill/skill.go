package skill

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Jco131169Jco/alexa-gemini-skill/internal/gemini"
	"github.com/Jco131169Jco/alexa-gemini-skill/internal/greeting"
	"github.com/Jco131169Jco/alexa-gemini-skill/internal/logger"
	"github.com/Jco131169Jco/alexa-gemini-skill/internal/metrics"
	"github.com/Jco131169Jco/alexa-gemini-skill/internal/models"
	"github.com/Jco131169Jco/alexa-gemini-skill/internal/ssml"
	"github.com/Jco131169Jco/alexa-gemini-skill/internal/timezone"
)

//go:generate mockgen -destination=mock/mock_skill.go -package=mock . ZoneResolver,Answerer

type ZoneResolver interface {
	Resolve(ctx context.Context, sys models.System) timezone.Result
}

type Answerer interface {
	Ask(ctx context.Context, question string) gemini.Answer
}

type Router struct {
	zones   ZoneResolver
	answers Answerer
	now     func() time.Time
}

func NewRouter(zones ZoneResolver, answers Answerer) *Router {
	return &Router{
		zones:   zones,
		answers: answers,
		now:     time.Now,
	}
}

// Handle обрабатывает одно событие платформы. Паника в обработчике
// превращается в голосовое извинение.
func (r *Router) Handle(ctx context.Context, req models.Request) (resp models.Response) {
	route := Classify(req)
	metrics.RequestsTotal.WithLabelValues(route.String()).Inc()

	defer func() {
		if p := recover(); p != nil {
			metrics.PanicsTotal.Inc()
			logger.Log.Error("recovered panic in handler",
				zap.Stringer("route", route),
				zap.Any("panic", p),
			)
			resp = ask(apology, howCanIHelp)
		}
	}()

	switch route {
	case RouteLaunch:
		return r.launch(ctx, req)
	case RouteAskGemini:
		return r.askGemini(ctx, req)
	case RouteHelp:
		return ask(helpText, helpReprompt)
	case RouteCancelStop:
		return tell(goodbye)
	case RouteFallback:
		return ask(notUnderstood, howCanIHelp)
	case RouteSessionEnded:
		return empty()
	case RouteUnmatched:
		logger.Log.Warn("no handler for request",
			zap.String("type", req.Request.Type),
			zap.String("intent", req.IntentName()),
		)
		return ask(unsupported, howCanIHelp)
	default:
		panic(fmt.Sprintf("route %d has no handler", route))
	}
}

func (r *Router) launch(ctx context.Context, req models.Request) models.Response {
	zone := r.zones.Resolve(ctx, req.Context.System)
	hello := greeting.Select(zone.Zone, r.now())

	return ask(fmt.Sprintf(introFormat, hello), launchReprompt)
}

func (r *Router) askGemini(ctx context.Context, req models.Request) models.Response {
	question := strings.TrimSpace(req.SlotValue(models.SlotUtterance))
	if question == "" {
		return ask(repeatQuestion, howCanIHelp)
	}

	answer := r.answers.Ask(ctx, question)
	return ask(ssml.Truncate(answer.Text, ssml.MaxSpeechLength), anythingElse)
}
