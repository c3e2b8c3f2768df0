package skill

import "github.com/Jco131169Jco/alexa-gemini-skill/internal/models"

// Route перечисляет закрытый набор обработчиков. Classify сопоставляет событию ровно
// один маршрут.
type Route int

const (
	RouteUnmatched Route = iota
	RouteLaunch
	RouteAskGemini
	RouteHelp
	RouteCancelStop
	RouteFallback
	RouteSessionEnded
)

var routeNames = map[Route]string{
	RouteUnmatched:    "unmatched",
	RouteLaunch:       "launch",
	RouteAskGemini:    "ask_gemini",
	RouteHelp:         "help",
	RouteCancelStop:   "cancel_stop",
	RouteFallback:     "fallback",
	RouteSessionEnded: "session_ended",
}

func (r Route) String() string {
	if name, ok := routeNames[r]; ok {
		return name
	}
	return "unknown"
}

func Classify(req models.Request) Route {
	switch req.Request.Type {
	case models.TypeLaunchRequest:
		return RouteLaunch
	case models.TypeSessionEndedRequest:
		return RouteSessionEnded
	case models.TypeIntentRequest:
		switch req.IntentName() {
		case models.IntentAskGemini:
			return RouteAskGemini
		case models.IntentHelp:
			return RouteHelp
		case models.IntentCancel, models.IntentStop:
			return RouteCancelStop
		case models.IntentFallback:
			return RouteFallback
		}
	}
	return RouteUnmatched
}
