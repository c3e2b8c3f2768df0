package models

const (
	TypeLaunchRequest       = "LaunchRequest"
	TypeIntentRequest       = "IntentRequest"
	TypeSessionEndedRequest = "SessionEndedRequest"
)

const (
	IntentAskGemini = "AskGeminiIntent"
	IntentHelp      = "AMAZON.HelpIntent"
	IntentCancel    = "AMAZON.CancelIntent"
	IntentStop      = "AMAZON.StopIntent"
	IntentFallback  = "AMAZON.FallbackIntent"

	SlotUtterance = "utterance"
)

const (
	SpeechTypeSSML = "SSML"
	Version        = "1.0"
)

// Request описывает конверт запроса от голосовой платформы.
// См. https://developer.amazon.com/en-US/docs/alexa/custom-skills/request-and-response-json-reference.html
type Request struct {
	Version string         `json:"version"`
	Session Session        `json:"session"`
	Context Context        `json:"context"`
	Request RequestPayload `json:"request"`
}

type Session struct {
	New       bool   `json:"new"`
	SessionID string `json:"sessionId"`
}

type Context struct {
	System System `json:"System"`
}

// System несёт данные устройства, нужные для обращения к API настроек.
type System struct {
	APIEndpoint    string `json:"apiEndpoint"`
	APIAccessToken string `json:"apiAccessToken"`
	Device         Device `json:"device"`
}

type Device struct {
	DeviceID string `json:"deviceId"`
}

type RequestPayload struct {
	Type      string  `json:"type"`
	RequestID string  `json:"requestId"`
	Locale    string  `json:"locale"`
	Reason    string  `json:"reason,omitempty"`
	Intent    *Intent `json:"intent,omitempty"`
}

type Intent struct {
	Name  string          `json:"name"`
	Slots map[string]Slot `json:"slots,omitempty"`
}

type Slot struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// IntentName возвращает имя интента или пустую строку, если интента нет.
func (r Request) IntentName() string {
	if r.Request.Intent == nil {
		return ""
	}
	return r.Request.Intent.Name
}

// SlotValue возвращает значение слота; отсутствующий слот даёт пустую строку.
func (r Request) SlotValue(name string) string {
	if r.Request.Intent == nil {
		return ""
	}
	return r.Request.Intent.Slots[name].Value
}

// Response описывает ответ сервера.
type Response struct {
	Version  string          `json:"version"`
	Response ResponsePayload `json:"response"`
}

type ResponsePayload struct {
	OutputSpeech     *OutputSpeech `json:"outputSpeech,omitempty"`
	Reprompt         *Reprompt     `json:"reprompt,omitempty"`
	ShouldEndSession *bool         `json:"shouldEndSession,omitempty"`
}

type OutputSpeech struct {
	Type string `json:"type"`
	SSML string `json:"ssml"`
}

type Reprompt struct {
	OutputSpeech *OutputSpeech `json:"outputSpeech"`
}
