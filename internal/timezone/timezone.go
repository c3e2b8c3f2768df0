// Package timezone узнаёт часовой пояс устройства через API настроек платформы.
package timezone

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/Jco131169Jco/alexa-gemini-skill/internal/logger"
	"github.com/Jco131169Jco/alexa-gemini-skill/internal/metrics"
	"github.com/Jco131169Jco/alexa-gemini-skill/internal/models"
)

var (
	ErrIncompleteDevice  = errors.New("device context is incomplete")
	ErrUnavailable       = errors.New("settings api unavailable")
	ErrMalformedResponse = errors.New("unexpected settings payload")
)

// Result содержит найденный часовой пояс. Непустой Err означает, что в Zone
// подставлено значение по умолчанию.
type Result struct {
	Zone string
	Err  error
}

func (r Result) Fallback() bool {
	return r.Err != nil
}

type Resolver struct {
	client      *resty.Client
	defaultZone string
}

func NewResolver(defaultZone string, timeout time.Duration) *Resolver {
	return &Resolver{
		client:      resty.New().SetTimeout(timeout),
		defaultZone: defaultZone,
	}
}

// Resolve никогда не возвращает ошибку наружу: при любой проблеме
// отдаётся часовой пояс по умолчанию.
func (r *Resolver) Resolve(ctx context.Context, sys models.System) Result {
	start := time.Now()
	res := r.resolve(ctx, sys)
	metrics.OutboundLatency.WithLabelValues(metrics.TargetTimezone).Observe(time.Since(start).Seconds())

	if res.Fallback() {
		metrics.OutboundCallsTotal.WithLabelValues(metrics.TargetTimezone, metrics.OutcomeFallback).Inc()
		logger.Log.Debug("using default timezone",
			zap.String("zone", res.Zone),
			zap.Error(res.Err),
		)
		return res
	}

	metrics.OutboundCallsTotal.WithLabelValues(metrics.TargetTimezone, metrics.OutcomeOK).Inc()
	return res
}

func (r *Resolver) resolve(ctx context.Context, sys models.System) Result {
	if sys.APIEndpoint == "" || sys.Device.DeviceID == "" {
		return r.fallback(ErrIncompleteDevice)
	}

	url := fmt.Sprintf("%s/v2/devices/%s/settings/System.timeZone",
		strings.TrimRight(sys.APIEndpoint, "/"), sys.Device.DeviceID)

	resp, err := r.client.R().
		SetContext(ctx).
		SetAuthToken(sys.APIAccessToken).
		Get(url)
	if err != nil {
		return r.fallback(fmt.Errorf("%w: %v", ErrUnavailable, err))
	}
	if resp.StatusCode() != http.StatusOK {
		return r.fallback(fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode()))
	}

	return r.parse(resp.Body())
}

func (r *Resolver) parse(body []byte) Result {
	if !gjson.ValidBytes(body) {
		zone := strings.Trim(string(body), `"`)
		if zone == "" {
			return r.fallback(fmt.Errorf("%w: empty body", ErrMalformedResponse))
		}
		return Result{Zone: zone}
	}

	parsed := gjson.ParseBytes(body)
	switch {
	case parsed.Type == gjson.String:
		return Result{Zone: parsed.Str}
	case parsed.IsObject():
		setting := parsed.Get("setting")
		if !setting.Exists() {
			return r.fallback(fmt.Errorf("%w: no setting field", ErrMalformedResponse))
		}
		return Result{Zone: setting.String()}
	default:
		return r.fallback(fmt.Errorf("%w: %s", ErrMalformedResponse, parsed.Type))
	}
}

func (r *Resolver) fallback(err error) Result {
	return Result{Zone: r.defaultZone, Err: err}
}
