package pathe

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/pathewatch/pathewatch/internal/common/errorwrapper"
	"github.com/pathewatch/pathewatch/internal/config"
	"github.com/pathewatch/pathewatch/internal/httpclient"
	"github.com/pathewatch/pathewatch/internal/models"
)

// Fetcher checks ticket availability for monitor requests against the live
// schedules endpoint.
type Fetcher struct {
	httpClient   *httpclient.HTTPClient
	parser       *ScheduleParser
	logger       zerolog.Logger
	fetchTimeout time.Duration
	endpoint     string
}

// NewFetcher creates a Fetcher using the shared HTTP client. The per-request
// timeout comes from the monitor configuration so a slow endpoint cannot
// stall the watch cycle.
func NewFetcher(client *httpclient.HTTPClient, cfg config.MonitorConfig, logger zerolog.Logger) *Fetcher {
	return &Fetcher{
		httpClient:   client,
		parser:       NewScheduleParser(logger),
		logger:       logger.With().Str("component", "Fetcher").Logger(),
		fetchTimeout: cfg.FetchTimeout(),
		endpoint:     scheduleEndpoint,
	}
}

// Fetch checks one monitor request against the live schedule. Failures come
// back as an OutcomeFetchError result rather than an error return, so every
// caller handles them the same way: log, leave state unchanged, move on.
func (f *Fetcher) Fetch(ctx context.Context, req models.MonitorRequest) models.FetchResult {
	url := scheduleURLAt(f.endpoint, req)
	f.logger.Debug().Str("url", url).Stringer("request", req).Msg("Checking schedule")

	fetchCtx := ctx
	if f.fetchTimeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, f.fetchTimeout)
		defer cancel()
	}

	resp, err := f.httpClient.Do(&httpclient.HTTPRequest{
		Context: fetchCtx,
		Method:  http.MethodGet,
		URL:     url,
	})
	if err != nil {
		reason := "schedule request failed"
		if errors.Is(err, errorwrapper.ErrTimeout) {
			reason = "schedule request timed out"
		}
		f.logger.Error().Err(err).Str("url", url).Msg("Schedule request failed")
		return models.FetchErrorResult(req, errorwrapper.NewFetchError(url, reason, err))
	}
	if !resp.IsSuccess() {
		f.logger.Warn().Int("status_code", resp.StatusCode).Str("url", url).Msg("Schedule endpoint returned non-OK status")
		return models.FetchErrorResult(req, errorwrapper.NewHTTPErrorWithURL(resp.StatusCode, "unexpected schedule response", url))
	}

	items, err := f.parser.Parse(resp.Body)
	if err != nil {
		f.logger.Error().Err(err).Str("url", url).Msg("Failed to parse schedule fragment")
		return models.FetchErrorResult(req, errorwrapper.NewFetchError(url, "schedule parse failed", err))
	}

	item := FindMovie(items, req.Movie)
	if item == nil {
		return models.UnavailableResult(req)
	}

	f.logger.Debug().
		Str("title", item.Title).
		Int("showtimes", len(item.Showtimes)).
		Stringer("request", req).
		Msg("Movie found in schedule")
	return models.AvailableResult(req, item)
}
