package sheets

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"
	"golang.org/x/oauth2"

	"github.com/r507/suguan-bot/internal/common/metrics"
	"github.com/r507/suguan-bot/internal/config"
	domainerrors "github.com/r507/suguan-bot/internal/domain/errors"
)

type Client struct {
	http           *resty.Client
	circuitBreaker *gobreaker.CircuitBreaker
	spreadsheetID  string
	logger         *slog.Logger
}

func NewClient(cfg *config.Config, tokenSource oauth2.TokenSource, logger *slog.Logger) *Client {
	httpClient := oauth2.NewClient(context.Background(), tokenSource)

	client := resty.NewWithClient(httpClient)
	client.SetBaseURL(cfg.SheetsBaseURL)
	client.SetTimeout(cfg.ExternalRequestTimeout)
	client.SetRetryCount(cfg.RetryCount)
	client.SetRetryWaitTime(cfg.RetryBackoff)
	client.SetRetryMaxWaitTime(cfg.RetryBackoff * 5)

	client.AddRetryCondition(func(r *resty.Response, err error) bool {
		if err != nil {
			return true
		}

		for _, status := range cfg.RetryableStatusCodes {
			if r.StatusCode() == status {
				return true
			}
		}

		return false
	})

	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		if resp.Request.Attempt > 1 {
			logger.Info("Sheets request retry attempt",
				"url", resp.Request.URL,
				"attempt", resp.Request.Attempt,
				"status", resp.StatusCode(),
			)
		}

		return nil
	})

	settings := gobreaker.Settings{
		Name:        "sheets_circuit_breaker",
		MaxRequests: uint32(cfg.CBPermittedCallsInHalfOpen), //nolint:gosec // G115: value comes from config
		Interval:    time.Duration(cfg.CBSlidingWindowSize) * time.Second,
		Timeout:     cfg.CBWaitDurationInOpenState,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= uint32(cfg.CBMinimumRequiredCalls) && //nolint:gosec // G115: value comes from config
				failureRatio >= float64(cfg.CBFailureRateThreshold)/100.0
		},
	}

	return &Client{
		http:           client,
		circuitBreaker: gobreaker.NewCircuitBreaker(settings),
		spreadsheetID:  cfg.SpreadsheetID,
		logger:         logger,
	}
}

// AppendRow appends a single row to the named worksheet. Any failure,
// including an open circuit breaker or a timeout, is reported as a
// transient ErrSheetUnavailable.
func (c *Client) AppendRow(ctx context.Context, sheet string, row []any) error {
	start := time.Now()

	_, err := c.circuitBreaker.Execute(func() (interface{}, error) {
		return nil, c.appendRow(ctx, sheet, row)
	})

	metrics.ObserveSheetsRequest(sheet, time.Since(start))

	if err != nil {
		metrics.RecordSubmission(sheet, "error")

		var unavailableErr *domainerrors.ErrSheetUnavailable
		if errors.As(err, &unavailableErr) {
			return err
		}

		return &domainerrors.ErrSheetUnavailable{Sheet: sheet, Cause: err}
	}

	metrics.RecordSubmission(sheet, "success")

	return nil
}

func (c *Client) appendRow(ctx context.Context, sheet string, row []any) error {
	body := map[string]any{
		"values": [][]any{row},
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("spreadsheetID", c.spreadsheetID).
		SetPathParam("range", "'"+sheet+"'").
		SetQueryParam("valueInputOption", "USER_ENTERED").
		SetQueryParam("insertDataOption", "INSERT_ROWS").
		SetBody(body).
		Post("/v4/spreadsheets/{spreadsheetID}/values/{range}:append")
	if err != nil {
		return &domainerrors.ErrSheetUnavailable{Sheet: sheet, Cause: err}
	}

	if resp.IsError() {
		return &domainerrors.ErrSheetUnavailable{Sheet: sheet, StatusCode: resp.StatusCode()}
	}

	return nil
}
