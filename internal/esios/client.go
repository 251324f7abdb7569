// Package esios provides a client for the ESIOS API of Red Eléctrica de
// España, the Spanish electricity system operator.
package esios

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"

	"github.com/pablomv/esios-mcp/internal/httputil"
	"github.com/pablomv/esios-mcp/internal/models"
)

// DefaultBaseURL is the public ESIOS endpoint.
const DefaultBaseURL = "https://api.esios.ree.es"

// Options configures a Client. Token is required; everything else has a
// usable default.
type Options struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
	Limiter *rate.Limiter
	Logger  *log.Logger
}

// Client performs authenticated read-only calls against the ESIOS API.
// It holds no mutable state and is safe for concurrent use; each call maps
// to exactly one upstream HTTP attempt.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	limiter *rate.Limiter
	log     *log.Logger
}

// New builds a Client from opts. The token is captured here once; it is
// never read from the environment afterwards.
func New(opts Options) *Client {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	httpClient := opts.HTTP
	if httpClient == nil {
		httpClient = httputil.NewHTTPClient(nil, 0)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Client{
		baseURL: baseURL,
		token:   opts.Token,
		http:    httpClient,
		limiter: opts.Limiter,
		log:     logger,
	}
}

// DataRequest scopes a time-series retrieval. TimeTrunc and TimeAgg are
// forwarded verbatim as provider query parameters.
type DataRequest struct {
	Range     models.DateRange
	TimeTrunc string
	TimeAgg   string
}

// SearchIndicators asks the provider for indicators matching query by name
// or description. The provider does the matching; results come back in the
// provider's order, and no matches is an empty slice, not an error.
func (c *Client) SearchIndicators(ctx context.Context, query string) ([]models.Indicator, error) {
	u := fmt.Sprintf("%s/indicators?text=%s", c.baseURL, url.QueryEscape(query))

	body, status, err := c.fetch(ctx, u)
	if err != nil {
		return nil, err
	}
	if err := c.checkStatus(status, body); err != nil {
		return nil, err
	}

	var payload struct {
		Indicators []struct {
			ID          int    `json:"id"`
			Name        string `json:"name"`
			ShortName   string `json:"short_name"`
			Description string `json:"description"`
		} `json:"indicators"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &TransportError{Status: status, Cause: fmt.Errorf("decode indicators response: %w", err)}
	}

	indicators := make([]models.Indicator, 0, len(payload.Indicators))
	for _, ind := range payload.Indicators {
		indicators = append(indicators, models.Indicator{
			ID:          ind.ID,
			Name:        ind.Name,
			ShortName:   ind.ShortName,
			Description: ind.Description,
		})
	}
	c.log.Debug("indicator search completed", "query", query, "matches", len(indicators))
	return indicators, nil
}

// GetIndicatorData retrieves the time series for one indicator over a date
// range, in the chronological order the provider returns it.
func (c *Client) GetIndicatorData(ctx context.Context, id int, req DataRequest) ([]models.DataPoint, error) {
	q := url.Values{}
	q.Set("start_date", req.Range.Start.UTC().Format("2006-01-02T15:04:05Z"))
	q.Set("end_date", req.Range.End.UTC().Format("2006-01-02T15:04:05Z"))
	if req.TimeTrunc != "" {
		q.Set("time_trunc", req.TimeTrunc)
	}
	if req.TimeAgg != "" {
		q.Set("time_agg", req.TimeAgg)
	}
	u := fmt.Sprintf("%s/indicators/%d?%s", c.baseURL, id, q.Encode())

	body, status, err := c.fetch(ctx, u)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, &NotFoundError{ID: id}
	}
	if err := c.checkStatus(status, body); err != nil {
		return nil, err
	}

	var payload struct {
		Indicator struct {
			Name   string `json:"name"`
			Values []struct {
				Datetime string  `json:"datetime"`
				Value    float64 `json:"value"`
				GeoID    int     `json:"geo_id"`
				GeoName  string  `json:"geo_name"`
			} `json:"values"`
		} `json:"indicator"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &TransportError{Status: status, Cause: fmt.Errorf("decode indicator data response: %w", err)}
	}

	points := make([]models.DataPoint, 0, len(payload.Indicator.Values))
	for _, v := range payload.Indicator.Values {
		points = append(points, models.DataPoint{
			Datetime: parseProviderTime(v.Datetime),
			Value:    v.Value,
			GeoID:    v.GeoID,
			GeoName:  v.GeoName,
		})
	}
	c.log.Debug("indicator data retrieved",
		"indicator", id, "name", payload.Indicator.Name, "points", len(points))
	return points, nil
}

// fetch performs the single upstream attempt for one call. No retries:
// the MCP caller owns retry policy.
func (c *Client) fetch(ctx context.Context, u string) ([]byte, int, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, 0, &TransportError{Cause: err}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, 0, &TransportError{Cause: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	c.log.Debug("esios request", "url", u)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, &TransportError{Cause: err}
	}
	defer resp.Body.Close()

	body, err := httputil.ReadBody(resp)
	if err != nil {
		return nil, resp.StatusCode, &TransportError{Status: resp.StatusCode, Cause: err}
	}
	return body, resp.StatusCode, nil
}

// checkStatus maps a non-2xx status to the right error kind. 404 is handled
// by the callers that can name the missing resource.
func (c *Client) checkStatus(status int, body []byte) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return &RequestError{Status: status, Message: providerMessage(body)}
	default:
		return &TransportError{Status: status, Cause: fmt.Errorf("unexpected status %d", status)}
	}
}

// providerMessage extracts the human-readable detail from an error body.
// ESIOS error payloads are not uniform, so fall back to the raw body.
func providerMessage(body []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
		Errors  []struct {
			Detail string `json:"detail"`
			Title  string `json:"title"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
		if len(payload.Errors) > 0 {
			if payload.Errors[0].Detail != "" {
				return payload.Errors[0].Detail
			}
			return payload.Errors[0].Title
		}
	}
	return strings.TrimSpace(string(body))
}

// parseProviderTime is tolerant of the timestamp variants ESIOS emits.
func parseProviderTime(s string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
