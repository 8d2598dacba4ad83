// Package places implements the directory lookup collaborator on top of the
// Google Places API.
package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tableline/internal/pkg/config"
	"tableline/internal/pkg/errs"
	"tableline/internal/usecase"

	"github.com/sony/gobreaker/v2"
)

const (
	maxResults           = 5
	maxResponseSizeBytes = 2 << 20
)

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[[]byte]
	logger     *slog.Logger
}

func NewClient(cfg config.PlacesConfig, logger *slog.Logger) *Client {
	settings := gobreaker.Settings{
		Name:    "google-places",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				"breaker", name, "from", from.String(), "to", to.String())
		},
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		breaker:    gobreaker.NewCircuitBreaker[[]byte](settings),
		logger:     logger,
	}
}

type textSearchResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		Name             string  `json:"name"`
		PlaceID          string  `json:"place_id"`
		FormattedAddress string  `json:"formatted_address"`
		Rating           float64 `json:"rating"`
		OpeningHours     *struct {
			OpenNow *bool `json:"open_now"`
		} `json:"opening_hours"`
	} `json:"results"`
}

type detailsResponse struct {
	Status string `json:"status"`
	Result struct {
		Name                 string  `json:"name"`
		FormattedPhoneNumber string  `json:"formatted_phone_number"`
		FormattedAddress     string  `json:"formatted_address"`
		Website              string  `json:"website"`
		Rating               float64 `json:"rating"`
		PriceLevel           int     `json:"price_level"`
		OpeningHours         *struct {
			OpenNow     *bool    `json:"open_now"`
			WeekdayText []string `json:"weekday_text"`
		} `json:"opening_hours"`
	} `json:"result"`
}

// Search runs a text search and returns at most five results.
func (c *Client) Search(ctx context.Context, query string) ([]usecase.RestaurantSummary, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("type", "restaurant")
	params.Set("key", c.apiKey)

	body, err := c.get(ctx, "/textsearch/json", params)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDirectoryLookupFailed)
	}

	var parsed textSearchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "decode text search response"), errs.ErrDirectoryLookupFailed)
	}
	if parsed.Status == "ZERO_RESULTS" {
		return nil, errs.ErrRestaurantNotFound
	}
	if parsed.Status != "OK" {
		return nil, errs.Mark(
			errs.Newf("places text search status %s: %s", parsed.Status, parsed.ErrorMessage),
			errs.ErrDirectoryLookupFailed,
		)
	}

	results := parsed.Results
	if len(results) > maxResults {
		results = results[:maxResults]
	}

	summaries := make([]usecase.RestaurantSummary, 0, len(results))
	for _, place := range results {
		summary := usecase.RestaurantSummary{
			Name:    place.Name,
			PlaceID: place.PlaceID,
			Address: place.FormattedAddress,
			Rating:  place.Rating,
		}
		if place.OpeningHours != nil {
			summary.OpenNow = place.OpeningHours.OpenNow
		}
		summaries = append(summaries, summary)
	}
	if len(summaries) == 0 {
		return nil, errs.ErrRestaurantNotFound
	}
	return summaries, nil
}

// ResolveContact finds the best match for name (optionally narrowed by
// location) and fetches its phone number and details.
func (c *Client) ResolveContact(ctx context.Context, name, location string) (*usecase.RestaurantContact, error) {
	query := name
	if strings.TrimSpace(location) != "" {
		query = fmt.Sprintf("%s %s", name, location)
	}

	summaries, err := c.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	details, err := c.details(ctx, summaries[0].PlaceID)
	if err != nil {
		return nil, err
	}
	return details, nil
}

func (c *Client) details(ctx context.Context, placeID string) (*usecase.RestaurantContact, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", "name,formatted_phone_number,opening_hours,website,rating,price_level,formatted_address")
	params.Set("key", c.apiKey)

	body, err := c.get(ctx, "/details/json", params)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDirectoryLookupFailed)
	}

	var parsed detailsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "decode place details response"), errs.ErrDirectoryLookupFailed)
	}
	if parsed.Status != "OK" {
		return nil, errs.Mark(
			errs.Newf("place details status %s", parsed.Status),
			errs.ErrDirectoryLookupFailed,
		)
	}

	contact := &usecase.RestaurantContact{
		Name:       parsed.Result.Name,
		Phone:      NormalizePhone(parsed.Result.FormattedPhoneNumber),
		Address:    parsed.Result.FormattedAddress,
		Rating:     parsed.Result.Rating,
		PriceLevel: parsed.Result.PriceLevel,
		HasWebsite: parsed.Result.Website != "",
	}
	if parsed.Result.OpeningHours != nil {
		contact.OpenNow = parsed.Result.OpeningHours.OpenNow
		contact.Hours = parsed.Result.OpeningHours.WeekdayText
	}
	return contact, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	return c.breaker.Execute(func() ([]byte, error) {
		endpoint := c.baseURL + path + "?" + params.Encode()
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, errs.Wrap(err, "build places request")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, errs.Wrap(err, "call places api")
		}
		defer func() { _ = resp.Body.Close() }()

		body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSizeBytes))
		if err != nil {
			return nil, errs.Wrap(err, "read places response")
		}
		if resp.StatusCode != http.StatusOK {
			return nil, errs.Newf("places api returned status %d", resp.StatusCode)
		}
		return body, nil
	})
}

// NormalizePhone strips formatting and returns an E.164-ish number. Ten-digit
// numbers are assumed to be NANP and get a +1 prefix.
func NormalizePhone(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	switch n := digits.String(); {
	case n == "":
		return ""
	case strings.HasPrefix(raw, "+"):
		return "+" + n
	case len(n) == 10:
		return "+1" + n
	case len(n) == 11 && strings.HasPrefix(n, "1"):
		return "+" + n
	default:
		return "+" + n
	}
}
