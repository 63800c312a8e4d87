// Package geocode resolves patient addresses to coordinates through an external
// search service. The HTTP client is wrapped by throttling, retries, a redis
// cache and a service-area filter; see Chain.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"homecare-scheduler/internal/domain"
)

// Geocoder resolves an address. A nil coordinate with a nil error means no match.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*domain.Coordinate, error)
}

// StatusError is returned when the search service answers with a non-2xx code.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("geocode: unexpected status %d", e.Code)
}

// ClientConfig configures the HTTP client.
type ClientConfig struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	// CountryCodes narrows the search, e.g. "fi". Optional.
	CountryCodes string
}

// Client queries a Nominatim compatible /search endpoint.
type Client struct {
	http *resty.Client
	cc   string
}

type searchHit struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// NewClient builds a resty backed Client.
func NewClient(cfg ClientConfig) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "homecare-scheduler"
	}
	c := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", cfg.UserAgent)
	return &Client{http: c, cc: cfg.CountryCodes}
}

// Geocode returns the first hit for address.
func (c *Client) Geocode(ctx context.Context, address string) (*domain.Coordinate, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, nil
	}

	params := map[string]string{
		"q":      address,
		"format": "json",
		"limit":  "1",
	}
	if c.cc != "" {
		params["countrycodes"] = c.cc
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get("/search")
	if err != nil {
		return nil, fmt.Errorf("geocode: request: %w", err)
	}
	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return nil, &StatusError{Code: resp.StatusCode()}
	}

	var hits []searchHit
	if err := json.Unmarshal(resp.Body(), &hits); err != nil {
		return nil, fmt.Errorf("geocode: decode: %w", err)
	}
	if len(hits) == 0 {
		return nil, nil
	}
	return parseHit(hits[0])
}

func parseHit(h searchHit) (*domain.Coordinate, error) {
	lat, err1 := strconv.ParseFloat(h.Lat, 64)
	lng, err2 := strconv.ParseFloat(h.Lon, 64)
	if err := errors.Join(err1, err2); err != nil {
		return nil, fmt.Errorf("geocode: bad coordinate %q,%q: %w", h.Lat, h.Lon, err)
	}
	return &domain.Coordinate{Lat: lat, Lng: lng}, nil
}
