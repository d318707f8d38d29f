// Package bored is a client for the Bored API activity-suggestion lookup.
package bored

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"unbored/internal/config"
	"unbored/internal/domain"
	apperrors "unbored/pkg/errors"
	"unbored/pkg/logger"
)

// suggestionResponse is the wire shape of an activity lookup. The service
// answers 200 for both outcomes; a no-match is flagged by the error field.
type suggestionResponse struct {
	Activity      string  `json:"activity"`
	Type          string  `json:"type"`
	Participants  int     `json:"participants"`
	Price         float64 `json:"price"`
	Link          string  `json:"link"`
	Key           string  `json:"key"`
	Accessibility float64 `json:"accessibility"`
	Error         string  `json:"error"`
}

// Client handles all interactions with the Bored API
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logger.Logger
}

// NewClient creates a new Bored API client
func NewClient(cfg *config.Config, logger *logger.Logger) *Client {
	return &Client{
		baseURL: cfg.APIBaseURL,
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
		logger: logger,
	}
}

// Suggest asks the service for one activity satisfying the given criteria.
// It returns a no-match error when the service reports that nothing fits,
// and an external error for any transport or decoding fault.
func (c *Client) Suggest(ctx context.Context, criteria domain.FilterCriteria) (*domain.Activity, error) {
	endpoint := fmt.Sprintf("%s/api/activity", c.baseURL)
	if query := buildQuery(criteria); query != "" {
		endpoint += "?" + query
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, apperrors.NewExternalError("failed to create request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewExternalError("failed to reach the activity service", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewExternalError("failed to read response body", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NewExternalError(
			fmt.Sprintf("activity service returned status %d", resp.StatusCode), nil,
		)
	}

	var suggestion suggestionResponse
	if err := json.Unmarshal(body, &suggestion); err != nil {
		c.logger.WithFields(map[string]interface{}{
			"response_body": string(body),
			"status_code":   resp.StatusCode,
		}).Error("Failed to parse activity service response")
		return nil, apperrors.NewExternalError("failed to parse activity service response", err)
	}

	if suggestion.Error != "" {
		return nil, apperrors.NewNoMatchError(suggestion.Error)
	}

	activityType, err := domain.ParseActivityType(suggestion.Type)
	if err != nil {
		return nil, apperrors.NewExternalError("activity service returned an unknown type", err)
	}

	activity := &domain.Activity{
		Activity:      suggestion.Activity,
		Type:          activityType,
		Participants:  suggestion.Participants,
		Price:         suggestion.Price,
		Accessibility: suggestion.Accessibility,
		Link:          suggestion.Link,
		Key:           suggestion.Key,
	}

	c.logger.WithFields(map[string]interface{}{
		"activity": activity.Activity,
		"type":     activity.Type,
		"key":      activity.Key,
	}).Debug("Fetched activity suggestion")

	return activity, nil
}

// buildQuery encodes only the constraints that are actually set
func buildQuery(criteria domain.FilterCriteria) string {
	values := url.Values{}
	if criteria.Type != nil {
		values.Set("type", string(*criteria.Type))
	}
	if criteria.Participants != nil {
		values.Set("participants", strconv.Itoa(*criteria.Participants))
	}
	setScore(values, "minprice", criteria.MinPrice)
	setScore(values, "maxprice", criteria.MaxPrice)
	setScore(values, "minaccessibility", criteria.MinAccessibility)
	setScore(values, "maxaccessibility", criteria.MaxAccessibility)
	return values.Encode()
}

func setScore(values url.Values, key string, score *float64) {
	if score != nil {
		values.Set(key, strconv.FormatFloat(*score, 'f', -1, 64))
	}
}
