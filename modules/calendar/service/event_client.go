package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"gig-planner/core/constants"
	"gig-planner/core/errors"
	"gig-planner/core/logger"
)

const googleCalendarAPIBase = "https://www.googleapis.com/calendar/v3"

// EventInput is the provider-neutral shape of a calendar invite.
type EventInput struct {
	Summary       string
	Description   string
	Location      string
	Start         time.Time
	End           time.Time
	AttendeeEmail string
}

// EventClient talks to a provider's event API with an already valid access
// token. Token refresh happens before this layer.
type EventClient interface {
	CreateEvent(ctx context.Context, accessToken, calendarID string, input EventInput) (string, error)
	DeleteEvent(ctx context.Context, accessToken, calendarID, eventID string) error
}

type googleEventClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewGoogleEventClient() EventClient {
	return &googleEventClient{
		baseURL:    googleCalendarAPIBase,
		httpClient: &http.Client{Timeout: constants.DefaultTimeout},
	}
}

// NewGoogleEventClientWithBaseURL exists for tests backed by httptest.
func NewGoogleEventClientWithBaseURL(baseURL string) EventClient {
	return &googleEventClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: constants.DefaultTimeout},
	}
}

// CreateEvent creates the event with the musician as attendee. sendUpdates
// makes Google deliver the invite email on our behalf.
func (c *googleEventClient) CreateEvent(ctx context.Context, accessToken, calendarID string, input EventInput) (string, error) {
	payload := map[string]any{
		"summary":     input.Summary,
		"description": input.Description,
		"start": map[string]string{
			"dateTime": input.Start.Format(time.RFC3339),
		},
		"end": map[string]string{
			"dateTime": input.End.Format(time.RFC3339),
		},
	}
	if input.Location != "" {
		payload["location"] = input.Location
	}
	if input.AttendeeEmail != "" {
		payload["attendees"] = []map[string]string{{"email": input.AttendeeEmail}}
	}

	body, _ := json.Marshal(payload)
	endpoint := fmt.Sprintf("%s/calendars/%s/events?sendUpdates=all", c.baseURL, url.PathEscape(calendarID))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.NewAppError(errors.ErrInternalServer, "failed to reach calendar provider", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(resp.Body)
		logger.Error("GoogleEventClient:CreateEvent:APIError",
			"status", resp.StatusCode, "body", string(respBody))
		return "", errors.NewAppError(errors.ErrInternalServer,
			fmt.Sprintf("calendar provider returned status %d", resp.StatusCode), nil)
	}

	var result struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", errors.NewAppError(errors.ErrInternalServer, "failed to parse provider response", err)
	}
	if result.ID == "" {
		return "", errors.NewAppError(errors.ErrInternalServer, "provider response missing event id", nil)
	}
	return result.ID, nil
}

// DeleteEvent removes the event. A 404 or 410 means someone already
// deleted it on the provider side, which is the state we wanted anyway.
func (c *googleEventClient) DeleteEvent(ctx context.Context, accessToken, calendarID, eventID string) error {
	endpoint := fmt.Sprintf("%s/calendars/%s/events/%s?sendUpdates=all",
		c.baseURL, url.PathEscape(calendarID), url.PathEscape(eventID))

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to reach calendar provider", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNoContent, http.StatusOK, http.StatusNotFound, http.StatusGone:
		return nil
	default:
		respBody, _ := io.ReadAll(resp.Body)
		logger.Error("GoogleEventClient:DeleteEvent:APIError",
			"status", resp.StatusCode, "body", string(respBody))
		return errors.NewAppError(errors.ErrInternalServer,
			fmt.Sprintf("calendar provider returned status %d", resp.StatusCode), nil)
	}
}
