// Package fitnessapi is a thin client for the Google Fitness API, used for
// the optional step-count supplement on check-in replies.
package fitnessapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

// TokenProvider yields the OAuth token source backing API calls
type TokenProvider interface {
	TokenSource(ctx context.Context) (oauth2.TokenSource, error)
}

// Client represents a fitness-metric client
type Client interface {
	// TodayStepCount returns the step total for the current day. Callers
	// treat failures as non-fatal and omit the supplement.
	TodayStepCount(ctx context.Context) (int, error)
}

// GoogleClient reads step counts through the Fitness aggregate API
type GoogleClient struct {
	baseURL    string
	tokens     TokenProvider
	httpClient *http.Client
	loc        *time.Location
}

// NewGoogleClient creates a new Fitness API client. Day boundaries follow
// the supplied location so the aggregate window matches the bot's dates.
func NewGoogleClient(tokens TokenProvider, loc *time.Location) Client {
	return &GoogleClient{
		baseURL: "https://www.googleapis.com/fitness/v1",
		tokens:  tokens,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		loc: loc,
	}
}

type aggregateResponse struct {
	Bucket []struct {
		Dataset []struct {
			Point []struct {
				Value []struct {
					IntVal int `json:"intVal"`
				} `json:"value"`
			} `json:"point"`
		} `json:"dataset"`
	} `json:"bucket"`
}

// TodayStepCount aggregates today's step deltas
func (c *GoogleClient) TodayStepCount(ctx context.Context) (int, error) {
	ts, err := c.tokens.TokenSource(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load credentials: %w", err)
	}
	token, err := ts.Token()
	if err != nil {
		return 0, fmt.Errorf("failed to refresh credentials: %w", err)
	}

	now := time.Now().In(c.loc)
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, c.loc)

	requestBody := map[string]interface{}{
		"aggregateBy": []map[string]string{
			{"dataTypeName": "com.google.step_count.delta"},
		},
		"bucketByTime":    map[string]int64{"durationMillis": 24 * 60 * 60 * 1000},
		"startTimeMillis": dayStart.UnixMilli(),
		"endTimeMillis":   now.UnixMilli(),
	}

	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/users/me/dataset:aggregate", bytes.NewBuffer(jsonBody))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	token.SetAuthHeader(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var response aggregateResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return 0, fmt.Errorf("failed to parse response: %w", err)
	}

	steps := 0
	for _, bucket := range response.Bucket {
		for _, dataset := range bucket.Dataset {
			for _, point := range dataset.Point {
				for _, value := range point.Value {
					steps += value.IntVal
				}
			}
		}
	}
	return steps, nil
}

// MockClient simulates step counts for local development
type MockClient struct{}

// NewMockClient creates a new mock fitness client
func NewMockClient() Client {
	return &MockClient{}
}

// TodayStepCount returns a fixed step count
func (c *MockClient) TodayStepCount(ctx context.Context) (int, error) {
	return 4096, nil
}
