// Package peopleapi is a thin client for the Google People API, used to
// materialize unresolved senders as named contacts before registration.
package peopleapi

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

// Client represents a contact-creation client
type Client interface {
	// CreateContact stores a contact with the given display name and
	// mobile number. Failure means the caller must not register the user.
	CreateContact(ctx context.Context, displayName, phone string) error
}

// GoogleClient creates contacts through the People API
type GoogleClient struct {
	baseURL    string
	tokens     TokenProvider
	httpClient *http.Client
}

// NewGoogleClient creates a new People API client
func NewGoogleClient(tokens TokenProvider) Client {
	return &GoogleClient{
		baseURL: "https://people.googleapis.com/v1",
		tokens:  tokens,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// CreateContact saves the contact to the authorized Google account
func (c *GoogleClient) CreateContact(ctx context.Context, displayName, phone string) error {
	ts, err := c.tokens.TokenSource(ctx)
	if err != nil {
		return fmt.Errorf("failed to load credentials: %w", err)
	}
	token, err := ts.Token()
	if err != nil {
		return fmt.Errorf("failed to refresh credentials: %w", err)
	}

	requestBody := map[string]interface{}{
		"names": []map[string]string{
			{"givenName": displayName},
		},
		"phoneNumbers": []map[string]string{
			{"value": phone, "type": "mobile"},
		},
	}

	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/people:createContact", bytes.NewBuffer(jsonBody))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	token.SetAuthHeader(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}

// MockClient simulates contact creation for local development
type MockClient struct{}

// NewMockClient creates a new mock contact-creation client
func NewMockClient() Client {
	return &MockClient{}
}

// CreateContact simulates saving a contact
func (c *MockClient) CreateContact(ctx context.Context, displayName, phone string) error {
	fmt.Printf("[People Mock] Simulating CreateContact %s (%s)\n", displayName, phone)
	return nil
}
