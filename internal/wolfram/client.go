package wolfram

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.wolframalpha.com/v2/query"

// ErrNoAppID is returned when the client is constructed without an app id.
var ErrNoAppID = errors.New("wolfram app id is not configured")

// Explanation is one secondary pod of a Wolfram Alpha answer.
type Explanation struct {
	Title     string `json:"title"`
	Plaintext string `json:"plaintext"`
}

// Result is the flattened answer for one query.
type Result struct {
	Input         string        `json:"input"`
	PrimaryResult string        `json:"primaryResult"`
	Explanations  []Explanation `json:"explanations"`
}

// Client talks to the Wolfram Alpha full results API.
type Client struct {
	appID   string
	baseURL string
	http    *http.Client
}

// NewClient creates a Wolfram Alpha client. appID comes from the
// developer portal.
func NewClient(appID string) *Client {
	return &Client{
		appID:   appID,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// SetBaseURL overrides the API endpoint. Tests point it at a local
// server.
func (c *Client) SetBaseURL(u string) { c.baseURL = u }

// queryResponse mirrors the slice of the full results payload we read.
type queryResponse struct {
	QueryResult struct {
		Success bool `json:"success"`
		Error   bool `json:"error"`
		Pods    []struct {
			Title   string `json:"title"`
			Primary bool   `json:"primary"`
			SubPods []struct {
				Plaintext string `json:"plaintext"`
			} `json:"subpods"`
		} `json:"pods"`
	} `json:"queryresult"`
}

// Query sends input to Wolfram Alpha and flattens the pod list into a
// Result. The primary pod (or the first non-input pod when none is
// marked primary) becomes PrimaryResult; remaining pods with text
// become Explanations.
func (c *Client) Query(ctx context.Context, input string) (*Result, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, errors.New("input is empty")
	}
	if c.appID == "" {
		return nil, ErrNoAppID
	}

	q := url.Values{}
	q.Set("appid", c.appID)
	q.Set("input", input)
	q.Set("output", "json")
	q.Set("format", "plaintext")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("wolfram request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("wolfram returned status %d", resp.StatusCode)
	}

	var payload queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode wolfram response: %w", err)
	}

	qr := payload.QueryResult
	if qr.Error {
		return nil, errors.New("wolfram could not process the query")
	}
	if !qr.Success || len(qr.Pods) == 0 {
		return nil, errors.New("wolfram returned no results")
	}

	result := &Result{Input: input, Explanations: []Explanation{}}
	for _, pod := range qr.Pods {
		text := firstPlaintext(pod.SubPods)
		if text == "" {
			continue
		}
		switch {
		case pod.Primary && result.PrimaryResult == "":
			result.PrimaryResult = text
		case strings.EqualFold(pod.Title, "Input") || strings.EqualFold(pod.Title, "Input interpretation"):
			// The client already knows what it asked.
		default:
			result.Explanations = append(result.Explanations, Explanation{
				Title:     pod.Title,
				Plaintext: text,
			})
		}
	}

	// No pod was marked primary; promote the first explanation.
	if result.PrimaryResult == "" && len(result.Explanations) > 0 {
		result.PrimaryResult = result.Explanations[0].Plaintext
		result.Explanations = result.Explanations[1:]
	}
	if result.PrimaryResult == "" {
		return nil, errors.New("wolfram returned no readable pods")
	}
	return result, nil
}

func firstPlaintext(subpods []struct {
	Plaintext string `json:"plaintext"`
}) string {
	for _, sp := range subpods {
		if s := strings.TrimSpace(sp.Plaintext); s != "" {
			return s
		}
	}
	return ""
}
