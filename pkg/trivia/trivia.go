// Package trivia is a client for Open Trivia DB compatible APIs.
package trivia

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

const (
	DefaultAPIURL = "https://opentdb.com/api.php"
	MinAmount     = 1
	MaxAmount     = 20
	DefaultAmount = 5
)

var ErrNoResults = errors.New("trivia API returned no results")

// Client fetches trivia questions
type Client struct {
	apiURL string
	client *http.Client
}

// Config configures the trivia client
type Config struct {
	APIURL  string
	Timeout time.Duration
}

// Query selects questions. Zero values use the API defaults.
type Query struct {
	Amount     int
	Category   int
	Difficulty string
}

// Question is a single decoded trivia question
type Question struct {
	Category         string   `json:"category"`
	Type             string   `json:"type"`
	Difficulty       string   `json:"difficulty"`
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}

type apiResponse struct {
	ResponseCode int        `json:"response_code"`
	Results      []Question `json:"results"`
}

// New creates a trivia client
func New(config Config) *Client {
	if config.APIURL == "" {
		config.APIURL = DefaultAPIURL
	}
	if config.Timeout == 0 {
		config.Timeout = 10 * time.Second
	}

	return &Client{
		apiURL: config.APIURL,
		client: &http.Client{Timeout: config.Timeout},
	}
}

// Questions fetches questions and decodes the HTML entities the API embeds in text fields
func (c *Client) Questions(ctx context.Context, q Query) ([]Question, error) {
	amount := q.Amount
	if amount == 0 {
		amount = DefaultAmount
	}
	if amount < MinAmount || amount > MaxAmount {
		return nil, fmt.Errorf("amount must be between %d and %d", MinAmount, MaxAmount)
	}

	params := url.Values{}
	params.Set("amount", strconv.Itoa(amount))
	if q.Category > 0 {
		params.Set("category", strconv.Itoa(q.Category))
	}
	if q.Difficulty != "" {
		params.Set("difficulty", q.Difficulty)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	startTime := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	log.Debugf("Trivia request completed in %dms", time.Since(startTime).Milliseconds())

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var raw apiResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	// Non-zero codes mean no results, bad parameters or rate limiting
	if raw.ResponseCode != 0 {
		return nil, fmt.Errorf("%w (response code %d)", ErrNoResults, raw.ResponseCode)
	}

	questions := make([]Question, 0, len(raw.Results))
	for _, r := range raw.Results {
		questions = append(questions, decode(r))
	}
	return questions, nil
}

func decode(q Question) Question {
	out := Question{
		Category:         html.UnescapeString(q.Category),
		Type:             q.Type,
		Difficulty:       q.Difficulty,
		Question:         html.UnescapeString(q.Question),
		CorrectAnswer:    html.UnescapeString(q.CorrectAnswer),
		IncorrectAnswers: make([]string, len(q.IncorrectAnswers)),
	}
	for i, a := range q.IncorrectAnswers {
		out.IncorrectAnswers[i] = html.UnescapeString(a)
	}
	return out
}
