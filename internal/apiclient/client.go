package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/windoze95/movierec/internal/logger"
	"github.com/windoze95/movierec/internal/models"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Client talks to the movie recommendation backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a Client for the backend at baseURL. A zero timeout
// leaves requests bounded only by the caller's context, and a
// non-positive rps disables pacing.
func NewClient(baseURL string, timeout time.Duration, rps float64) *Client {
	limit := rate.Inf
	burst := 1
	if rps > 0 {
		limit = rate.Limit(rps)
		if int(rps) > burst {
			burst = int(rps)
		}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(limit, burst),
	}
}

// Register creates a new account and returns the backend's message.
func (c *Client) Register(ctx context.Context, creds models.Credentials) (string, error) {
	var resp models.MessageResponse
	if err := c.do(ctx, http.MethodPost, "/register", nil, creds, "", &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// Login exchanges credentials for an access token. A 2xx response without a
// token is returned as-is so the caller can surface Msg.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/login", nil, creds, "", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Search fetches one page of movies matching query. An empty slice means
// there are no more results.
//
// The backend answers /search with 404 whether or not anything matched, so
// a 404 carrying a JSON array is a normal page and any other 404 body (such
// as {"message": "No movies found"}) is an empty one.
func (c *Client) Search(ctx context.Context, query string, page int) ([]models.Movie, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", strconv.Itoa(page))

	var movies []models.Movie
	err := c.do(ctx, http.MethodGet, "/search", params, nil, "", &movies)
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		return moviesFromNotFound(apiErr.Body)
	}
	if err != nil {
		return nil, err
	}
	if movies == nil {
		movies = []models.Movie{}
	}
	return movies, nil
}

// AddRecommendation records a recommendation for movieID on behalf of the
// holder of token. comment is optional.
func (c *Client) AddRecommendation(ctx context.Context, token string, movieID int, comment string) error {
	body := models.AddRecommendationRequest{MovieID: movieID, Comment: comment}
	return c.do(ctx, http.MethodPost, "/add_recommendation", nil, body, token, nil)
}

// RecommendedMovies fetches the full list of recommended movies.
func (c *Client) RecommendedMovies(ctx context.Context) ([]models.Recommendation, error) {
	var recs []models.Recommendation
	if err := c.do(ctx, http.MethodGet, "/recommended_movies", nil, nil, "", &recs); err != nil {
		return nil, err
	}
	if recs == nil {
		recs = []models.Recommendation{}
	}
	return recs, nil
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, in any, token string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode %s body: %w", path, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", path, err)
	}
	requestID := logger.NewRequestID()
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	log := logger.WithRequestID(requestID).With(zap.String("method", method), zap.String("path", path))
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn("request failed", zap.Error(err))
		return fmt.Errorf("%s %s request failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read %s response: %w", path, err)
	}
	log.Debug("request completed",
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Message: messageFromBody(respBody), Body: respBody}
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to parse %s response: %w", path, err)
	}
	return nil
}

// moviesFromNotFound decodes a 404 /search body. Only a JSON array is a
// page of results; anything else means nothing matched.
func moviesFromNotFound(body []byte) ([]models.Movie, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return []models.Movie{}, nil
	}
	var movies []models.Movie
	if err := json.Unmarshal(trimmed, &movies); err != nil {
		return nil, fmt.Errorf("failed to parse /search response: %w", err)
	}
	if movies == nil {
		movies = []models.Movie{}
	}
	return movies, nil
}

// messageFromBody extracts the optional human readable message from an
// error body. Anything that is not a JSON object yields "".
func messageFromBody(body []byte) string {
	var msg struct {
		Message string `json:"message"`
		Msg     string `json:"msg"`
	}
	if err := json.Unmarshal(body, &msg); err != nil {
		return ""
	}
	if msg.Message != "" {
		return msg.Message
	}
	return msg.Msg
}
