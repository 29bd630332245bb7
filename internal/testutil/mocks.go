package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/windoze95/movierec/internal/models"
)

// --- MockAPI ---

// MockAPI is a mock implementation of controller.API that counts calls.
type MockAPI struct {
	RegisterFunc          func(ctx context.Context, creds models.Credentials) (string, error)
	LoginFunc             func(ctx context.Context, creds models.Credentials) (*models.LoginResponse, error)
	SearchFunc            func(ctx context.Context, query string, page int) ([]models.Movie, error)
	AddRecommendationFunc func(ctx context.Context, token string, movieID int, comment string) error
	RecommendedMoviesFunc func(ctx context.Context) ([]models.Recommendation, error)

	mu    sync.Mutex
	calls map[string]int
}

func (m *MockAPI) record(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.calls == nil {
		m.calls = make(map[string]int)
	}
	m.calls[name]++
}

// Calls returns how many times the named method was called.
func (m *MockAPI) Calls(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[name]
}

// TotalCalls returns the number of calls across all methods.
func (m *MockAPI) TotalCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := 0
	for _, n := range m.calls {
		total += n
	}
	return total
}

func (m *MockAPI) Register(ctx context.Context, creds models.Credentials) (string, error) {
	m.record("Register")
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, creds)
	}
	return "", fmt.Errorf("Register not configured")
}

func (m *MockAPI) Login(ctx context.Context, creds models.Credentials) (*models.LoginResponse, error) {
	m.record("Login")
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, creds)
	}
	return nil, fmt.Errorf("Login not configured")
}

func (m *MockAPI) Search(ctx context.Context, query string, page int) ([]models.Movie, error) {
	m.record("Search")
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query, page)
	}
	return nil, fmt.Errorf("Search not configured")
}

func (m *MockAPI) AddRecommendation(ctx context.Context, token string, movieID int, comment string) error {
	m.record("AddRecommendation")
	if m.AddRecommendationFunc != nil {
		return m.AddRecommendationFunc(ctx, token, movieID, comment)
	}
	return fmt.Errorf("AddRecommendation not configured")
}

func (m *MockAPI) RecommendedMovies(ctx context.Context) ([]models.Recommendation, error) {
	m.record("RecommendedMovies")
	if m.RecommendedMoviesFunc != nil {
		return m.RecommendedMoviesFunc(ctx)
	}
	return nil, fmt.Errorf("RecommendedMovies not configured")
}

// --- RecordingNotifier ---

// RecordingNotifier collects alerts for inspection.
type RecordingNotifier struct {
	mu     sync.Mutex
	Alerts []string
}

func (n *RecordingNotifier) Alert(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Alerts = append(n.Alerts, message)
}

// Last returns the most recent alert, or "" if there was none.
func (n *RecordingNotifier) Last() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.Alerts) == 0 {
		return ""
	}
	return n.Alerts[len(n.Alerts)-1]
}
