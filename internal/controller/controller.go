// Package controller turns user actions into API calls and view updates.
package controller

import (
	"context"
	"errors"

	"github.com/windoze95/movierec/internal/models"
	"github.com/windoze95/movierec/internal/session"
)

var (
	// ErrNotLoggedIn is returned when an authenticated action is attempted
	// without a stored session token. No request is sent.
	ErrNotLoggedIn = errors.New("not logged in")
	// ErrStale is returned when a response arrives after a newer request
	// for the same operation was started. The response is dropped.
	ErrStale = errors.New("response superseded by a newer request")
	// ErrNoToken is returned when the backend accepted the login request
	// but did not issue a token.
	ErrNoToken = errors.New("login response carried no access token")
	// ErrInvalidPage is returned for page numbers below 1.
	ErrInvalidPage = errors.New("page must be at least 1")
)

const (
	opSearch          = "search"
	opRecommendations = "recommendations"
)

// User-facing alerts.
const (
	MsgNotLoggedIn         = "You are not logged in."
	MsgSearchFailed        = "Failed to load movies."
	MsgRecommendationAdded = "Recommendation added!"
	MsgAddFailed           = "Failed to add recommendation."
	MsgAddError            = "An error occurred while adding the recommendation."
	MsgSessionExpired      = "Your session has expired. Please log in again."
	MsgLoadRecsFailed      = "Failed to load recommended movies."
	MsgLoginFailed         = "Login failed. Please check your credentials."
	MsgLoggedIn            = "Logged in."
	MsgLoggedOut           = "Logged out."
	MsgRegisterFailed      = "Registration failed. Please try again."
	MsgRegistered          = "User registered successfully."
)

// API is the subset of the backend the controller depends on.
type API interface {
	Register(ctx context.Context, creds models.Credentials) (string, error)
	Login(ctx context.Context, creds models.Credentials) (*models.LoginResponse, error)
	Search(ctx context.Context, query string, page int) ([]models.Movie, error)
	AddRecommendation(ctx context.Context, token string, movieID int, comment string) error
	RecommendedMovies(ctx context.Context) ([]models.Recommendation, error)
}

// Notifier shows a short message to the user.
type Notifier interface {
	Alert(message string)
}

// Controller is the search-and-recommend controller.
type Controller struct {
	API      API
	Tokens   session.TokenStore
	Notifier Notifier
	seq      *Sequencer
}

// NewController is the constructor function for initializing a new Controller.
func NewController(api API, tokens session.TokenStore, notifier Notifier) *Controller {
	return &Controller{
		API:      api,
		Tokens:   tokens,
		Notifier: notifier,
		seq:      NewSequencer(),
	}
}

func (c *Controller) alert(message string) {
	if c.Notifier != nil {
		c.Notifier.Alert(message)
	}
}
