package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/windoze95/movierec/internal/apiclient"
	"github.com/windoze95/movierec/internal/logger"
	"github.com/windoze95/movierec/internal/view"
	"go.uber.org/zap"
)

// AddRecommendation recommends movieID as the logged in user, with an
// optional comment, and on success reloads the recommendation list.
func (c *Controller) AddRecommendation(ctx context.Context, movieID int, comment string) (view.RecommendationsView, error) {
	log := logger.With(zap.Int("movie_id", movieID))

	token, err := c.Tokens.Load()
	if err != nil {
		log.Error("failed to read session token", zap.Error(err))
		c.alert(MsgNotLoggedIn)
		return view.RecommendationsView{}, fmt.Errorf("%w: %v", ErrNotLoggedIn, err)
	}
	if token == "" {
		c.alert(MsgNotLoggedIn)
		return view.RecommendationsView{}, ErrNotLoggedIn
	}

	log.Debug("adding recommendation")
	if err := c.API.AddRecommendation(ctx, token, movieID, comment); err != nil {
		log.Error("failed to add recommendation", zap.Error(err))
		// the stored token is kept; only a new login replaces it
		var apiErr *apiclient.APIError
		switch {
		case apiclient.IsUnauthorized(err):
			c.alert(MsgSessionExpired)
		case errors.As(err, &apiErr):
			c.alert(MsgAddFailed)
		default:
			c.alert(MsgAddError)
		}
		return view.RecommendationsView{}, fmt.Errorf("add recommendation %d: %w", movieID, err)
	}

	c.alert(MsgRecommendationAdded)
	return c.LoadRecommendedMovies(ctx)
}

// LoadRecommendedMovies fetches the full recommendation list and renders it.
func (c *Controller) LoadRecommendedMovies(ctx context.Context) (view.RecommendationsView, error) {
	seq := c.seq.Next(opRecommendations)
	log := logger.With(zap.Uint64("seq", seq))

	recs, err := c.API.RecommendedMovies(ctx)
	if !c.seq.IsLatest(opRecommendations, seq) {
		log.Debug("discarding stale recommendations response")
		return view.RecommendationsView{}, ErrStale
	}
	if err != nil {
		log.Error("failed to load recommended movies", zap.Error(err))
		c.alert(MsgLoadRecsFailed)
		return view.RecommendationsView{}, fmt.Errorf("load recommended movies: %w", err)
	}
	return view.RenderRecommendations(recs), nil
}
