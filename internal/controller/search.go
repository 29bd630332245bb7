package controller

import (
	"context"
	"fmt"

	"github.com/windoze95/movierec/internal/logger"
	"github.com/windoze95/movierec/internal/view"
	"go.uber.org/zap"
)

// Search fetches page of query and renders it on top of screen. On success
// the returned screen carries the new cursor and panel; on any error the
// input screen is returned unchanged.
func (c *Controller) Search(ctx context.Context, screen view.Screen, query string, page int) (view.Screen, error) {
	if page < 1 {
		return screen, ErrInvalidPage
	}

	seq := c.seq.Next(opSearch)
	log := logger.With(zap.String("query", query), zap.Int("page", page), zap.Uint64("seq", seq))
	log.Debug("searching movies")

	movies, err := c.API.Search(ctx, query, page)
	if !c.seq.IsLatest(opSearch, seq) {
		log.Debug("discarding stale search response")
		return screen, ErrStale
	}
	if err != nil {
		log.Error("failed to search movies", zap.Error(err))
		c.alert(MsgSearchFailed)
		return screen, fmt.Errorf("search %q page %d: %w", query, page, err)
	}

	next := view.Screen{
		State: view.State{Query: query, Page: page},
		View:  view.RenderSearch(screen.View, page, movies),
	}
	if next.View.Notice != "" {
		c.alert(next.View.Notice)
	}
	return next, nil
}

// NewSearch starts a search for query from the first page.
func (c *Controller) NewSearch(ctx context.Context, screen view.Screen, query string) (view.Screen, error) {
	st := screen.State.WithQuery(query)
	return c.Search(ctx, screen, st.Query, st.Page)
}

// LoadMore fetches the page after the one screen currently shows.
func (c *Controller) LoadMore(ctx context.Context, screen view.Screen) (view.Screen, error) {
	st := screen.State.NextPage()
	return c.Search(ctx, screen, st.Query, st.Page)
}
