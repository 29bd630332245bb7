// Package view holds the search cursor and the pure functions that turn API
// responses into descriptions of what the client should display.
package view

import (
	"fmt"

	"github.com/windoze95/movierec/internal/models"
)

// Messages shown to the user.
const (
	NoMoreResultsNotice   = "No more movies found."
	NoRecommendationsText = "No recommendations found."
	AddRecommendationText = "Add Recommendation"
	RecommendText         = "Recommend"
)

// State is the search cursor: the current query and the page it was last
// fetched at. Transitions return a new State.
type State struct {
	Query string
	Page  int
}

// NewState returns the cursor for a fresh page load.
func NewState() State {
	return State{Page: 1}
}

// WithQuery starts a new search, resetting the page to 1.
func (s State) WithQuery(query string) State {
	return State{Query: query, Page: 1}
}

// NextPage advances the cursor by one page.
func (s State) NextPage() State {
	return State{Query: s.Query, Page: s.Page + 1}
}

// Entry is one rendered movie with the action offered next to it.
type Entry struct {
	MovieID int
	Heading string
	Body    string
	Action  string
}

// SearchView describes the search results panel.
type SearchView struct {
	Entries         []Entry
	LoadMoreVisible bool
	// Notice is set when the fetched page was empty.
	Notice string
}

// Screen pairs the cursor with the panel it produced.
type Screen struct {
	State State
	View  SearchView
}

// NewScreen returns an empty search screen.
func NewScreen() Screen {
	return Screen{State: NewState()}
}

// RecommendationsView describes the recommended movies panel.
type RecommendationsView struct {
	Entries []Entry
	// Placeholder is shown instead of entries when the list is empty.
	Placeholder string
}

// RenderSearch renders one fetched page on top of prev. Page 1 replaces the
// displayed list, later pages append to it. An empty page hides the load
// more control and sets the no-more-results notice.
func RenderSearch(prev SearchView, page int, movies []models.Movie) SearchView {
	var entries []Entry
	if page != 1 {
		entries = make([]Entry, len(prev.Entries), len(prev.Entries)+len(movies))
		copy(entries, prev.Entries)
	}

	if len(movies) == 0 {
		return SearchView{
			Entries:         entries,
			LoadMoreVisible: false,
			Notice:          NoMoreResultsNotice,
		}
	}

	for _, m := range movies {
		entries = append(entries, Entry{
			MovieID: m.MovieID,
			Heading: movieHeading(m),
			Body:    m.Description,
			Action:  AddRecommendationText,
		})
	}
	return SearchView{Entries: entries, LoadMoreVisible: true}
}

// RenderRecommendations renders the full recommendation list, replacing
// whatever was shown before.
func RenderRecommendations(recs []models.Recommendation) RecommendationsView {
	if len(recs) == 0 {
		return RecommendationsView{Placeholder: NoRecommendationsText}
	}
	entries := make([]Entry, 0, len(recs))
	for _, r := range recs {
		entries = append(entries, Entry{
			MovieID: r.MovieID,
			Heading: r.Title,
			Body:    fmt.Sprintf("Recommendations: %d", r.RecommendationCount),
			Action:  RecommendText,
		})
	}
	return RecommendationsView{Entries: entries}
}

func movieHeading(m models.Movie) string {
	if m.Year == "" {
		return m.Title
	}
	return fmt.Sprintf("%s (%s)", m.Title, m.Year)
}
