package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Movie is a single search result returned by the backend.
type Movie struct {
	MovieID     int    `json:"movie_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Year        string `json:"year"`
}

// UnmarshalJSON accepts either "movie_id" or "id" for the movie identifier,
// and a year sent as a number or as a string such as "N/A".
func (m *Movie) UnmarshalJSON(data []byte) error {
	var raw struct {
		MovieID     *int            `json:"movie_id"`
		ID          *int            `json:"id"`
		Title       string          `json:"title"`
		Description string          `json:"description"`
		Year        json.RawMessage `json:"year"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	m.Title = raw.Title
	m.Description = raw.Description
	m.MovieID = 0
	if raw.MovieID != nil {
		m.MovieID = *raw.MovieID
	} else if raw.ID != nil {
		m.MovieID = *raw.ID
	}

	year, err := decodeYear(raw.Year)
	if err != nil {
		return fmt.Errorf("movie %q: %w", raw.Title, err)
	}
	m.Year = year
	return nil
}

func decodeYear(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var n int
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("invalid year %s", string(raw))
	}
	return strconv.Itoa(n), nil
}

// Recommendation is a movie together with how many times it was recommended.
type Recommendation struct {
	MovieID             int    `json:"movie_id"`
	Title               string `json:"title"`
	Description         string `json:"description"`
	RecommendationCount int    `json:"recommendation_count"`
}
