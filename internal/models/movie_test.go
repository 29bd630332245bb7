package models

import (
	"encoding/json"
	"testing"
)

func TestMovieUnmarshal_MovieIDField(t *testing.T) {
	var m Movie
	if err := json.Unmarshal([]byte(`{"movie_id": 7, "title": "Heat", "description": "Crime", "year": "1995"}`), &m); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if m.MovieID != 7 {
		t.Errorf("MovieID = %d, want 7", m.MovieID)
	}
	if m.Year != "1995" {
		t.Errorf("Year = %q, want %q", m.Year, "1995")
	}
}

func TestMovieUnmarshal_IDFallback(t *testing.T) {
	var m Movie
	if err := json.Unmarshal([]byte(`{"id": 12, "title": "Alien"}`), &m); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if m.MovieID != 12 {
		t.Errorf("MovieID = %d, want 12", m.MovieID)
	}
}

func TestMovieUnmarshal_MovieIDWinsOverID(t *testing.T) {
	var m Movie
	if err := json.Unmarshal([]byte(`{"id": 1, "movie_id": 2}`), &m); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if m.MovieID != 2 {
		t.Errorf("MovieID = %d, want 2", m.MovieID)
	}
}

func TestMovieUnmarshal_NumericYear(t *testing.T) {
	var m Movie
	if err := json.Unmarshal([]byte(`{"title": "Batman", "year": 1989}`), &m); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if m.Year != "1989" {
		t.Errorf("Year = %q, want %q", m.Year, "1989")
	}
}

func TestMovieUnmarshal_UnknownYear(t *testing.T) {
	var m Movie
	if err := json.Unmarshal([]byte(`{"title": "Untitled", "year": "N/A"}`), &m); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if m.Year != "N/A" {
		t.Errorf("Year = %q, want %q", m.Year, "N/A")
	}
}

func TestMovieUnmarshal_InvalidYear(t *testing.T) {
	var m Movie
	if err := json.Unmarshal([]byte(`{"title": "Broken", "year": [1]}`), &m); err == nil {
		t.Error("Unmarshal with array year should return error")
	}
}

func TestMovieUnmarshal_List(t *testing.T) {
	var movies []Movie
	body := `[{"movie_id": 1, "title": "A"}, {"id": 2, "title": "B", "year": null}]`
	if err := json.Unmarshal([]byte(body), &movies); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if len(movies) != 2 {
		t.Fatalf("len = %d, want 2", len(movies))
	}
	if movies[1].MovieID != 2 || movies[1].Year != "" {
		t.Errorf("movies[1] = %+v, want MovieID 2 and empty year", movies[1])
	}
}
