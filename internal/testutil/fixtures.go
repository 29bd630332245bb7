package testutil

import (
	"time"

	"github.com/windoze95/movierec/internal/models"
)

// TestMovies returns a small catalog with several matches for "batman".
func TestMovies() []models.Movie {
	return []models.Movie{
		{MovieID: 1, Title: "Batman", Description: "The Dark Knight of Gotham City begins his war on crime.", Year: "1989"},
		{MovieID: 2, Title: "Batman Returns", Description: "Batman faces the Penguin and Catwoman.", Year: "1992"},
		{MovieID: 3, Title: "Batman Forever", Description: "Batman battles Two-Face and the Riddler.", Year: "1995"},
		{MovieID: 4, Title: "Alien", Description: "In space no one can hear you scream.", Year: "1979"},
		{MovieID: 5, Title: "Heat", Description: "A group of professional bank robbers.", Year: "1995"},
	}
}

// TestRecommendations returns a recommendation list matching TestMovies.
func TestRecommendations() []models.Recommendation {
	return []models.Recommendation{
		{MovieID: 4, Title: "Alien", Description: "In space no one can hear you scream.", RecommendationCount: 3},
		{MovieID: 1, Title: "Batman", Description: "The Dark Knight of Gotham City begins his war on crime.", RecommendationCount: 1},
	}
}

// FarFuture is an expiry that outlives any test run.
func FarFuture() time.Time {
	return time.Now().Add(24 * time.Hour)
}
