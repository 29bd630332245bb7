package testutil

import (
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/windoze95/movierec/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// FakeBackendSecret signs the tokens issued by FakeBackend.
const FakeBackendSecret = "test-secret-key-for-jwt-signing"

// FakeBackend is an in-memory stand-in for the movie recommendation API.
// It answers the same routes with the same status codes and bodies.
type FakeBackend struct {
	PageSize int

	mu         sync.Mutex
	movies     []models.Movie
	users      map[string][]byte
	counts     map[int]int
	comments   map[int][]string
	hits       map[string]int
	requestIDs []string
}

// NewFakeBackend creates a backend serving movies, two results per page.
func NewFakeBackend(movies []models.Movie) *FakeBackend {
	return &FakeBackend{
		PageSize: 2,
		movies:   movies,
		users:    make(map[string][]byte),
		counts:   make(map[int]int),
		comments: make(map[int][]string),
		hits:     make(map[string]int),
	}
}

// Start serves the backend until the test ends and returns its base URL.
func (b *FakeBackend) Start(t testing.TB) string {
	t.Helper()
	srv := httptest.NewServer(b.Router())
	t.Cleanup(srv.Close)
	return srv.URL
}

// Router builds the gin engine for the backend.
func (b *FakeBackend) Router() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(b.requestIDMiddleware())

	r.POST("/register", b.register)
	r.POST("/login", b.login)
	r.GET("/search", b.search)
	r.POST("/add_recommendation", verifyTokenMiddleware(), b.addRecommendation)
	r.GET("/recommended_movies", b.recommendedMovies)
	return r
}

// Hits returns how many requests reached path.
func (b *FakeBackend) Hits(path string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hits[path]
}

// RequestIDs returns the X-Request-ID of every request seen, in order.
func (b *FakeBackend) RequestIDs() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.requestIDs...)
}

// Count returns the recommendation count of movieID.
func (b *FakeBackend) Count(movieID int) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.counts[movieID]
}

// Comments returns the comments left with recommendations of movieID.
func (b *FakeBackend) Comments(movieID int) []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.comments[movieID]...)
}

// IssueToken signs an access token for username, as /login would.
func IssueToken(username string, expiry time.Time) string {
	claims := jwt.MapClaims{
		"sub":  username,
		"exp":  expiry.Unix(),
		"iat":  time.Now().Unix(),
		"type": "access",
	}
	s, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(FakeBackendSecret))
	return s
}

// requestIDMiddleware keeps the caller's X-Request-ID, or generates one,
// and echoes it in the response.
func (b *FakeBackend) requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		b.mu.Lock()
		b.hits[c.Request.URL.Path]++
		b.requestIDs = append(b.requestIDs, requestID)
		b.mu.Unlock()

		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// verifyTokenMiddleware verifies the JWT token provided in the Authorization header.
func verifyTokenMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Missing Authorization Header"})
			c.Abort()
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(FakeBackendSecret), nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"msg": "Invalid or expired token"})
			c.Abort()
			return
		}

		if tokenType, ok := claims["type"].(string); !ok || tokenType != "access" {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"msg": "Invalid token type"})
			c.Abort()
			return
		}

		sub, _ := claims["sub"].(string)
		c.Set("identity", sub)
		c.Next()
	}
}

func (b *FakeBackend) register(c *gin.Context) {
	var creds models.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil || creds.Username == "" || creds.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password are required"})
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if _, exists := b.users[creds.Username]; exists {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username already exists"})
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.MinCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred"})
		return
	}
	b.users[creds.Username] = hash
	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully."})
}

func (b *FakeBackend) login(c *gin.Context) {
	var creds models.Credentials
	_ = c.ShouldBindJSON(&creds)

	b.mu.Lock()
	hash, ok := b.users[creds.Username]
	b.mu.Unlock()

	if !ok || bcrypt.CompareHashAndPassword(hash, []byte(creds.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "Bad username or password"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"access_token": IssueToken(creds.Username, time.Now().Add(15*time.Minute))})
}

func (b *FakeBackend) search(c *gin.Context) {
	query := strings.ToLower(c.Query("query"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing query parameter"})
		return
	}
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	b.mu.Lock()
	var matches []models.Movie
	for _, m := range b.movies {
		if strings.Contains(strings.ToLower(m.Title), query) {
			matches = append(matches, m)
		}
	}
	b.mu.Unlock()

	start := (page - 1) * b.PageSize
	if start >= len(matches) {
		c.JSON(http.StatusNotFound, gin.H{"message": "No movies found"})
		return
	}
	end := start + b.PageSize
	if end > len(matches) {
		end = len(matches)
	}
	c.JSON(http.StatusOK, matches[start:end])
}

func (b *FakeBackend) addRecommendation(c *gin.Context) {
	var req models.AddRecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.findMovieUnlocked(req.MovieID); !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred"})
		return
	}
	b.counts[req.MovieID]++
	if req.Comment != "" {
		b.comments[req.MovieID] = append(b.comments[req.MovieID], req.Comment)
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Recommendation added successfully"})
}

func (b *FakeBackend) recommendedMovies(c *gin.Context) {
	b.mu.Lock()
	recs := []models.Recommendation{}
	for id, n := range b.counts {
		m, _ := b.findMovieUnlocked(id)
		recs = append(recs, models.Recommendation{
			MovieID:             id,
			Title:               m.Title,
			Description:         m.Description,
			RecommendationCount: n,
		})
	}
	b.mu.Unlock()

	sort.Slice(recs, func(i, j int) bool {
		if recs[i].RecommendationCount != recs[j].RecommendationCount {
			return recs[i].RecommendationCount > recs[j].RecommendationCount
		}
		return recs[i].MovieID < recs[j].MovieID
	})
	c.JSON(http.StatusOK, recs)
}

func (b *FakeBackend) findMovieUnlocked(id int) (models.Movie, bool) {
	for _, m := range b.movies {
		if m.MovieID == id {
			return m, true
		}
	}
	return models.Movie{}, false
}
