package models

// Credentials is the request body for both /register and /login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the body returned by /login. The backend sends
// access_token on success and msg when the credentials are rejected.
type LoginResponse struct {
	AccessToken string `json:"access_token,omitempty"`
	Msg         string `json:"msg,omitempty"`
}

// MessageResponse is the generic {"message": ...} body used by the backend.
type MessageResponse struct {
	Message string `json:"message"`
}

// AddRecommendationRequest is the request body for /add_recommendation.
type AddRecommendationRequest struct {
	MovieID int    `json:"movie_id"`
	Comment string `json:"comment,omitempty"`
}
