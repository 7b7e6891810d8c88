package http

// MessageResponse is the standard message-only response body
type MessageResponse struct {
	Message string `json:"message"`
}

// ExistsResponse is the body of the username existence check
type ExistsResponse struct {
	Exists bool `json:"exists"`
}

// LoginResult values used in the login response body
const (
	LoginResultSuccess = "Success"
	LoginResultFailure = "Failure"
)
