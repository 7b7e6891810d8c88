package user

import "github.com/google/uuid"

// RegisterRequest is the payload for creating a user
type RegisterRequest struct {
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required"`
	Gender      string `json:"gender"`
	Displayname string `json:"displayname"`
	ProfileImg  string `json:"profileImg"`
}

// UpdateRequest is the payload for a partial profile update. Only fields
// present in the request body with a non-empty value are applied.
type UpdateRequest struct {
	Displayname *string `json:"displayname"`
	Password    *string `json:"password"`
	ProfileImg  *string `json:"profileImg"`
}

// LoginRequest is the payload for authenticating a user
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Profile is the public projection of a user returned to any caller.
// Credentials and internal fields are never part of it.
type Profile struct {
	Displayname string      `json:"displayname"`
	ProfileImg  string      `json:"profileImg"`
	VideoList   []uuid.UUID `json:"videoList"`
}

// LoginUser is the user fragment of a successful login response
type LoginUser struct {
	Displayname string `json:"displayname"`
	ProfileImg  string `json:"profileImg"`
}

// LoginSuccessResponse is the body of a successful login
type LoginSuccessResponse struct {
	Result string    `json:"result"`
	Token  string    `json:"token"`
	User   LoginUser `json:"user"`
}

// LoginFailureResponse is the body of a failed login. Failure is signaled
// in-body with HTTP 200, not via status code.
type LoginFailureResponse struct {
	Result string `json:"result"`
	Reason string `json:"reason"`
}

// UpdatedUser is the user fragment echoed after a profile update
type UpdatedUser struct {
	DisplayName string `json:"displayName"`
	Password    string `json:"password"`
	ProfilePic  string `json:"profilePic"`
}

// UpdateResponse is the body returned after a profile update
type UpdateResponse struct {
	Message string      `json:"message"`
	User    UpdatedUser `json:"user"`
}
