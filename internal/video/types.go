package video

// CreateRequest is the payload for creating a video
type CreateRequest struct {
	Title    string `json:"title"`
	VideoURL string `json:"videoUrl"`
	Image    string `json:"image"`
}

// HasRequiredFields reports whether all mandatory fields are present
func (r CreateRequest) HasRequiredFields() bool {
	return r.Title != "" && r.VideoURL != "" && r.Image != ""
}

// UpdateRequest is the payload for a partial video update. Only fields
// present in the request body with a non-empty value are applied.
type UpdateRequest struct {
	Title    *string `json:"title"`
	VideoURL *string `json:"videoUrl"`
	Image    *string `json:"image"`
}

// DeleteResponse is the body returned after a successful delete
type DeleteResponse struct {
	Message string `json:"message"`
	VideoID string `json:"videoId"`
}

// CreateErrorResponse is the body returned when video creation fails.
// It echoes the underlying error detail, which the other handlers do not.
type CreateErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}
