package server

// errorResponse is the body for every error reply: {"error": "<message>"}.
type errorResponse struct {
	Error string `json:"error"`
}
