package dto

// APIResponse is the uniform JSON envelope returned by every endpoint.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// AuthResponse is the envelope for login/validate responses. The session
// token itself travels only in the HTTP-only cookie, never in the body.
type AuthResponse struct {
	Success bool          `json:"success"`
	User    *PrincipalDTO `json:"user,omitempty"`
	Message string        `json:"message,omitempty"`
}

// NewMessageResponse creates a success envelope carrying only a message.
func NewMessageResponse(message string) APIResponse {
	return APIResponse{Success: true, Message: message}
}

// NewDataResponse creates a success envelope carrying a data payload.
func NewDataResponse(data interface{}) APIResponse {
	return APIResponse{Success: true, Data: data}
}

// NewErrorResponse creates a failure envelope with a display-safe message.
func NewErrorResponse(message string) APIResponse {
	return APIResponse{Success: false, Message: message}
}
