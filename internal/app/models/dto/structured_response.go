package dto

import "time"

// StructuredResponse is the envelope of every API response.
type StructuredResponse struct {
	Success   bool         `json:"success" example:"true"`
	Message   string       `json:"message" example:"You have successfully added a new department."`
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// NewStructuredResponse creates a standard structured API response
func NewStructuredResponse(data interface{}, message string) StructuredResponse {
	return StructuredResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// Choice is a selectable option in an assignment form.
type Choice struct {
	ID    int64  `json:"id" example:"1"`
	Label string `json:"label" example:"Computer Science"`
}
