package dto

import "time"

// ErrorResponse is the standard JSON body for every non-2xx response.
type ErrorResponse struct {
	Message      string    `json:"message" example:"failed to fetch stock data"`
	ErrorDetails string    `json:"error,omitempty" example:"dial tcp 127.0.0.1:5433: connect: connection refused"`
	Timestamp    time.Time `json:"timestamp" example:"2025-01-02T15:04:05Z"`
}

// Error implements the error interface so the response can travel through c.Error().
func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}

// NewErrorResponse builds an ErrorResponse stamped with the current UTC time.
// err may be nil.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{Message: message, Timestamp: time.Now().UTC()}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
