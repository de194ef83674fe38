package types

import "encoding/json"

// Response is the envelope used both by the upstream booking API and by this
// gateway's own endpoints: {success, message, data}.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// RawResponse is the decode-side counterpart of Response: Data is kept raw so
// callers can unmarshal it into the concrete collection type.
type RawResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// OK wraps data in a success envelope.
func OK(data interface{}) Response {
	return Response{Success: true, Data: data}
}

// Fail wraps a message in a failure envelope.
func Fail(message string) Response {
	return Response{Success: false, Message: message}
}
