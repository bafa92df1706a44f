package model

// WebSocket message types
const (
	WSMessageTypePreview = "preview"
	WSMessageTypeResult  = "result"
	WSMessageTypeError   = "error"
	WSMessageTypePing    = "ping"
	WSMessageTypePong    = "pong"
)

// WSMessage represents a generic WebSocket message
type WSMessage struct {
	Type string `json:"type"`
}

// WSPreviewMessage carries a form snapshot from the browser
type WSPreviewMessage struct {
	Type string     `json:"type"`
	Seq  int        `json:"seq"`
	Form *FormInput `json:"form"`
}

// WSResultMessage carries the rendered preview back
type WSResultMessage struct {
	Type      string            `json:"type"`
	SessionID string            `json:"sessionId"`
	Seq       int               `json:"seq"`
	Result    *GenerateResponse `json:"result"`
}

// WSErrorMessage represents an error
type WSErrorMessage struct {
	Type      string  `json:"type"`
	SessionID string  `json:"sessionId"`
	Error     WSError `json:"error"`
}

// WSError represents error details
type WSError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
