package notification

// Event names pushed over the stream.
const (
	EventConnected         = "connected"
	EventApplicationStatus = "application_status"
	EventPing              = "ping"
)

// SSEEvent is a single message delivered to a stream subscriber.
type SSEEvent struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// SSETokenResponse represents the SSE token response
type SSETokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
}
