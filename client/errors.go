package client

// StatusError is the uniform failure for a response received with a status
// outside the 2xx range. Message is either the operation's fixed fallback
// or, for delete-attachment, the server-supplied detail.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return e.Message
}
