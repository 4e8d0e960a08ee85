package httpclient

import (
	"context"
	"io"
)

// HTTPRequest describes a request to perform.
type HTTPRequest struct {
	Context context.Context
	Method  string
	URL     string
	Headers map[string]string
	Body    io.Reader
}

// HTTPResponse is a fully-read response.
type HTTPResponse struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
}

// IsSuccess reports whether the status code is in the 2xx range.
func (r *HTTPResponse) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}
