package fetch

import "net/http"

// Request describes one outbound exchange addressed by host, port, and
// path. A nil Body means GET semantics; a non-nil Body means POST with the
// session's fixed JSON-oriented headers applied.
type Request struct {
	// Method is the HTTP method. Get and Post fill this in.
	Method string
	// Host is the target host, without port or scheme.
	Host string
	// Port is the target port.
	Port int
	// Path is the request path. Leading slashes are stripped before the
	// target string is assembled.
	Path string
	// Body is the outbound payload. Nil means no body is sent.
	Body []byte
}

// Response is the completed result of one exchange. It is produced even
// for non-2xx completions; callers must inspect StatusCode rather than
// assume a present body implies success.
type Response struct {
	// StatusCode is the raw HTTP status code.
	StatusCode int
	// Headers are the response headers, flattened to single values.
	Headers map[string]string
	// Body is the accumulated response body, owned by the caller. It may
	// be empty on any status.
	Body []byte
}

// IsSuccess returns true if the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IsError returns true if the status code is 4xx or 5xx.
func (r *Response) IsError() bool {
	return r.StatusCode >= 400
}

// flattenHeaders converts multi-value headers to single-value.
func flattenHeaders(h http.Header) map[string]string {
	result := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			result[k] = v[0]
		}
	}
	return result
}
