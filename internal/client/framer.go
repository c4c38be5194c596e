package client

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// headerBodySeparator marks the end of the header block.
var headerBodySeparator = []byte("\r\n\r\n")

// framedResponse is the raw split of a response buffer before any content
// decoding.
type framedResponse struct {
	statusLine string
	statusCode int
	headers    map[string]string
	body       []byte
}

// frame splits an accumulated response buffer at the first CRLFCRLF and
// decodes the status line and header fields. Duplicate header names
// overwrite earlier values; name case is preserved as received.
func frame(raw []byte) (*framedResponse, error) {
	boundary := bytes.Index(raw, headerBodySeparator)
	if boundary == -1 {
		return nil, fmt.Errorf("missing header/body boundary")
	}

	headerBlock := string(raw[:boundary])
	body := raw[boundary+len(headerBodySeparator):]

	lines := strings.Split(headerBlock, "\r\n")
	statusLine := lines[0]

	parts := strings.Fields(statusLine)
	if len(parts) < 2 {
		return nil, fmt.Errorf("malformed status line %q", statusLine)
	}
	statusCode, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil, fmt.Errorf("non-numeric status code in %q", statusLine)
	}

	headers := make(map[string]string, len(lines)-1)
	for _, line := range lines[1:] {
		idx := strings.Index(line, ":")
		if idx == -1 {
			continue
		}
		key := strings.TrimSpace(line[:idx])
		if key == "" {
			continue
		}
		value := strings.TrimSpace(line[idx+1:])
		headers[key] = value
	}

	return &framedResponse{
		statusLine: statusLine,
		statusCode: statusCode,
		headers:    headers,
		body:       body,
	}, nil
}

// headerValue looks up a header by case-insensitive name.
func headerValue(headers map[string]string, name string) string {
	for key, value := range headers {
		if strings.EqualFold(key, name) {
			return value
		}
	}
	return ""
}
