package client

import (
	"bytes"
	"sort"
	"strconv"
	"strings"

	"github.com/go2web/go2web/internal/urlutil"
)

// Request describes a single HTTP exchange to perform.
type Request struct {
	// Absolute http or https URL
	URL string

	// HTTP method, defaults to GET
	Method string

	// Caller headers. Names reserved for the engine (Host, User-Agent,
	// Connection, Content-Length) are ignored if supplied.
	Headers map[string]string

	// Optional request body
	Body []byte

	// Accept header value for content negotiation, empty = no Accept header
	Accept string

	// Whether 3xx responses with a Location header are followed
	FollowRedirects bool

	// Maximum redirect hops; 0 returns the first redirect unfollowed
	MaxRedirects int
}

// reservedHeaders are always set by the engine and never taken from the
// caller's header map.
var reservedHeaders = []string{"Host", "User-Agent", "Connection", "Accept", "Content-Length"}

func isReservedHeader(name string) bool {
	for _, r := range reservedHeaders {
		if strings.EqualFold(name, r) {
			return true
		}
	}
	return false
}

// buildWire serializes the request for target into HTTP/1.1 wire format:
// request line, mandatory headers, caller headers, blank line, body.
func buildWire(req *Request, target urlutil.Target, userAgent string) []byte {
	var buf bytes.Buffer

	method := req.Method
	if method == "" {
		method = "GET"
	}

	buf.WriteString(method)
	buf.WriteString(" ")
	buf.WriteString(target.Path)
	buf.WriteString(" HTTP/1.1\r\n")

	writeHeader(&buf, "Host", target.HostPort())
	writeHeader(&buf, "User-Agent", userAgent)
	writeHeader(&buf, "Connection", "close")
	if req.Accept != "" {
		writeHeader(&buf, "Accept", req.Accept)
	}

	// Caller headers in sorted order for a stable wire image.
	names := make([]string, 0, len(req.Headers))
	for name := range req.Headers {
		if !isReservedHeader(name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	for _, name := range names {
		writeHeader(&buf, name, req.Headers[name])
	}

	if len(req.Body) > 0 {
		writeHeader(&buf, "Content-Length", strconv.Itoa(len(req.Body)))
	}

	buf.WriteString("\r\n")
	buf.Write(req.Body)

	return buf.Bytes()
}

func writeHeader(buf *bytes.Buffer, name, value string) {
	buf.WriteString(name)
	buf.WriteString(": ")
	buf.WriteString(value)
	buf.WriteString("\r\n")
}
