package client

import (
	"testing"

	ast "github.com/go2web/go2web/internal/testing"
)

func TestFrameBasicResponse(t *testing.T) {
	raw := []byte("HTTP/1.1 200 OK\r\nContent-Type: text/plain\r\n\r\nhello")

	framed, err := frame(raw)
	ast.MustNotFail(t, err)

	ast.Assert(t, framed.statusCode).Named("status").Equals(200)
	ast.Assert(t, framed.statusLine).Equals("HTTP/1.1 200 OK")
	ast.AssertMap(t, framed.headers).HasValue("Content-Type", "text/plain")
	ast.Assert(t, string(framed.body)).Equals("hello")
}

func TestFrameMissingBoundary(t *testing.T) {
	_, err := frame([]byte("HTTP/1.1 200 OK\r\nContent-Type: text/plain\r\n"))
	ast.MustFail(t, err)
}

func TestFrameMalformedStatusLine(t *testing.T) {
	_, err := frame([]byte("HTTP/1.1\r\n\r\n"))
	ast.MustFail(t, err)

	_, err = frame([]byte("HTTP/1.1 abc OK\r\n\r\n"))
	ast.MustFail(t, err)
}

func TestFrameDuplicateHeadersLastWins(t *testing.T) {
	raw := []byte("HTTP/1.1 200 OK\r\nX-Value: first\r\nX-Value: second\r\n\r\n")

	framed, err := frame(raw)
	ast.MustNotFail(t, err)
	ast.AssertMap(t, framed.headers).HasValue("X-Value", "second")
}

func TestFramePreservesHeaderCaseAndTrimsValues(t *testing.T) {
	raw := []byte("HTTP/1.1 404 Not Found\r\ncontent-TYPE:   text/html  \r\n\r\nbody")

	framed, err := frame(raw)
	ast.MustNotFail(t, err)

	ast.Assert(t, framed.statusCode).Equals(404)
	ast.AssertMap(t, framed.headers).HasValue("content-TYPE", "text/html")
	ast.Assert(t, headerValue(framed.headers, "Content-Type")).Equals("text/html")
}

func TestFrameHeaderValueSplitsOnFirstColon(t *testing.T) {
	raw := []byte("HTTP/1.1 200 OK\r\nLocation: http://example.com/next\r\n\r\n")

	framed, err := frame(raw)
	ast.MustNotFail(t, err)
	ast.AssertMap(t, framed.headers).HasValue("Location", "http://example.com/next")
}

func TestFrameSkipsHeaderLineWithEmptyName(t *testing.T) {
	raw := []byte("HTTP/1.1 200 OK\r\n: orphan\r\nContent-Type: text/plain\r\n\r\n")

	framed, err := frame(raw)
	ast.MustNotFail(t, err)
	ast.Assert(t, framed.headers).HasLength(1)
	ast.AssertMap(t, framed.headers).HasValue("Content-Type", "text/plain")
}

func TestFrameEmptyBody(t *testing.T) {
	framed, err := frame([]byte("HTTP/1.1 204 No Content\r\n\r\n"))
	ast.MustNotFail(t, err)
	ast.Assert(t, string(framed.body)).IsEmpty()
}
