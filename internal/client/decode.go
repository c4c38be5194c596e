package client

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"compress/zlib"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/htmlindex"
)

// decodeBody applies Content-Encoding decompression followed by charset
// decoding. Decompression and charset failures degrade to a best-effort
// result; the returned error describes the degradation and is only logged.
func decodeBody(headers map[string]string, raw []byte) (string, error) {
	body := raw
	var degraded error

	switch encoding := strings.ToLower(strings.TrimSpace(headerValue(headers, "Content-Encoding"))); encoding {
	case "", "identity":
	case "gzip":
		decompressed, err := gunzip(body)
		if err != nil {
			degraded = fmt.Errorf("body is not valid gzip: %w", err)
		} else {
			body = decompressed
		}
	case "deflate":
		decompressed, err := inflate(body)
		if err != nil {
			degraded = fmt.Errorf("body is not valid deflate: %w", err)
		} else {
			body = decompressed
		}
	default:
		degraded = fmt.Errorf("unsupported content encoding %q", encoding)
	}

	return decodeCharset(body, charsetFrom(headerValue(headers, "Content-Type"))), degraded
}

func gunzip(body []byte) ([]byte, error) {
	reader, err := gzip.NewReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer reader.Close()
	return io.ReadAll(reader)
}

func inflate(body []byte) ([]byte, error) {
	// Servers send deflate bodies both zlib-wrapped and raw.
	reader, err := zlib.NewReader(bytes.NewReader(body))
	if err == nil {
		defer reader.Close()
		return io.ReadAll(reader)
	}

	raw := flate.NewReader(bytes.NewReader(body))
	defer raw.Close()
	return io.ReadAll(raw)
}

// charsetFrom extracts the charset parameter from a Content-Type value.
func charsetFrom(contentType string) string {
	idx := strings.Index(strings.ToLower(contentType), "charset=")
	if idx == -1 {
		return "utf-8"
	}

	charset := contentType[idx+len("charset="):]
	if sep := strings.Index(charset, ";"); sep != -1 {
		charset = charset[:sep]
	}
	charset = strings.Trim(strings.TrimSpace(charset), `"'`)
	if charset == "" {
		return "utf-8"
	}
	return charset
}

// decodeCharset decodes body under the named charset, falling back to UTF-8
// with replacement runes for unknown charsets and undecodable sequences.
func decodeCharset(body []byte, charset string) string {
	name := strings.ToLower(charset)
	if name != "utf-8" && name != "utf8" && name != "us-ascii" && name != "ascii" {
		if enc, err := htmlindex.Get(name); err == nil {
			if decoded, err := enc.NewDecoder().Bytes(body); err == nil {
				return string(decoded)
			}
		}
	}

	if utf8.Valid(body) {
		return string(body)
	}
	return strings.ToValidUTF8(string(body), string(utf8.RuneError))
}
