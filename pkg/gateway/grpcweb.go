package gateway

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
)

// gRPC-Web shares the gRPC message framing (1 flag byte + 4 byte big-endian
// length) but travels over HTTP/1.1: trailers come back as one extra frame
// with the MSB of the flag byte set, and the -text variants base64 the whole
// body in each direction.
const (
	contentTypeGrpc        = "application/grpc"
	contentTypeGrpcWeb     = "application/grpc-web"
	contentTypeGrpcWebText = "application/grpc-web-text"

	trailerFrameFlag = 0x80
)

func isGrpcWeb(contentType string) bool {
	return strings.HasPrefix(contentType, contentTypeGrpcWeb)
}

func isGrpcWebText(contentType string) bool {
	return strings.HasPrefix(contentType, contentTypeGrpcWebText)
}

// serveGrpcWeb unwraps a gRPC-Web request, hands it to the gRPC server's
// HTTP handler, and re-wraps status trailers as a trailer frame.
func serveGrpcWeb(grpcHandler http.Handler, w http.ResponseWriter, r *http.Request) {
	contentType := r.Header.Get("Content-Type")
	text := isGrpcWebText(contentType)

	inner := r.Clone(r.Context())
	inner.Header.Set("Content-Type", grpcContentType(contentType))
	inner.Header.Del("Content-Length")
	inner.ContentLength = -1
	// the grpc server only accepts requests it believes arrived over h2
	inner.Proto, inner.ProtoMajor, inner.ProtoMinor = "HTTP/2.0", 2, 0
	if text {
		inner.Body = io.NopCloser(base64.NewDecoder(base64.StdEncoding, r.Body))
	}

	bridge := &grpcWebResponse{inner: w, contentType: contentType, text: text}
	grpcHandler.ServeHTTP(bridge, inner)
	bridge.finish()
}

// grpcContentType maps application/grpc-web[+-]* onto application/grpc*.
func grpcContentType(webType string) string {
	suffix := ""
	if cut := strings.Index(webType, "+"); cut >= 0 {
		suffix = webType[cut:]
	}
	return contentTypeGrpc + suffix
}

// grpcWebResponse rewrites the gRPC server's h2-style response into a
// gRPC-Web one: trailers become a final frame, -text bodies are base64.
type grpcWebResponse struct {
	inner       http.ResponseWriter
	contentType string
	text        bool

	wroteHeader bool
	body        io.Writer
	closeBody   func()
}

func (g *grpcWebResponse) Header() http.Header { return g.inner.Header() }

func (g *grpcWebResponse) WriteHeader(statusCode int) {
	if g.wroteHeader {
		return
	}
	g.wroteHeader = true
	header := g.inner.Header()
	header.Set("Content-Type", g.contentType)
	header.Del("Trailer")
	g.inner.WriteHeader(statusCode)
	if g.text {
		enc := base64.NewEncoder(base64.StdEncoding, g.inner)
		g.body, g.closeBody = enc, func() { _ = enc.Close() }
	} else {
		g.body = g.inner
	}
}

func (g *grpcWebResponse) Write(p []byte) (int, error) {
	if !g.wroteHeader {
		g.WriteHeader(http.StatusOK)
	}
	return g.body.Write(p)
}

func (g *grpcWebResponse) Flush() {
	if f, ok := g.inner.(http.Flusher); ok {
		f.Flush()
	}
}

// finish emits the collected trailers as a trailer frame. The gRPC server
// declares trailers with http.TrailerPrefix keys once the stream ends.
func (g *grpcWebResponse) finish() {
	trailers := make(http.Header)
	for key, values := range g.inner.Header() {
		if strings.HasPrefix(key, http.TrailerPrefix) {
			trailers[strings.TrimPrefix(key, http.TrailerPrefix)] = values
			delete(g.inner.Header(), key)
		}
	}
	if _, ok := trailers["Grpc-Status"]; !ok {
		trailers.Set("Grpc-Status", "0")
	}
	if !g.wroteHeader {
		g.WriteHeader(http.StatusOK)
	}
	_, _ = g.body.Write(encodeTrailerFrame(trailers))
	if g.closeBody != nil {
		g.closeBody()
	}
}

// encodeTrailerFrame renders trailers as a gRPC-Web trailer frame: the
// trailer flag, a 4 byte big-endian length, then `key: value\r\n` pairs
// with lower-case keys in deterministic order.
func encodeTrailerFrame(trailers http.Header) []byte {
	keys := make([]string, 0, len(trailers))
	for key := range trailers {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var payload bytes.Buffer
	for _, key := range keys {
		for _, value := range trailers[key] {
			fmt.Fprintf(&payload, "%s: %s\r\n", strings.ToLower(key), value)
		}
	}

	frame := make([]byte, 5, 5+payload.Len())
	frame[0] = trailerFrameFlag
	length := payload.Len()
	frame[1] = byte(length >> 24)
	frame[2] = byte(length >> 16)
	frame[3] = byte(length >> 8)
	frame[4] = byte(length)
	return append(frame, payload.Bytes()...)
}
