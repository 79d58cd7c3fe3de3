package gateway

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc/codes"

	"tracd.io/tracd/pkg/pb"
	"tracd.io/tracd/pkg/rpcstatus"
)

func TestTemplateParse(t *testing.T) {
	testCases := []struct {
		pattern string
		valid   bool
	}{
		{"/v1/{tenant}/create-object", true},
		{"/v1/{tenant}/{selector.object_type}/{selector.object_id}", true},
		{"/static/{path=**}", true},
		{"/tenants", true},
		{"no-leading-slash", false},
		{"/v1/{}", false},
		{"/v1/{a=*}", false},
		{"/v1/{unbalanced", false},
		{"/v1//double", false},
	}

	for _, tc := range testCases {
		_, err := ParseTemplate(tc.pattern)
		if tc.valid {
			assert.NoError(t, err, tc.pattern)
		} else {
			assert.Error(t, err, tc.pattern)
		}
	}
}

func TestTemplateMatch(t *testing.T) {
	testCases := []struct {
		pattern string
		path    string
		ok      bool
		fields  map[string]string
	}{
		{
			pattern: "/v1/{tenant}/read-object",
			path:    "/v1/ACME/read-object",
			ok:      true,
			fields:  map[string]string{"tenant": "ACME"},
		},
		{
			pattern: "/v1/{tenant}/read-object",
			path:    "/v1/ACME/read-object/extra",
			ok:      false,
		},
		{
			pattern: "/v1/{tenant}/read-object",
			path:    "/v1/ACME/search",
			ok:      false,
		},
		{
			pattern: "/v1/{tenant}/{selector.object_type}/{selector.object_id}",
			path:    "/v1/ACME/DATA/abc-123",
			ok:      true,
			fields: map[string]string{
				"tenant":               "ACME",
				"selector.object_type": "DATA",
				"selector.object_id":   "abc-123",
			},
		},
		{
			// captures are URL-decoded
			pattern: "/v1/{tenant}/files/{name}",
			path:    "/v1/ACME/files/hello%20world.txt",
			ok:      true,
			fields:  map[string]string{"tenant": "ACME", "name": "hello world.txt"},
		},
		{
			// wildcard capture keeps slashes
			pattern: "/static/{path=**}",
			path:    "/static/css/site/main.css",
			ok:      true,
			fields:  map[string]string{"path": "css/site/main.css"},
		},
		{
			pattern: "/static/{path=**}",
			path:    "/static/",
			ok:      false,
		},
		{
			pattern: "/v1/{tenant}/read-object",
			path:    "/v1//read-object",
			ok:      false,
		},
	}

	for _, tc := range testCases {
		template, err := ParseTemplate(tc.pattern)
		require.NoError(t, err, tc.pattern)

		fields, ok := template.Match(tc.path)
		assert.Equal(t, tc.ok, ok, "%s vs %s", tc.pattern, tc.path)
		if tc.ok {
			assert.Equal(t, tc.fields, fields, "%s vs %s", tc.pattern, tc.path)
		}
	}
}

func TestSetRequestField(t *testing.T) {
	t.Run("string and nested allocation", func(t *testing.T) {
		req := new(pb.MetadataReadRequest)
		require.NoError(t, setRequestField(req, "tenant", "ACME"))
		require.NoError(t, setRequestField(req, "selector.object_id", "abc-123"))
		assert.Equal(t, "ACME", req.Tenant)
		require.NotNil(t, req.Selector)
		assert.Equal(t, "abc-123", req.Selector.ObjectId)
	})

	t.Run("enum by name is case-insensitive", func(t *testing.T) {
		req := new(pb.MetadataReadRequest)
		require.NoError(t, setRequestField(req, "selector.object_type", "data"))
		assert.Equal(t, pb.ObjectType_DATA, req.Selector.ObjectType)
	})

	t.Run("unknown enum name", func(t *testing.T) {
		req := new(pb.MetadataReadRequest)
		err := setRequestField(req, "selector.object_type", "NOT_A_TYPE")
		assert.True(t, ErrCoerce.Has(err))
	})

	t.Run("selector versions land in criteria", func(t *testing.T) {
		req := new(pb.MetadataReadRequest)
		require.NoError(t, setRequestField(req, "selector.object_version", "3"))
		require.NoError(t, setRequestField(req, "selector.tag_version", "2"))
		assert.Equal(t, int32(3), req.Selector.GetObjectVersion())
		assert.Equal(t, int32(2), req.Selector.GetTagVersion())
	})

	t.Run("latest criteria", func(t *testing.T) {
		req := new(pb.MetadataReadRequest)
		require.NoError(t, setRequestField(req, "selector.latest_object", "true"))
		require.NoError(t, setRequestField(req, "selector.latest_tag", "true"))
		assert.True(t, req.Selector.GetLatestObject())
		assert.True(t, req.Selector.GetLatestTag())
	})

	t.Run("bad int", func(t *testing.T) {
		req := new(pb.MetadataReadRequest)
		err := setRequestField(req, "selector.object_version", "three")
		assert.True(t, ErrCoerce.Has(err))
	})

	t.Run("unknown field", func(t *testing.T) {
		req := new(pb.MetadataReadRequest)
		err := setRequestField(req, "no_such_field", "x")
		assert.True(t, ErrCoerce.Has(err))
	})
}

func TestHTTPStatusMap(t *testing.T) {
	testCases := []struct {
		code   codes.Code
		status int
	}{
		{codes.OK, http.StatusOK},
		{codes.Unauthenticated, http.StatusUnauthorized},
		{codes.PermissionDenied, http.StatusForbidden},
		{codes.InvalidArgument, http.StatusBadRequest},
		{codes.NotFound, http.StatusNotFound},
		{codes.AlreadyExists, http.StatusConflict},
		{codes.FailedPrecondition, http.StatusPreconditionFailed},
		{codes.Unimplemented, http.StatusNotImplemented},
		{codes.Unavailable, http.StatusServiceUnavailable},
		{codes.DeadlineExceeded, http.StatusGatewayTimeout},
		{codes.Internal, http.StatusInternalServerError},
		{codes.DataLoss, http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.status, rpcstatus.HTTPStatus(tc.code), tc.code.String())
	}
}

// fakeMetadataApi answers the public metadata surface with canned data and
// records the last request of each shape.
type fakeMetadataApi struct {
	pb.TracMetadataApiServer

	lastRead   *pb.MetadataReadRequest
	lastSearch *pb.MetadataSearchRequest
	readErr    error
}

func (f *fakeMetadataApi) ReadObject(ctx context.Context, req *pb.MetadataReadRequest) (*pb.Tag, error) {
	f.lastRead = req
	if f.readErr != nil {
		return nil, f.readErr
	}
	return &pb.Tag{
		Header: &pb.TagHeader{
			ObjectType:    req.Selector.ObjectType,
			ObjectId:      req.Selector.ObjectId,
			ObjectVersion: req.Selector.GetObjectVersion(),
			TagVersion:    req.Selector.GetTagVersion(),
		},
	}, nil
}

func (f *fakeMetadataApi) Search(ctx context.Context, req *pb.MetadataSearchRequest) (*pb.MetadataSearchResponse, error) {
	f.lastSearch = req
	return &pb.MetadataSearchResponse{}, nil
}

func newTestGateway(t *testing.T, api *fakeMetadataApi, config Config, grpcHandler http.Handler) *Gateway {
	t.Helper()
	gw, err := New(zaptest.NewLogger(t), config, grpcHandler,
		[]string{"tracd.metadata.TracMetadataApi"},
		MetadataRoutes("/trac-meta/api/v1", api))
	require.NoError(t, err)
	return gw
}

func TestRestReadObjectByPath(t *testing.T) {
	api := &fakeMetadataApi{}
	gw := newTestGateway(t, api, Config{}, http.NotFoundHandler())

	rec := httptest.NewRecorder()
	gw.ServeHTTP(rec, httptest.NewRequest("GET",
		"/trac-meta/api/v1/ACME/data/abc-123/versions/3/tags/2", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, api.lastRead)
	assert.Equal(t, "ACME", api.lastRead.Tenant)
	assert.Equal(t, pb.ObjectType_DATA, api.lastRead.Selector.ObjectType)
	assert.Equal(t, "abc-123", api.lastRead.Selector.ObjectId)
	assert.Equal(t, int32(3), api.lastRead.Selector.GetObjectVersion())
	assert.Equal(t, int32(2), api.lastRead.Selector.GetTagVersion())

	var tag pb.Tag
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tag))
	assert.Equal(t, "abc-123", tag.Header.ObjectId)
}

func TestRestReadObjectLatest(t *testing.T) {
	api := &fakeMetadataApi{}
	gw := newTestGateway(t, api, Config{}, http.NotFoundHandler())

	rec := httptest.NewRecorder()
	gw.ServeHTTP(rec, httptest.NewRequest("GET",
		"/trac-meta/api/v1/ACME/FILE/abc-123/latest", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, api.lastRead)
	assert.True(t, api.lastRead.Selector.GetLatestObject())
	assert.True(t, api.lastRead.Selector.GetLatestTag())
}

func TestRestReadObjectBody(t *testing.T) {
	api := &fakeMetadataApi{}
	gw := newTestGateway(t, api, Config{}, http.NotFoundHandler())

	body := `{"object_type": "SCHEMA", "object_id": "s-1", "object_version": 1, "latest_tag": true}`
	rec := httptest.NewRecorder()
	gw.ServeHTTP(rec, httptest.NewRequest("POST",
		"/trac-meta/api/v1/ACME/read-object", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, api.lastRead)
	assert.Equal(t, "ACME", api.lastRead.Tenant)
	assert.Equal(t, pb.ObjectType_SCHEMA, api.lastRead.Selector.ObjectType)
	assert.Equal(t, int32(1), api.lastRead.Selector.GetObjectVersion())
	assert.True(t, api.lastRead.Selector.GetLatestTag())
}

func TestRestSearchBodyField(t *testing.T) {
	api := &fakeMetadataApi{}
	gw := newTestGateway(t, api, Config{}, http.NotFoundHandler())

	body := `{
		"object_type": "DATA",
		"search": {"term": {
			"attr_name": "region",
			"attr_type": "STRING",
			"operator": "EQ",
			"search_value": {"type": "STRING", "string_value": "EU"}
		}}
	}`
	rec := httptest.NewRecorder()
	gw.ServeHTTP(rec, httptest.NewRequest("POST",
		"/trac-meta/api/v1/ACME/search", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, api.lastSearch)
	assert.Equal(t, "ACME", api.lastSearch.Tenant)
	require.NotNil(t, api.lastSearch.SearchParams)
	assert.Equal(t, pb.ObjectType_DATA, api.lastSearch.SearchParams.ObjectType)
	term := api.lastSearch.SearchParams.Search.GetTerm()
	require.NotNil(t, term)
	assert.Equal(t, "region", term.AttrName)
	assert.Equal(t, pb.SearchOperator_EQ, term.Operator)
	assert.Equal(t, "EU", term.SearchValue.GetStringValue())
}

func TestRestErrorMapping(t *testing.T) {
	testCases := []struct {
		err    error
		status int
		code   string
	}{
		{rpcstatus.ToGrpc(rpcstatus.Error(rpcstatus.NotFound, "no such object")), http.StatusNotFound, "NotFound"},
		{rpcstatus.ToGrpc(rpcstatus.Error(rpcstatus.FailedPrecondition, "schema mismatch")), http.StatusPreconditionFailed, "FailedPrecondition"},
		{rpcstatus.ToGrpc(rpcstatus.Error(rpcstatus.InvalidArgument, "bad selector")), http.StatusBadRequest, "InvalidArgument"},
	}

	for _, tc := range testCases {
		api := &fakeMetadataApi{readErr: tc.err}
		gw := newTestGateway(t, api, Config{}, http.NotFoundHandler())

		rec := httptest.NewRecorder()
		gw.ServeHTTP(rec, httptest.NewRequest("GET",
			"/trac-meta/api/v1/ACME/DATA/abc/versions/1/tags/1", nil))

		assert.Equal(t, tc.status, rec.Code, tc.code)
		var restErr restError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &restErr))
		assert.Equal(t, tc.code, restErr.Status)
	}
}

func TestRestBadPathField(t *testing.T) {
	api := &fakeMetadataApi{}
	gw := newTestGateway(t, api, Config{}, http.NotFoundHandler())

	rec := httptest.NewRecorder()
	gw.ServeHTTP(rec, httptest.NewRequest("GET",
		"/trac-meta/api/v1/ACME/DATA/abc/versions/three/tags/1", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, api.lastRead)
}

func TestRestMethodNotAllowed(t *testing.T) {
	gw := newTestGateway(t, &fakeMetadataApi{}, Config{}, http.NotFoundHandler())

	rec := httptest.NewRecorder()
	gw.ServeHTTP(rec, httptest.NewRequest("DELETE",
		"/trac-meta/api/v1/ACME/read-object", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRestNotFound(t *testing.T) {
	gw := newTestGateway(t, &fakeMetadataApi{}, Config{}, http.NotFoundHandler())

	rec := httptest.NewRecorder()
	gw.ServeHTTP(rec, httptest.NewRequest("GET", "/nowhere", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRedirect(t *testing.T) {
	config := Config{Redirects: []Redirect{
		{Source: "/", Target: "/docs", Status: http.StatusMovedPermanently},
	}}
	gw := newTestGateway(t, &fakeMetadataApi{}, config, http.NotFoundHandler())

	rec := httptest.NewRecorder()
	gw.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/docs", rec.Header().Get("Location"))
}

func TestGrpcWebUnwrap(t *testing.T) {
	// the inner handler stands in for the gRPC server: it checks the
	// unwrapped request and answers with one message frame plus trailers
	var gotContentType, gotProto string
	var gotBody []byte
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotProto = r.Proto
		gotBody, _ = io.ReadAll(r.Body)

		w.Header().Set("Content-Type", "application/grpc+proto")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte{0, 0, 0, 0, 2, 0xCA, 0xFE})
		w.Header().Set(http.TrailerPrefix+"Grpc-Status", "0")
		w.Header().Set(http.TrailerPrefix+"Grpc-Message", "")
	})

	gw := newTestGateway(t, &fakeMetadataApi{}, Config{}, inner)

	frame := []byte{0, 0, 0, 0, 3, 1, 2, 3}
	req := httptest.NewRequest("POST",
		"/tracd.metadata.TracMetadataApi/ReadObject", bytes.NewReader(frame))
	req.Header.Set("Content-Type", "application/grpc-web+proto")

	rec := httptest.NewRecorder()
	gw.ServeHTTP(rec, req)

	assert.Equal(t, "application/grpc+proto", gotContentType)
	assert.Equal(t, "HTTP/2.0", gotProto)
	assert.Equal(t, frame, gotBody)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/grpc-web+proto", rec.Header().Get("Content-Type"))

	body := rec.Body.Bytes()
	require.Greater(t, len(body), 7)
	assert.Equal(t, []byte{0, 0, 0, 0, 2, 0xCA, 0xFE}, body[:7])

	// the rest of the body is the trailer frame
	trailer := body[7:]
	require.Greater(t, len(trailer), 5)
	assert.Equal(t, byte(trailerFrameFlag), trailer[0])
	length := int(trailer[1])<<24 | int(trailer[2])<<16 | int(trailer[3])<<8 | int(trailer[4])
	require.Equal(t, length, len(trailer)-5)
	assert.Contains(t, string(trailer[5:]), "grpc-status: 0\r\n")
}

func TestGrpcWebTextUnwrap(t *testing.T) {
	var gotBody []byte
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte{0, 0, 0, 0, 1, 0xAB})
		w.Header().Set(http.TrailerPrefix+"Grpc-Status", "0")
	})

	gw := newTestGateway(t, &fakeMetadataApi{}, Config{}, inner)

	frame := []byte{0, 0, 0, 0, 2, 9, 9}
	encoded := base64.StdEncoding.EncodeToString(frame)
	req := httptest.NewRequest("POST",
		"/tracd.metadata.TracMetadataApi/ReadObject", strings.NewReader(encoded))
	req.Header.Set("Content-Type", "application/grpc-web-text+proto")

	rec := httptest.NewRecorder()
	gw.ServeHTTP(rec, req)

	assert.Equal(t, frame, gotBody)
	require.Equal(t, http.StatusOK, rec.Code)

	decoded, err := base64.StdEncoding.DecodeString(rec.Body.String())
	require.NoError(t, err)
	require.Greater(t, len(decoded), 6)
	assert.Equal(t, []byte{0, 0, 0, 0, 1, 0xAB}, decoded[:6])
	assert.Equal(t, byte(trailerFrameFlag), decoded[6])
}

func TestEncodeTrailerFrame(t *testing.T) {
	trailers := http.Header{}
	trailers.Set("Grpc-Status", "5")
	trailers.Set("Grpc-Message", "not found")

	frame := encodeTrailerFrame(trailers)
	require.Greater(t, len(frame), 5)
	assert.Equal(t, byte(trailerFrameFlag), frame[0])

	payload := string(frame[5:])
	assert.Equal(t, "grpc-message: not found\r\ngrpc-status: 5\r\n", payload)
	length := int(frame[1])<<24 | int(frame[2])<<16 | int(frame[3])<<8 | int(frame[4])
	assert.Equal(t, len(payload), length)
}

func TestCustomRouteProxy(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("upstream: " + r.URL.Path))
	}))
	defer upstream.Close()

	config := Config{Routes: []CustomRoute{{Prefix: "/docs/", Target: upstream.URL}}}
	gw := newTestGateway(t, &fakeMetadataApi{}, config, http.NotFoundHandler())

	rec := httptest.NewRecorder()
	gw.ServeHTTP(rec, httptest.NewRequest("GET", "/docs/intro.html", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "upstream: /docs/intro.html", rec.Body.String())
}
