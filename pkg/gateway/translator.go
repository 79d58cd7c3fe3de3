package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"reflect"

	"go.uber.org/zap"
	"google.golang.org/grpc/status"

	"tracd.io/tracd/pkg/rpcstatus"
)

// maxRestBody bounds a REST request body; metadata payloads are small and
// bulk content travels over the streaming data API instead.
const maxRestBody = 16 << 20

// RestMethod binds one HTTP method and path template to one unary RPC.
// Path captures are coerced into the request message; for methods with a
// body, the JSON body unmarshals into the whole request or into the subfield
// named by BodyField. The response message is returned as JSON.
type RestMethod struct {
	HttpMethod string
	Template   *Template
	HasBody    bool
	BodyField  string
	// Defaults are field assignments applied before path captures, for
	// routes whose shape implies values the URL does not carry.
	Defaults   map[string]string
	NewRequest func() interface{}
	Invoke     func(ctx context.Context, req interface{}) (interface{}, error)
}

type restTranslator struct {
	log     *zap.Logger
	methods []RestMethod
}

// match finds the method for a request, or nil. A path that matches a
// template under the wrong HTTP method reports methodMismatch so the router
// can answer 405 instead of 404.
func (t *restTranslator) match(r *http.Request) (m *RestMethod, fields map[string]string, methodMismatch bool) {
	for i := range t.methods {
		f, ok := t.methods[i].Template.Match(r.URL.Path)
		if !ok {
			continue
		}
		if t.methods[i].HttpMethod != r.Method {
			methodMismatch = true
			continue
		}
		return &t.methods[i], f, false
	}
	return nil, nil, methodMismatch
}

func (t *restTranslator) serve(w http.ResponseWriter, r *http.Request, m *RestMethod, fields map[string]string) {
	req := m.NewRequest()

	if m.HasBody {
		body, err := io.ReadAll(io.LimitReader(r.Body, maxRestBody))
		if err != nil {
			writeRestError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "request body could not be read")
			return
		}
		target := req
		if m.BodyField != "" {
			target, err = subfieldTarget(req, m.BodyField)
			if err != nil {
				t.log.Error("bad route body field", zap.String("field", m.BodyField), zap.Error(err))
				writeRestError(w, http.StatusInternalServerError, "INTERNAL", "internal server error")
				return
			}
		}
		if len(body) > 0 {
			if err := json.Unmarshal(body, target); err != nil {
				writeRestError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "invalid request body: "+err.Error())
				return
			}
		}
	}

	for field, value := range m.Defaults {
		if err := setRequestField(req, field, value); err != nil {
			t.log.Error("bad route default", zap.String("field", field), zap.Error(err))
			writeRestError(w, http.StatusInternalServerError, "INTERNAL", "internal server error")
			return
		}
	}

	// path captures bind after the body so the URL always wins
	for field, value := range fields {
		if err := setRequestField(req, field, value); err != nil {
			writeRestError(w, http.StatusBadRequest, "INVALID_ARGUMENT", err.Error())
			return
		}
	}

	resp, err := m.Invoke(r.Context(), req)
	if err != nil {
		code := rpcstatus.GrpcCode(err)
		msg := err.Error()
		if s, ok := status.FromError(err); ok {
			msg = s.Message()
		}
		writeRestError(w, rpcstatus.HTTPStatus(code), code.String(), msg)
		return
	}

	out, err := json.Marshal(resp)
	if err != nil {
		t.log.Error("response marshal failed", zap.Error(err))
		writeRestError(w, http.StatusInternalServerError, "INTERNAL", "internal server error")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}

// subfieldTarget resolves the body field to a freshly allocated nested
// message pointer inside req.
func subfieldTarget(req interface{}, name string) (interface{}, error) {
	v := reflect.ValueOf(req).Elem()
	field, ok := fieldByProtoName(v, name)
	if !ok {
		return nil, ErrCoerce.New("no field %q in %s", name, v.Type())
	}
	if field.Kind() != reflect.Ptr || field.Type().Elem().Kind() != reflect.Struct {
		return nil, ErrCoerce.New("field %q is not a message", name)
	}
	if field.IsNil() {
		field.Set(reflect.New(field.Type().Elem()))
	}
	return field.Interface(), nil
}

type restError struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func writeRestError(w http.ResponseWriter, httpStatus int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)
	_ = json.NewEncoder(w).Encode(restError{Status: code, Message: message})
}
