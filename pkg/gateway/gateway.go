// Package gateway is the HTTP front door of the platform. One listener
// carries three protocols: native gRPC is passed through to the gRPC
// server, gRPC-Web is unwrapped in front of it, and REST calls are
// translated to unary RPCs through per-method route templates.
package gateway

import (
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"github.com/spacemonkeygo/monkit/v3"
	"github.com/zeebo/errs"
	"go.uber.org/zap"
)

var (
	mon = monkit.Package()

	// Error is the gateway error class.
	Error = errs.Class("gateway error")
)

// Redirect rewrites one exact path to another location.
type Redirect struct {
	Source string `yaml:"source"`
	Target string `yaml:"target"`
	Status int    `yaml:"status"`
}

// CustomRoute proxies a path prefix to an external HTTP target.
type CustomRoute struct {
	Prefix string `yaml:"prefix"`
	Target string `yaml:"target"`
}

// Config is the gateway section of the platform config.
type Config struct {
	ApiPrefix string        `yaml:"apiPrefix"`
	Redirects []Redirect    `yaml:"redirects"`
	Routes    []CustomRoute `yaml:"routes"`
}

type customProxy struct {
	prefix string
	proxy  *httputil.ReverseProxy
}

// Gateway dispatches inbound HTTP requests across the protocols it fronts.
type Gateway struct {
	log          *zap.Logger
	grpcHandler  http.Handler
	grpcServices []string
	rest         restTranslator
	redirects    map[string]Redirect
	proxies      []customProxy
}

// New assembles a gateway. grpcHandler is the gRPC server's HTTP handler,
// grpcServices the fully qualified names it serves, and restMethods the
// translated REST routes (already carrying the api prefix).
func New(log *zap.Logger, config Config, grpcHandler http.Handler, grpcServices []string, restMethods ...[]RestMethod) (*Gateway, error) {
	g := &Gateway{
		log:          log,
		grpcHandler:  grpcHandler,
		grpcServices: grpcServices,
		rest:         restTranslator{log: log},
		redirects:    make(map[string]Redirect),
	}
	for _, methods := range restMethods {
		g.rest.methods = append(g.rest.methods, methods...)
	}
	for _, redirect := range config.Redirects {
		if redirect.Source == "" || redirect.Target == "" {
			return nil, Error.New("redirect needs both source and target")
		}
		if redirect.Status == 0 {
			redirect.Status = http.StatusFound
		}
		g.redirects[redirect.Source] = redirect
	}
	for _, route := range config.Routes {
		target, err := url.Parse(route.Target)
		if err != nil || target.Scheme == "" || target.Host == "" {
			return nil, Error.New("custom route %q has invalid target %q", route.Prefix, route.Target)
		}
		g.proxies = append(g.proxies, customProxy{
			prefix: route.Prefix,
			proxy:  httputil.NewSingleHostReverseProxy(target),
		})
	}
	return g, nil
}

// ServeHTTP routes one request: redirects first, then protocol dispatch by
// content type, then the REST route table, then custom proxies.
func (g *Gateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	defer mon.Task()(&ctx)(nil)

	if redirect, ok := g.redirects[r.URL.Path]; ok {
		http.Redirect(w, r, redirect.Target, redirect.Status)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if g.matchesGrpcService(r.URL.Path) {
		switch {
		case isGrpcWeb(contentType):
			serveGrpcWeb(g.grpcHandler, w, r)
			return
		case strings.HasPrefix(contentType, contentTypeGrpc):
			g.grpcHandler.ServeHTTP(w, r)
			return
		}
	}

	if method, fields, methodMismatch := g.rest.match(r); method != nil {
		g.rest.serve(w, r, method, fields)
		return
	} else if methodMismatch {
		writeRestError(w, http.StatusMethodNotAllowed, "INVALID_ARGUMENT", "method not allowed")
		return
	}

	for _, p := range g.proxies {
		if strings.HasPrefix(r.URL.Path, p.prefix) {
			p.proxy.ServeHTTP(w, r)
			return
		}
	}

	writeRestError(w, http.StatusNotFound, "NOT_FOUND", "no route for "+r.URL.Path)
}

func (g *Gateway) matchesGrpcService(path string) bool {
	for _, service := range g.grpcServices {
		if strings.HasPrefix(path, "/"+service+"/") {
			return true
		}
	}
	return false
}
