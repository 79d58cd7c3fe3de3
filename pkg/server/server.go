// Package server assembles the process's RPC surfaces: one gRPC listener
// for the platform APIs and an optional HTTP listener fronted by the
// gateway handler.
package server

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/spacemonkeygo/monkit/v3"
	"github.com/zeebo/errs"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
)

var (
	mon = monkit.Package()

	// Error is the server assembly error class.
	Error = errs.Class("server error")
)

const shutdownGrace = 15 * time.Second

// Server owns the process listeners and the gRPC server instance.
// Services register on GRPC() before Run is called.
type Server struct {
	log  *zap.Logger
	grpc *grpc.Server

	grpcListener net.Listener
	httpListener net.Listener
	httpServer   *http.Server
}

// New binds the configured listeners and builds the gRPC server with the
// standard interceptor chain. An empty GrpcAddress makes an HTTP-only
// server; the gRPC instance still exists so the gateway can bridge to it.
func New(log *zap.Logger, config Config) (*Server, error) {
	var grpcListener net.Listener
	var err error
	if config.GrpcAddress != "" {
		grpcListener, err = net.Listen("tcp", config.GrpcAddress)
		if err != nil {
			return nil, Error.Wrap(err)
		}
	}

	server := &Server{
		log: log,
		grpc: grpc.NewServer(
			grpc.ChainUnaryInterceptor(
				unaryRecoveryInterceptor(log),
				unaryLogInterceptor(log),
				unaryMonkitInterceptor(),
			),
			grpc.ChainStreamInterceptor(
				streamRecoveryInterceptor(log),
				streamLogInterceptor(log),
			),
		),
		grpcListener: grpcListener,
	}

	if config.HttpAddress != "" {
		server.httpListener, err = net.Listen("tcp", config.HttpAddress)
		if err != nil {
			if grpcListener != nil {
				err = errs.Combine(err, grpcListener.Close())
			}
			return nil, Error.Wrap(err)
		}
	}
	if grpcListener == nil && server.httpListener == nil {
		return nil, Error.New("server needs at least one listen address")
	}
	return server, nil
}

// GRPC returns the gRPC server for service registration.
func (s *Server) GRPC() *grpc.Server { return s.grpc }

// SetHandler installs the HTTP handler, normally the gateway. It must be
// called before Run when an HTTP listener is configured.
func (s *Server) SetHandler(handler http.Handler) {
	s.httpServer = &http.Server{Handler: handler}
}

// Addr returns the bound gRPC address, or nil when gRPC is disabled.
func (s *Server) Addr() net.Addr {
	if s.grpcListener == nil {
		return nil
	}
	return s.grpcListener.Addr()
}

// HTTPAddr returns the bound HTTP address, or nil when HTTP is disabled.
func (s *Server) HTTPAddr() net.Addr {
	if s.httpListener == nil {
		return nil
	}
	return s.httpListener.Addr()
}

// Run serves until ctx is cancelled, then drains in-flight calls.
func (s *Server) Run(ctx context.Context) (err error) {
	defer mon.Task()(&ctx)(&err)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var group errgroup.Group
	group.Go(func() error {
		<-ctx.Done()

		graceful := make(chan struct{})
		go func() {
			s.grpc.GracefulStop()
			close(graceful)
		}()
		select {
		case <-graceful:
		case <-time.After(shutdownGrace):
			s.grpc.Stop()
		}

		if s.httpServer != nil {
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownGrace)
			defer shutdownCancel()
			_ = s.httpServer.Shutdown(shutdownCtx)
		}
		return nil
	})

	if s.grpcListener != nil {
		group.Go(func() error {
			defer cancel()
			err := s.grpc.Serve(s.grpcListener)
			if err == grpc.ErrServerStopped {
				return nil
			}
			return Error.Wrap(err)
		})
	}

	if s.httpListener != nil {
		if s.httpServer == nil {
			return Error.New("http listener configured without a handler")
		}
		group.Go(func() error {
			defer cancel()
			err := s.httpServer.Serve(s.httpListener)
			if err == http.ErrServerClosed {
				return nil
			}
			return Error.Wrap(err)
		})
	}

	return group.Wait()
}

// Close releases the listeners for a server that never ran.
func (s *Server) Close() error {
	s.grpc.Stop()
	var err error
	if s.grpcListener != nil {
		err = s.grpcListener.Close()
	}
	if s.httpListener != nil {
		err = errs.Combine(err, s.httpListener.Close())
	}
	return err
}
