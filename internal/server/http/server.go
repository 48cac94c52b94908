// Package http exposes the thin HTTP surface of the token service: refresh
// rotation, access-token verification, and a health probe. Login and other
// credential flows live elsewhere.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/avlearn/authkeeper/internal/logging"
	"github.com/avlearn/authkeeper/internal/server/services"
	"github.com/gin-gonic/gin"
)

type Server struct {
	address string
	logger  logging.Logger
	tokens  *services.TokenService
}

func NewServer(address string, l logging.Logger, ts *services.TokenService) *Server {
	return &Server{
		address: address,
		logger:  l.With("module", "http_server"),
		tokens:  ts,
	}
}

func (s *Server) router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", s.health)

	v1 := r.Group("/api/v1/auth")
	v1.POST("/refresh-token", s.refreshToken)
	v1.GET("/verify", s.verifyToken)

	return r
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
