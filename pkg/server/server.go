package server

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"
)

type Server struct {
	http.Server
	Logger *logrus.Logger
}

func (s *Server) ListenAndServe() {
	s.Logger.WithField("address", s.Addr).Info("http server is listening")

	if err := s.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.Logger.WithError(err).Fatal("http server stopped unexpectedly")
	}
}

func (s *Server) Shutdown(ctx context.Context) {
	s.Logger.Info("http server is shutting down")

	if err := s.Server.Shutdown(ctx); err != nil {
		s.Logger.WithError(err).Error("http server shutdown failed")
	}
}
