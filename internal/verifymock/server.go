package verifymock

import (
	"context"
	"net/http"
	"time"

	"github.com/ecotrack-app/ecotrack/internal/logging"
)

type Server struct {
	Serv *http.Server
	log  logging.Logger
}

func NewServer(addr string, h *Handler, log logging.Logger) *Server {
	serv := &http.Server{
		Addr:         addr,
		Handler:      NewRouter(h),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return &Server{Serv: serv, log: log}
}

func (s *Server) Start(ctx context.Context, errCh chan<- error) {
	go func() {
		s.log.Info(ctx, "starting verification stub", "address", s.Serv.Addr)
		if err := s.Serv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info(ctx, "shutting down verification stub")

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	return s.Serv.Shutdown(shutdownCtx)
}
