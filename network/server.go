package network

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Server exposes the hub over HTTP
//
//	GET /ws      websocket spectator feed
//	GET /healthz liveness check
type Server struct {
	hub      *Hub
	upgrader websocket.Upgrader
	mux      *http.ServeMux
}

// NewServer wires the hub's HTTP routes
func NewServer(hub *Hub) *Server {
	s := &Server{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  hub.cfg.ReadBufferSize,
			WriteBufferSize: hub.cfg.WriteBufferSize,
			CheckOrigin: func(r *http.Request) bool {
				return true // Spectators are anonymous and read-only
			},
		},
		mux: http.NewServeMux(),
	}
	s.mux.HandleFunc("/ws", s.serveWS)
	s.mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "ok %d\n", hub.Count())
	})
	return s
}

// Handler returns the route multiplexer
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logrus.WithError(err).Warn("network: websocket upgrade failed")
		return
	}

	client := newClient(s.hub, conn)
	if !s.hub.join(client) {
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}

// ListenAndServe serves on addr until ctx is cancelled
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	logrus.WithField("addr", addr).Info("network: spectator feed listening")

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("spectator shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("spectator listen %s: %w", addr, err)
	}
}
