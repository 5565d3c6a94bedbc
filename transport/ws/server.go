package ws

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"

	"chat-gateway/contract"
	"chat-gateway/domain"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The gateway sits behind the application's edge; origin policy is
	// enforced there.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Server accepts websocket upgrades and hands each connection to the gateway
// service through a Client adapter.
type Server struct {
	log            *slog.Logger
	service        contract.IGatewayService
	sendBufferSize int
	httpServer     *http.Server
}

func NewServer(log *slog.Logger, service contract.IGatewayService,
	addr string, sendBufferSize int) *Server {
	s := &Server{
		log:            log,
		service:        service,
		sendBufferSize: sendBufferSize,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleUpgrade)
	mux.HandleFunc("/healthz", handleHealth)
	// Callback hooks for the external login flow (scan confirmation and
	// identity confirmation), the counterpart of CompleteScan/CompleteLogin.
	mux.HandleFunc("/callback/scan", s.handleScanCallback)
	mux.HandleFunc("/callback/login", s.handleLoginCallback)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// ListenAndServe blocks until the server stops.
func (s *Server) ListenAndServe() error {
	s.log.Info("websocket server listening", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("websocket server: %w", err)
	}
	return nil
}

// Shutdown drains the HTTP listener; live connections end when their pumps
// observe the closed sockets.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleUpgrade(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "websocket endpoint only accepts GET", http.StatusMethodNotAllowed)
		return
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	client := NewClient(conn, s.service, r.RemoteAddr, s.sendBufferSize, s.log)
	go client.Serve()
}

func (s *Server) handleScanCallback(w http.ResponseWriter, r *http.Request) {
	code, ok := parseCode(w, r)
	if !ok {
		return
	}
	if err := s.service.CompleteScan(code); err != nil {
		// Unknown or expired code: the owning connection is gone or on
		// another node. Not an error worth more than a 404.
		http.Error(w, "code not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleLoginCallback(w http.ResponseWriter, r *http.Request) {
	code, ok := parseCode(w, r)
	if !ok {
		return
	}
	identity := domain.Identity(r.URL.Query().Get("uid"))
	if identity == "" {
		http.Error(w, "missing uid", http.StatusBadRequest)
		return
	}
	if err := s.service.CompleteLogin(r.Context(), code, identity); err != nil {
		http.Error(w, "code not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func parseCode(w http.ResponseWriter, r *http.Request) (domain.LoginCode, bool) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return 0, false
	}
	raw := r.URL.Query().Get("code")
	code, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || code <= 0 {
		http.Error(w, "invalid code", http.StatusBadRequest)
		return 0, false
	}
	return domain.LoginCode(code), true
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, _ = fmt.Fprint(w, "ok")
}
