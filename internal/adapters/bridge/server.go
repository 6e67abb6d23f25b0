package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/renato0307/tabstash/internal/domain"
	"github.com/renato0307/tabstash/internal/logging"
	"github.com/renato0307/tabstash/internal/ports"
)

const (
	shutdownTimeout = 5 * time.Second
	statusTimeout   = 2 * time.Second
)

// DialogStatusFunc reports whether a dialog window is open
type DialogStatusFunc func(ctx context.Context) (bool, error)

// Server exposes the host WebSocket endpoint and the dialog message channel
type Server struct {
	addr           string
	allowedOrigins []string
	dialogStatus   DialogStatusFunc
	host           *Host
	publisher      ports.EventPublisher
}

// NewServer creates a Server. Dialog messages are published to publisher as
// messageReceived events and answered through their reply callback.
func NewServer(addr string, allowedOrigins []string, host *Host, publisher ports.EventPublisher) *Server {
	return &Server{
		addr:           addr,
		allowedOrigins: allowedOrigins,
		host:           host,
		publisher:      publisher,
	}
}

// WithDialogStatus makes the health endpoint report the dialog state
func (s *Server) WithDialogStatus(fn DialogStatusFunc) *Server {
	s.dialogStatus = fn
	return s
}

// Handler returns the routed and CORS-wrapped HTTP handler
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()
	router.Handle("/host", s.host).Methods("GET")
	router.HandleFunc("/api/messages", s.handleMessage).Methods("POST")
	router.HandleFunc("/healthz", s.handleHealth).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins: s.allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(router)
}

// Serve listens until ctx is cancelled, then shuts down gracefully
func (s *Server) Serve(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	return s.ServeListener(ctx, listener)
}

// ServeListener serves on an existing listener until ctx is cancelled
func (s *Server) ServeListener(ctx context.Context, listener net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Logger.Info("Server listening", "address", listener.Addr().String())
		errCh <- srv.Serve(listener)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logging.Logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}

type healthResponse struct {
	Status        string `json:"status"`
	HostConnected bool   `json:"hostConnected"`
	DialogOpen    *bool  `json:"dialogOpen,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	health := healthResponse{Status: "ok", HostConnected: s.host.Connected()}
	if s.dialogStatus != nil {
		ctx, cancel := context.WithTimeout(r.Context(), statusTimeout)
		defer cancel()
		open, err := s.dialogStatus(ctx)
		if err != nil {
			logging.Logger.Warn("Failed to read dialog status", "error", err)
			health.Status = "degraded"
		} else {
			health.DialogOpen = &open
		}
	}
	writeJSON(w, http.StatusOK, health)
}

type reply struct {
	resp *domain.Response
	err  error
}

func (s *Server) handleMessage(w http.ResponseWriter, r *http.Request) {
	var req domain.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, domain.ErrorResponse("invalid request: "+err.Error()))
		return
	}
	if domain.GetActionByName(req.Action) == nil {
		writeJSON(w, http.StatusBadRequest, domain.ErrorResponse(fmt.Sprintf("%s: %q", domain.ErrUnknownAction, req.Action)))
		return
	}

	replies := make(chan reply, 1)
	s.publisher.Publish(domain.Event{
		Type: domain.EventMessageReceived,
		Payload: domain.MessageReceivedPayload{
			Request: req,
			// Only the first reply is used; later ones must not block the queue
			Reply: func(resp *domain.Response, err error) {
				select {
				case replies <- reply{resp: resp, err: err}:
				default:
				}
			},
		},
	})

	select {
	case rep := <-replies:
		switch {
		case errors.Is(rep.err, domain.ErrUnknownAction):
			writeJSON(w, http.StatusBadRequest, domain.ErrorResponse(rep.err.Error()))
		case rep.err != nil:
			writeJSON(w, http.StatusInternalServerError, domain.ErrorResponse(rep.err.Error()))
		case rep.resp == nil:
			w.WriteHeader(http.StatusNoContent)
		default:
			writeJSON(w, http.StatusOK, rep.resp)
		}
	case <-r.Context().Done():
		logging.Logger.Warn("Dialog request abandoned", "action", req.Action, "error", r.Context().Err())
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Logger.Warn("Failed to write response", "error", err)
	}
}
