package main

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/dfcsession/pkg/logger"
	"github.com/dmitrymomot/dfcsession/pkg/requestid"
	"github.com/dmitrymomot/dfcsession/pkg/session"
)

const maxBodySize = 1 << 16

type codeResponse struct {
	Code         string `json:"code"`
	PartitionKey string `json:"partitionKey,omitempty"`
	SessionID    string `json:"sessionId,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func newRouter(client *session.Client, log *slog.Logger) http.Handler {
	h := &handlers{client: client, log: log}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(client.Middleware)

	r.Get("/", h.alive)
	r.Post("/sessions", h.create)
	r.Get("/sessions/current", h.current)
	r.Post("/sessions/validate", h.validate)
	return r
}

type handlers struct {
	client *session.Client
	log    *slog.Logger
}

func (h *handlers) alive(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ALIVE"))
}

func (h *handlers) create(w http.ResponseWriter, r *http.Request) {
	s, err := h.client.NewSession()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "session could not be created"})
		return
	}
	if err := h.client.CreateCookie(w, s, false); err != nil {
		h.log.ErrorContext(r.Context(), "failed to write session cookie",
			logger.Handler("create"),
			logger.Error(err),
		)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "session could not be created"})
		return
	}

	h.log.InfoContext(r.Context(), "session created",
		logger.Handler("create"),
		logger.SessionID(s.SessionID),
		logger.PartitionKey(s.PartitionKey),
	)
	writeJSON(w, http.StatusCreated, s)
}

func (h *handlers) current(w http.ResponseWriter, r *http.Request) {
	code, ok := session.CodeFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: session.ErrSessionNotFound.Error()})
		return
	}

	resp := codeResponse{Code: code}
	resp.PartitionKey, resp.SessionID, _ = session.ParseCarrier(code)
	writeJSON(w, http.StatusOK, resp)
}

func (h *handlers) validate(w http.ResponseWriter, r *http.Request) {
	var s session.Session
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(&s); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid session record"})
		return
	}

	if err := h.client.CreateCookie(w, &s, true); err != nil {
		if errors.Is(err, session.ErrInvalidSession) {
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
			return
		}
		h.log.ErrorContext(r.Context(), "failed to write session cookie",
			logger.Handler("validate"),
			logger.Error(err),
		)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "session cookie could not be written"})
		return
	}

	writeJSON(w, http.StatusOK, &s)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
