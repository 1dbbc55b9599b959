package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordboard/internal/layout"
	"github.com/mcoot/wordboard/internal/model"
	"github.com/mcoot/wordboard/internal/services/board"
	"github.com/mcoot/wordboard/internal/web/sse"
)

// BoardHandler serves the board page and its interactions
type BoardHandler struct {
	board  board.ControllerInterface
	hub    *sse.Hub
	logger *slog.Logger
}

// NewBoardHandler creates a new BoardHandler
func NewBoardHandler(b board.ControllerInterface, hub *sse.Hub, logger *slog.Logger) *BoardHandler {
	return &BoardHandler{
		board:  b,
		hub:    hub,
		logger: logger,
	}
}

// Page renders the whole board page
func (h *BoardHandler) Page(w http.ResponseWriter, r *http.Request) {
	html, err := h.board.Render(r.Context(), "")
	if err != nil {
		h.logger.Error("failed to render page", slog.Any("error", err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeHTML(w, http.StatusOK, html)
}

// Click handles a click on a cell or command and returns the board region
func (h *BoardHandler) Click(w http.ResponseWriter, r *http.Request) {
	target := mux.Vars(r)["target"]
	h.respond(w, r, h.board.Click(r.Context(), target))
}

// Key handles a key press and returns the board region
func (h *BoardHandler) Key(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	h.respond(w, r, h.board.KeyDown(r.Context(), key))
}

// Events streams board updates over SSE
func (h *BoardHandler) Events(w http.ResponseWriter, r *http.Request) {
	html, err := h.board.Render(r.Context(), layout.RegionBoard)
	if err != nil {
		h.logger.Error("failed to render board", slog.Any("error", err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	sse.ServeSSE(w, r, h.hub, sse.FormatEvent(sse.EventBoard, html))
}

// respond writes the board region with a status matching actionErr. A
// rejected action still returns the board so the page stays in sync.
func (h *BoardHandler) respond(w http.ResponseWriter, r *http.Request, actionErr error) {
	status := http.StatusOK
	switch {
	case actionErr == nil:
	case errors.Is(actionErr, model.ErrUnknownTarget):
		status = http.StatusNotFound
	case errors.Is(actionErr, model.ErrRequestInFlight):
		status = http.StatusConflict
	default:
		h.logger.Error("board action failed", slog.Any("error", actionErr))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	html, err := h.board.Render(r.Context(), layout.RegionBoard)
	if err != nil {
		h.logger.Error("failed to render board", slog.Any("error", err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeHTML(w, status, html)
}

func writeHTML(w http.ResponseWriter, status int, html string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(html))
}
