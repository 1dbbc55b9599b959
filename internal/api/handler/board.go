package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordboard/internal/api/apierr"
	"github.com/mcoot/wordboard/internal/api/request"
	"github.com/mcoot/wordboard/internal/api/response"
	"github.com/mcoot/wordboard/internal/layout"
	"github.com/mcoot/wordboard/internal/model"
	"github.com/mcoot/wordboard/internal/services/board"
)

var commands = map[string]bool{
	layout.TargetClear:   true,
	layout.TargetGo:      true,
	layout.TargetDiscard: true,
	layout.TargetKeep:    true,
}

// BoardHandler handles board endpoints
type BoardHandler struct {
	board board.ControllerInterface
}

// NewBoardHandler creates a new board handler
func NewBoardHandler(b board.ControllerInterface) *BoardHandler {
	return &BoardHandler{board: b}
}

// Get handles GET /api/v1/board
func (h *BoardHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.writeBoard(w, r)
}

// Click handles POST /api/v1/board/click
func (h *BoardHandler) Click(w http.ResponseWriter, r *http.Request) {
	var req request.ClickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Invalid request body"))
		return
	}
	if req.Target == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("target is required"))
		return
	}

	if err := h.board.Click(r.Context(), req.Target); err != nil {
		apierr.WriteError(w, err)
		return
	}
	h.writeBoard(w, r)
}

// Key handles POST /api/v1/board/key
func (h *BoardHandler) Key(w http.ResponseWriter, r *http.Request) {
	var req request.KeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Invalid request body"))
		return
	}
	if req.Key == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("key is required"))
		return
	}

	if err := h.board.KeyDown(r.Context(), req.Key); err != nil {
		apierr.WriteError(w, err)
		return
	}
	h.writeBoard(w, r)
}

// Command handles POST /api/v1/board/{command}. With ?wait=true a go
// command responds once the best move has arrived.
func (h *BoardHandler) Command(w http.ResponseWriter, r *http.Request) {
	command := mux.Vars(r)["command"]
	if !commands[command] {
		apierr.WriteError(w, fmt.Errorf("%w: %q", model.ErrUnknownTarget, command))
		return
	}

	wait := false
	if raw := r.URL.Query().Get("wait"); raw != "" {
		var err error
		if wait, err = strconv.ParseBool(raw); err != nil {
			apierr.WriteError(w, apierr.NewInvalidRequestError("wait must be a boolean"))
			return
		}
	}

	if err := h.board.Click(r.Context(), command); err != nil {
		apierr.WriteError(w, err)
		return
	}
	if wait && command == layout.TargetGo {
		if err := h.board.WaitIdle(r.Context()); err != nil {
			apierr.WriteError(w, err)
			return
		}
	}
	h.writeBoard(w, r)
}

func (h *BoardHandler) writeBoard(w http.ResponseWriter, r *http.Request) {
	snap, err := h.board.Snapshot(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.BoardFromSnapshot(snap))
}
