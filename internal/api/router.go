package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordboard/internal/api/handler"
	"github.com/mcoot/wordboard/internal/api/middleware"
	"github.com/mcoot/wordboard/internal/api/response"
	"github.com/mcoot/wordboard/internal/dependencies/random"
	"github.com/mcoot/wordboard/internal/services/board"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger *slog.Logger
	Random random.Random
	Board  board.ControllerInterface
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	boardHandler := handler.NewBoardHandler(cfg.Board)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger, cfg.Random))

	// Specific board routes before the {command} catch-all
	api.HandleFunc("/board", boardHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/board/click", boardHandler.Click).Methods(http.MethodPost)
	api.HandleFunc("/board/key", boardHandler.Key).Methods(http.MethodPost)
	api.HandleFunc("/board/{command}", boardHandler.Command).Methods(http.MethodPost)

	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, response.Health{Status: "ok"})
}
