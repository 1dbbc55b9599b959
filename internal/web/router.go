package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordboard/internal/dependencies/random"
	"github.com/mcoot/wordboard/internal/services/board"
	"github.com/mcoot/wordboard/internal/web/handler"
	"github.com/mcoot/wordboard/internal/web/middleware"
	"github.com/mcoot/wordboard/internal/web/sse"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger    *slog.Logger
	Random    random.Random
	Board     board.ControllerInterface
	Hub       *sse.Hub
	StaticDir string // Path to static files directory
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger, cfg.Random))

	boardHandler := handler.NewBoardHandler(cfg.Board, cfg.Hub, cfg.Logger)

	if cfg.StaticDir != "" {
		staticHandler := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
		r.PathPrefix("/static/").Handler(staticHandler)
	}

	r.HandleFunc("/", boardHandler.Page).Methods(http.MethodGet)
	r.HandleFunc("/click/{target}", boardHandler.Click).Methods(http.MethodPost)
	r.HandleFunc("/key/{key}", boardHandler.Key).Methods(http.MethodPost)
	r.HandleFunc("/events", boardHandler.Events).Methods(http.MethodGet)

	return r
}
