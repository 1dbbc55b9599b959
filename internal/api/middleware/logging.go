package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/wordboard/internal/dependencies/random"
	"github.com/mcoot/wordboard/internal/middleware"
)

// Logging creates logging middleware for the API
func Logging(logger *slog.Logger, rnd random.Random) func(http.Handler) http.Handler {
	return middleware.Logging(logger.With(slog.String("surface", "api")), rnd)
}
