package sse

import (
	"context"
	"log/slog"
)

// EventBoard is the event name carrying the re-rendered board region
const EventBoard = "board"

// Renderer renders a region of the board page
type Renderer interface {
	Render(ctx context.Context, region string) (string, error)
}

// Broadcaster re-renders a region after board changes and pushes it to the
// hub. Notifications that arrive while a render is pending are coalesced.
type Broadcaster struct {
	hub      *Hub
	renderer Renderer
	region   string
	logger   *slog.Logger
	notify   chan struct{}
}

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hub *Hub, renderer Renderer, region string, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		hub:      hub,
		renderer: renderer,
		region:   region,
		logger:   logger.With(slog.String("component", "sse-broadcaster")),
		notify:   make(chan struct{}, 1),
	}
}

// Notify marks the board as changed. It never blocks, so it is safe to call
// from the board event loop.
func (b *Broadcaster) Notify() {
	select {
	case b.notify <- struct{}{}:
	default:
	}
}

// Run renders and broadcasts after each notification until ctx is cancelled
func (b *Broadcaster) Run(ctx context.Context) {
	for {
		select {
		case <-b.notify:
			if b.hub.ClientCount() == 0 {
				continue
			}
			html, err := b.renderer.Render(ctx, b.region)
			if err != nil {
				if ctx.Err() == nil {
					b.logger.Error("sse failed to render board", slog.Any("error", err))
				}
				continue
			}
			b.hub.BroadcastEvent(EventBoard, html)
		case <-ctx.Done():
			return
		}
	}
}
