package sse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/wordboard/internal/testutil"
)

func TestFormatEvent(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		expected string
	}{
		{"single line", "<p>A</p>", "event: board\ndata: <p>A</p>\n\n"},
		{"multi line", "a\nb", "event: board\ndata: a\ndata: b\n\n"},
		{"crlf", "a\r\nb", "event: board\ndata: a\ndata: b\n\n"},
		{"empty", "", "event: board\ndata: \n\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(FormatEvent(EventBoard, tt.data)))
		})
	}
}

func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub(testutil.NopLogger())
	go hub.Run()
	t.Cleanup(hub.Close)
	return hub
}

func TestHub_BroadcastReachesClients(t *testing.T) {
	hub := startHub(t)
	first, second := NewClient(), NewClient()
	require.True(t, hub.Register(first))
	require.True(t, hub.Register(second))
	require.Eventually(t, func() bool { return hub.ClientCount() == 2 }, time.Second, time.Millisecond)

	hub.BroadcastEvent(EventBoard, "x")

	for _, c := range []*Client{first, second} {
		select {
		case msg := <-c.send:
			assert.Equal(t, "event: board\ndata: x\n\n", string(msg))
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for broadcast")
		}
	}
}

func TestHub_UnregisterClosesSend(t *testing.T) {
	hub := startHub(t)
	c := NewClient()
	require.True(t, hub.Register(c))
	hub.Unregister(c)

	_, ok := <-c.send
	assert.False(t, ok)
	assert.Equal(t, 0, hub.ClientCount())
}

func TestHub_RegisterAfterClose(t *testing.T) {
	hub := NewHub(testutil.NopLogger())
	go hub.Run()
	hub.Close()
	hub.Close()

	assert.False(t, hub.Register(NewClient()))
}
