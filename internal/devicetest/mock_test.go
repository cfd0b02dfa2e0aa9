// SPDX-License-Identifier: EPL-2.0

package devicetest

import (
	"bytes"
	"testing"
)

func TestPlayer_Lifecycle(t *testing.T) {
	t.Parallel()

	ctx := New()
	p := ctx.NewPlayer(bytes.NewReader(make([]byte, 64))).(*Player)

	if p.IsPlaying() {
		t.Error("IsPlaying() = true before Play")
	}

	p.Play()
	if !p.IsPlaying() {
		t.Error("IsPlaying() = false after Play")
	}

	p.Pause()
	if p.IsPlaying() {
		t.Error("IsPlaying() = true after Pause")
	}

	p.Play()
	if _, err := p.Drain(); err != nil {
		t.Fatalf("Drain() error = %v", err)
	}

	if p.IsPlaying() {
		t.Error("IsPlaying() = true after drain")
	}
	if p.BytesRead() != 64 {
		t.Errorf("BytesRead() = %d, want 64", p.BytesRead())
	}

	// Drained players cannot restart.
	p.Play()
	if p.IsPlaying() {
		t.Error("IsPlaying() = true after drained Play")
	}
}

func TestContext_TracksPlayers(t *testing.T) {
	t.Parallel()

	ctx := New()

	if ctx.LastPlayer() != nil {
		t.Error("LastPlayer() != nil on empty context")
	}

	a := ctx.NewPlayer(bytes.NewReader(nil))
	b := ctx.NewPlayer(bytes.NewReader(nil))

	players := ctx.Players()
	if len(players) != 2 {
		t.Fatalf("Players() = %d, want 2", len(players))
	}

	if ctx.LastPlayer() != b || players[0] != a {
		t.Error("player tracking out of order")
	}

	if err := b.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if !ctx.LastPlayer().Closed() {
		t.Error("Closed() = false after Close")
	}
}
