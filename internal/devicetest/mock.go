// SPDX-License-Identifier: EPL-2.0

// Package devicetest provides an in-memory device.Context so playback
// state machines can be tested without audio hardware.
package devicetest

import (
	"io"
	"sync"

	"github.com/ik5/ears/internal/device"
)

// Context records every player it hands out.
type Context struct {
	mu      sync.Mutex
	players []*Player
}

func New() *Context {
	return &Context{}
}

func (c *Context) NewPlayer(r io.Reader) device.Player {
	c.mu.Lock()
	defer c.mu.Unlock()

	p := &Player{r: r}
	c.players = append(c.players, p)
	return p
}

// Players returns every player created so far, in creation order.
func (c *Context) Players() []*Player {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]*Player, len(c.players))
	copy(out, c.players)
	return out
}

// LastPlayer returns the most recently created player, or nil.
func (c *Context) LastPlayer() *Player {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.players) == 0 {
		return nil
	}
	return c.players[len(c.players)-1]
}

// Player mimics a device player. It never pulls from the reader on its
// own; tests drive consumption with Advance or Drain.
type Player struct {
	mu      sync.Mutex
	r       io.Reader
	playing bool
	drained bool
	closed  bool
	read    int
}

func (p *Player) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed || p.drained {
		return
	}
	p.playing = true
}

func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.playing = false
}

func (p *Player) IsPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.playing && !p.drained && !p.closed
}

func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.playing = false
	p.closed = true
	return nil
}

// Advance pulls up to n bytes from the player's reader, the way the real
// device does from its mixer goroutine. Hitting EOF marks the player
// drained, which flips IsPlaying to false.
func (p *Player) Advance(n int) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed || p.drained {
		return 0, io.EOF
	}

	buf := make([]byte, n)
	got, err := io.ReadFull(p.r, buf)
	p.read += got

	if err == io.EOF || err == io.ErrUnexpectedEOF {
		p.drained = true
		p.playing = false
		return got, io.EOF
	}

	return got, err
}

// Drain consumes the reader to EOF and returns the total bytes pulled.
func (p *Player) Drain() (int, error) {
	total := 0
	for {
		n, err := p.Advance(4096)
		total += n
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

// BytesRead reports how many bytes have been pulled so far.
func (p *Player) BytesRead() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.read
}

// Closed reports whether Close has been called.
func (p *Player) Closed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.closed
}
