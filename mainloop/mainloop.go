// This file is part of Padcast.
//
// Padcast is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Padcast is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Padcast.  If not, see <https://www.gnu.org/licenses/>.

package mainloop

import (
	"time"

	"github.com/jetsetilly/padcast/broadcast"
	"github.com/jetsetilly/padcast/curated"
	"github.com/jetsetilly/padcast/logger"
	"github.com/jetsetilly/padcast/userinput"
	"github.com/jetsetilly/padcast/wire"
	"go.uber.org/atomic"
)

// DefaultTick is the length of a single loop iteration.
const DefaultTick = 10 * time.Millisecond

// State of the loop.
type State int

// List of valid State values.
const (
	Running State = iota
	ShuttingDown
	Stopped
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case ShuttingDown:
		return "shutting down"
	case Stopped:
		return "stopped"
	}
	return "unknown state"
}

// Server is the part of broadcast.Server used by the loop.
type Server interface {
	Broadcast(text string) int
	Service(timeout time.Duration) error
	Destroy() error
}

// Detector is the part of killchord.Detector used by the loop.
type Detector interface {
	Handle(ev userinput.Event) bool
}

// Config for a Loop.
type Config struct {
	Tick time.Duration

	// whether events are broadcast. a loop that only detects the chord sets
	// this to false
	Broadcast bool

	// chord detector. can be nil
	Detector Detector
}

// Loop is the main loop of the program.
type Loop struct {
	source userinput.Source
	server Server
	cfg    Config

	state State
	quit  atomic.Bool

	// the error that caused the loop to stop
	err error
}

// NewLoop is the preferred method of initialisation for the Loop type.
func NewLoop(source userinput.Source, server Server, cfg Config) *Loop {
	if cfg.Tick <= 0 {
		cfg.Tick = DefaultTick
	}
	return &Loop{
		source: source,
		server: server,
		cfg:    cfg,
		state:  Running,
	}
}

// Quit causes the loop to stop at the start of the next iteration. It is safe
// to call Quit() from any goroutine, including from a signal handler.
func (l *Loop) Quit() {
	l.quit.Store(true)
}

// State returns the current state of the loop. Should only be called from the
// goroutine that called Run() or after Run() has returned.
func (l *Loop) State() State {
	return l.state
}

// Run the loop until it stops. Returns the error that caused it to stop, if
// there was one. A quit request is not an error.
func (l *Loop) Run() error {
	for l.state != Stopped {
		switch l.state {
		case Running:
			l.iterate()
		case ShuttingDown:
			l.shutdown()
		}
	}
	return l.err
}

func (l *Loop) iterate() {
	start := time.Now()

	if l.quit.Load() {
		logger.Log(logger.Allow, "mainloop", "quit requested")
		l.state = ShuttingDown
		return
	}

	events, err := l.source.Poll()
	if err != nil {
		logger.Logf(logger.Allow, "mainloop", "input: %v", err)
		l.err = err
		l.state = ShuttingDown
		return
	}

	for _, ev := range events {
		if _, ok := ev.(userinput.EventQuit); ok {
			logger.Log(logger.Allow, "mainloop", "quit event from input")
			l.state = ShuttingDown
			return
		}

		if l.cfg.Detector != nil {
			l.cfg.Detector.Handle(ev)
		}

		if l.cfg.Broadcast {
			text, err := wire.Encode(ev)
			if err != nil {
				logger.Log(logger.Allow, "mainloop", err)
				continue
			}
			l.server.Broadcast(text)
		}
	}

	err = l.server.Service(l.cfg.Tick)
	if err != nil {
		if curated.Is(err, broadcast.ContextUnusable) {
			logger.Log(logger.Allow, "mainloop", err)
			l.err = err
			l.state = ShuttingDown
			return
		}
		logger.Log(logger.Allow, "mainloop", err)
	}

	if remaining := l.cfg.Tick - time.Since(start); remaining > 0 {
		time.Sleep(remaining)
	}
}

func (l *Loop) shutdown() {
	if err := l.source.Close(); err != nil {
		logger.Logf(logger.Allow, "mainloop", "closing input: %v", err)
	}
	if err := l.server.Destroy(); err != nil {
		logger.Logf(logger.Allow, "mainloop", "destroying server: %v", err)
	}
	l.state = Stopped
	logger.Log(logger.Allow, "mainloop", "stopped")
}
