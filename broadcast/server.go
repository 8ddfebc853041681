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

package broadcast

import (
	"time"

	"github.com/jetsetilly/padcast/curated"
	"github.com/jetsetilly/padcast/logger"
)

// Server owns the transport and the registry of subscribers.
type Server struct {
	transport Transport
	registry  *Registry

	destroyed bool
}

// NewServer is the preferred method of initialisation for the Server type.
// The Server takes ownership of the transport.
func NewServer(transport Transport) *Server {
	return &Server{
		transport: transport,
		registry:  NewRegistry(),
	}
}

// Established implements the Callbacks interface.
func (srv *Server) Established(sub Subscriber) {
	if srv.registry.Add(sub) {
		logger.Logf(logger.Allow, "broadcast", "subscriber connected: %s (%d total)", sub.ID(), srv.registry.Len())
	}
}

// Closed implements the Callbacks interface.
func (srv *Server) Closed(sub Subscriber) {
	if srv.registry.Remove(sub) {
		logger.Logf(logger.Allow, "broadcast", "subscriber disconnected: %s (%d total)", sub.ID(), srv.registry.Len())
	}
}

// Subscribers returns the number of connected subscribers.
func (srv *Server) Subscribers() int {
	return srv.registry.Len()
}

// Broadcast writes text to every subscriber. A failed write is logged and does
// not stop delivery to the other subscribers. Returns the number of
// subscribers successfully written to.
func (srv *Server) Broadcast(text string) int {
	var n int
	srv.registry.ForEach(func(sub Subscriber) {
		if err := sub.WriteText(text); err != nil {
			logger.Log(logger.Allow, "broadcast", curated.Errorf(SubscriberWriteFailure, sub.ID(), err))
			return
		}
		n++
	})
	return n
}

// Service processes pending transport events, waiting no longer than timeout.
func (srv *Server) Service(timeout time.Duration) error {
	if srv.destroyed {
		return curated.Errorf(ContextUnusable, "server has been destroyed")
	}
	return srv.transport.Service(timeout, srv)
}

// Destroy the transport. Calling Destroy() more than once has no effect.
func (srv *Server) Destroy() error {
	if srv.destroyed {
		return nil
	}
	srv.destroyed = true
	return srv.transport.Destroy()
}
