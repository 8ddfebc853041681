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

package websocket

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	gws "github.com/gorilla/websocket"
	"github.com/jetsetilly/padcast/broadcast"
	"github.com/jetsetilly/padcast/curated"
	"github.com/jetsetilly/padcast/logger"
	"github.com/puzpuzpuz/xsync/v3"
	"go.uber.org/atomic"
)

// DefaultPort is the port subscribers expect to find the event stream on.
const DefaultPort = 9002

// Config for the Transport.
type Config struct {
	// deadline for a single write to a subscriber. a value of zero means no
	// deadline
	WriteTimeout time.Duration

	// number of connect/disconnect notices that can be waiting for Service()
	// before the connection goroutines block
	Backlog int
}

// DefaultConfig returns the Config used when nothing else is specified.
func DefaultConfig() Config {
	return Config{
		WriteTimeout: time.Second,
		Backlog:      64,
	}
}

type notice struct {
	sub    *Subscriber
	closed bool
}

// Transport implements the broadcast.Transport interface.
type Transport struct {
	cfg      Config
	listener net.Listener
	server   *http.Server
	upgrader gws.Upgrader

	notices chan notice
	done    chan struct{}

	// the error returned by http.Server.Serve(). the error is moved to the
	// unusable field when Service() first sees it
	serveErr chan error
	unusable error

	// live connections. the key is the subscriber ID
	conns *xsync.MapOf[string, *Subscriber]

	nextID atomic.Uint64

	// crit protects destroyed and the adding to wg. connection handlers
	// cannot be added to the waitgroup once Destroy() has started
	crit      sync.Mutex
	destroyed bool
	wg        sync.WaitGroup

	// called by the connection handler after a successful upgrade. used by
	// tests to order the handler against Destroy()
	upgraded func(tr *Transport)
}

// Listen on the address and start serving websocket connections. Every path
// is upgraded and the origin of the request is not checked.
//
// An address of the form ":9002" listens on all interfaces.
func Listen(addr string, cfg Config) (*Transport, error) {
	return listen(addr, cfg, nil)
}

func listen(addr string, cfg Config, upgraded func(tr *Transport)) (*Transport, error) {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, curated.Errorf(broadcast.ContextCreation, err)
	}

	if cfg.Backlog <= 0 {
		cfg.Backlog = DefaultConfig().Backlog
	}

	tr := &Transport{
		cfg:      cfg,
		listener: l,
		notices:  make(chan notice, cfg.Backlog),
		done:     make(chan struct{}),
		serveErr: make(chan error, 1),
		conns:    xsync.NewMapOf[string, *Subscriber](),
		upgraded: upgraded,
		upgrader: gws.Upgrader{
			CheckOrigin: func(_ *http.Request) bool {
				return true
			},
		},
	}

	tr.server = &http.Server{
		Handler:           http.HandlerFunc(tr.handle),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		tr.serveErr <- tr.server.Serve(l)
	}()

	logger.Logf(logger.Allow, "websocket", "listening on %s", l.Addr())

	return tr, nil
}

// Addr returns the address being listened on. Useful when the port in the
// address given to Listen() was zero.
func (tr *Transport) Addr() net.Addr {
	return tr.listener.Addr()
}

// post a notice to the Service() function. returns false if the transport
// has been destroyed before the notice could be posted
func (tr *Transport) post(n notice) bool {
	select {
	case <-tr.done:
		return false
	default:
	}

	select {
	case tr.notices <- n:
		return true
	case <-tr.done:
		return false
	}
}

func (tr *Transport) handle(w http.ResponseWriter, r *http.Request) {
	tr.crit.Lock()
	if tr.destroyed {
		tr.crit.Unlock()
		http.Error(w, "shutting down", http.StatusServiceUnavailable)
		return
	}
	tr.wg.Add(1)
	tr.crit.Unlock()
	defer tr.wg.Done()

	conn, err := tr.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// the upgrader has already replied to the client
		logger.Logf(logger.Allow, "websocket", "upgrade from %s: %v", r.RemoteAddr, err)
		return
	}

	if tr.upgraded != nil {
		tr.upgraded(tr)
	}

	sub := &Subscriber{
		id:           fmt.Sprintf("%d/%s", tr.nextID.Inc(), r.RemoteAddr),
		conn:         conn,
		writeTimeout: tr.cfg.WriteTimeout,
	}

	tr.conns.Store(sub.id, sub)
	defer tr.conns.Delete(sub.id)
	defer conn.Close()

	// Destroy() may have started while the connection was being upgraded. if
	// it has then the Range() over the conns map in Destroy() may have missed
	// this connection
	tr.crit.Lock()
	destroyed := tr.destroyed
	tr.crit.Unlock()
	if destroyed {
		sub.close()
		return
	}

	if !tr.post(notice{sub: sub}) {
		return
	}

	// discard everything the subscriber sends until the connection fails or
	// is closed by either side
	for {
		if _, _, err := conn.NextReader(); err != nil {
			var ce *gws.CloseError
			if !errors.As(err, &ce) {
				logger.Logf(logger.Allow, "websocket", "%s: %v", sub.id, err)
			}
			break
		}
	}

	tr.post(notice{sub: sub, closed: true})
}

// Service implements the broadcast.Transport interface.
func (tr *Transport) Service(timeout time.Duration, cb broadcast.Callbacks) error {
	if tr.unusable != nil {
		return tr.unusable
	}

	select {
	case err := <-tr.serveErr:
		tr.unusable = curated.Errorf(broadcast.ContextUnusable, err)
		return tr.unusable
	default:
	}

	dispatch := func(n notice) {
		if n.closed {
			cb.Closed(n.sub)
		} else {
			cb.Established(n.sub)
		}
	}

	// wait for the first notice or for the timeout. after that handle only
	// the notices that are already waiting
	if timeout > 0 {
		t := time.NewTimer(timeout)
		defer t.Stop()
		select {
		case n := <-tr.notices:
			dispatch(n)
		case <-t.C:
			return nil
		}
	}

	for {
		select {
		case n := <-tr.notices:
			dispatch(n)
		default:
			return nil
		}
	}
}

// Destroy implements the broadcast.Transport interface. The listener and every
// connection is closed. Destroy() returns once all connection goroutines have
// finished.
func (tr *Transport) Destroy() error {
	tr.crit.Lock()
	if tr.destroyed {
		tr.crit.Unlock()
		return nil
	}
	tr.destroyed = true
	tr.crit.Unlock()

	close(tr.done)

	// closing the server closes the listener. hijacked connections are not
	// closed by the server and must be closed here
	err := tr.server.Close()

	tr.conns.Range(func(_ string, sub *Subscriber) bool {
		sub.close()
		return true
	})

	tr.wg.Wait()

	logger.Log(logger.Allow, "websocket", "transport destroyed")

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
