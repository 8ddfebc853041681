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
	"net"
	"testing"
	"time"

	gws "github.com/gorilla/websocket"
	"github.com/jetsetilly/padcast/broadcast"
	"github.com/jetsetilly/padcast/curated"
	"github.com/jetsetilly/padcast/test"
)

// call Service() until cond is true or until the deadline passes
func serviceUntil(t *testing.T, srv *broadcast.Server, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("condition not met before deadline")
		}
		if err := srv.Service(10 * time.Millisecond); err != nil {
			t.Fatalf("unexpected error from Service(): %v", err)
		}
	}
}

func dial(t *testing.T, tr *Transport) *gws.Conn {
	t.Helper()
	conn, _, err := gws.DefaultDialer.Dial("ws://"+tr.Addr().String()+"/", nil)
	test.DemandSuccess(t, err)
	return conn
}

func TestBroadcast(t *testing.T) {
	tr, err := Listen("127.0.0.1:0", DefaultConfig())
	test.DemandSuccess(t, err)
	srv := broadcast.NewServer(tr)
	defer srv.Destroy()

	a := dial(t, tr)
	defer a.Close()
	b := dial(t, tr)
	defer b.Close()

	serviceUntil(t, srv, func() bool { return srv.Subscribers() == 2 })

	msg := `{"type":"button_down","button":11}`
	test.ExpectEquality(t, srv.Broadcast(msg), 2)

	for _, c := range []*gws.Conn{a, b} {
		test.DemandSuccess(t, c.SetReadDeadline(time.Now().Add(5*time.Second)))
		typ, data, err := c.ReadMessage()
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, typ, gws.TextMessage)
		test.ExpectEquality(t, string(data), msg)
	}

	// messages from the subscriber are discarded
	test.ExpectSuccess(t, a.WriteMessage(gws.TextMessage, []byte("ignored")))

	// closing a client is noticed by the server
	test.ExpectSuccess(t, a.WriteMessage(gws.CloseMessage, gws.FormatCloseMessage(gws.CloseNormalClosure, "")))
	a.Close()
	serviceUntil(t, srv, func() bool { return srv.Subscribers() == 1 })

	test.ExpectEquality(t, srv.Broadcast(msg), 1)
}

func TestAnyPath(t *testing.T) {
	tr, err := Listen("127.0.0.1:0", DefaultConfig())
	test.DemandSuccess(t, err)
	srv := broadcast.NewServer(tr)
	defer srv.Destroy()

	conn, _, err := gws.DefaultDialer.Dial("ws://"+tr.Addr().String()+"/some/path", nil)
	test.DemandSuccess(t, err)
	defer conn.Close()

	serviceUntil(t, srv, func() bool { return srv.Subscribers() == 1 })
}

func TestDestroy(t *testing.T) {
	tr, err := Listen("127.0.0.1:0", DefaultConfig())
	test.DemandSuccess(t, err)
	srv := broadcast.NewServer(tr)

	conn := dial(t, tr)
	defer conn.Close()
	serviceUntil(t, srv, func() bool { return srv.Subscribers() == 1 })

	test.ExpectSuccess(t, srv.Destroy())
	test.ExpectSuccess(t, srv.Destroy())

	// the client sees the connection close
	test.DemandSuccess(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, _, err = conn.ReadMessage()
	test.ExpectFailure(t, err)

	// the listener is closed
	_, _, err = gws.DefaultDialer.Dial("ws://"+tr.Addr().String()+"/", nil)
	test.ExpectFailure(t, err)
}

func TestAddressInUse(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	test.DemandSuccess(t, err)
	defer l.Close()

	_, err = Listen(l.Addr().String(), DefaultConfig())
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, broadcast.ContextCreation), true)
}

func TestUnusable(t *testing.T) {
	tr, err := Listen("127.0.0.1:0", DefaultConfig())
	test.DemandSuccess(t, err)
	defer tr.Destroy()

	// closing the listener from underneath the http server causes Serve() to
	// return
	test.DemandSuccess(t, tr.listener.Close())

	srv := broadcast.NewServer(tr)
	deadline := time.Now().Add(5 * time.Second)
	for {
		err = srv.Service(10 * time.Millisecond)
		if err != nil {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("transport did not become unusable")
		}
	}
	test.ExpectEquality(t, curated.Is(err, broadcast.ContextUnusable), true)

	// the error is sticky
	err = srv.Service(0)
	test.ExpectEquality(t, curated.Is(err, broadcast.ContextUnusable), true)
}

func TestWriteFailureClosesConnection(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WriteTimeout = time.Nanosecond

	tr, err := Listen("127.0.0.1:0", cfg)
	test.DemandSuccess(t, err)
	srv := broadcast.NewServer(tr)
	defer srv.Destroy()

	conn := dial(t, tr)
	defer conn.Close()
	serviceUntil(t, srv, func() bool { return srv.Subscribers() == 1 })

	// the write deadline has passed before the write begins
	test.ExpectEquality(t, srv.Broadcast(`{"type":"button_down","button":0}`), 0)

	// the failed connection is closed and removed from the registry
	serviceUntil(t, srv, func() bool { return srv.Subscribers() == 0 })
	test.ExpectEquality(t, srv.Broadcast(`{"type":"button_up","button":0}`), 0)

	test.DemandSuccess(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, _, err = conn.ReadMessage()
	test.ExpectFailure(t, err)
}

func TestDestroyDuringUpgrade(t *testing.T) {
	// Destroy() starts after the connection has been upgraded but before the
	// subscriber has been stored
	destroyed := make(chan error, 1)
	tr, err := listen("127.0.0.1:0", DefaultConfig(), func(tr *Transport) {
		go func() {
			destroyed <- tr.Destroy()
		}()
		<-tr.done
	})
	test.DemandSuccess(t, err)

	conn := dial(t, tr)
	defer conn.Close()

	select {
	case err := <-destroyed:
		test.ExpectSuccess(t, err)
	case <-time.After(5 * time.Second):
		t.Fatalf("Destroy() did not return")
	}

	test.DemandSuccess(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, _, err = conn.ReadMessage()
	test.ExpectFailure(t, err)
}
