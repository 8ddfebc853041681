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

package mainloop_test

import (
	"errors"
	"testing"
	"time"

	"github.com/jetsetilly/padcast/broadcast"
	"github.com/jetsetilly/padcast/curated"
	"github.com/jetsetilly/padcast/killchord"
	"github.com/jetsetilly/padcast/mainloop"
	"github.com/jetsetilly/padcast/test"
	"github.com/jetsetilly/padcast/userinput"
)

// calls records the order of Close() and Destroy() calls across the fake
// source and fake server
type calls []string

// scriptedSource returns one batch of events for each call to Poll().
// onPoll is called with the number of the poll (counting from one)
type scriptedSource struct {
	batches [][]userinput.Event
	polled  int
	onPoll  func(n int)
	err     error
	calls   *calls
}

func (src *scriptedSource) Poll() ([]userinput.Event, error) {
	src.polled++
	if src.onPoll != nil {
		src.onPoll(src.polled)
	}
	if src.err != nil {
		return nil, src.err
	}
	if len(src.batches) == 0 {
		return nil, nil
	}
	b := src.batches[0]
	src.batches = src.batches[1:]
	return b, nil
}

func (src *scriptedSource) Close() error {
	*src.calls = append(*src.calls, "close")
	return nil
}

type fakeServer struct {
	broadcasts []string
	serviced   int
	err        error
	calls      *calls
}

func (srv *fakeServer) Broadcast(text string) int {
	srv.broadcasts = append(srv.broadcasts, text)
	return 1
}

func (srv *fakeServer) Service(_ time.Duration) error {
	srv.serviced++
	return srv.err
}

func (srv *fakeServer) Destroy() error {
	*srv.calls = append(*srv.calls, "destroy")
	return nil
}

func newFakes() (*scriptedSource, *fakeServer, *calls) {
	c := &calls{}
	return &scriptedSource{calls: c}, &fakeServer{calls: c}, c
}

func expectShutdownOrder(t *testing.T, c *calls) {
	t.Helper()
	test.DemandEquality(t, len(*c), 2)
	test.ExpectEquality(t, (*c)[0], "close")
	test.ExpectEquality(t, (*c)[1], "destroy")
}

func TestQuitMidLoop(t *testing.T) {
	src, srv, c := newFakes()
	var loop *mainloop.Loop
	src.onPoll = func(n int) {
		if n == 3 {
			loop.Quit()
		}
	}
	loop = mainloop.NewLoop(src, srv, mainloop.Config{Tick: time.Millisecond, Broadcast: true})

	test.ExpectEquality(t, loop.State(), mainloop.Running)
	test.ExpectSuccess(t, loop.Run())
	test.ExpectEquality(t, loop.State(), mainloop.Stopped)

	// the quit flag is seen at the start of the fourth iteration
	test.ExpectEquality(t, src.polled, 3)
	test.ExpectEquality(t, srv.serviced, 3)
	expectShutdownOrder(t, c)
}

func TestQuitFromGoroutine(t *testing.T) {
	src, srv, c := newFakes()
	loop := mainloop.NewLoop(src, srv, mainloop.Config{Tick: time.Millisecond})

	go func() {
		time.Sleep(20 * time.Millisecond)
		loop.Quit()
	}()

	test.ExpectSuccess(t, loop.Run())
	test.ExpectEquality(t, loop.State(), mainloop.Stopped)
	expectShutdownOrder(t, c)
}

func TestBroadcastEvents(t *testing.T) {
	src, srv, c := newFakes()
	src.batches = [][]userinput.Event{
		{
			userinput.EventButtonDown{Button: userinput.ButtonA},
			userinput.EventButtonUp{Button: userinput.ButtonA},
		},
		{
			userinput.EventAxisMotion{Axis: userinput.AxisLeftY, Value: -32768},
			userinput.EventQuit{},
			userinput.EventButtonDown{Button: userinput.ButtonB},
		},
	}
	loop := mainloop.NewLoop(src, srv, mainloop.Config{Tick: time.Millisecond, Broadcast: true})

	test.ExpectSuccess(t, loop.Run())
	test.DemandEquality(t, len(srv.broadcasts), 3)
	test.ExpectEquality(t, srv.broadcasts[0], `{"type":"button_down","button":0}`)
	test.ExpectEquality(t, srv.broadcasts[1], `{"type":"button_up","button":0}`)
	test.ExpectEquality(t, srv.broadcasts[2], `{"type":"axis","axis":1,"value":-32768}`)

	// the quit event stops the loop before the server is serviced
	test.ExpectEquality(t, srv.serviced, 1)
	expectShutdownOrder(t, c)
}

func TestChordWithoutBroadcast(t *testing.T) {
	src, srv, c := newFakes()
	src.batches = [][]userinput.Event{
		{userinput.EventButtonDown{Button: userinput.ButtonBack}},
		{userinput.EventButtonDown{Button: userinput.ButtonDPadUp}},
		{userinput.EventQuit{}},
	}

	w := &test.Writer{}
	det := killchord.NewDetector(w)
	loop := mainloop.NewLoop(src, srv, mainloop.Config{
		Tick:     time.Millisecond,
		Detector: det,
	})

	test.ExpectSuccess(t, loop.Run())
	test.ExpectEquality(t, w.Compare(killchord.Token+"\n"), true)
	test.ExpectEquality(t, len(srv.broadcasts), 0)
	expectShutdownOrder(t, c)
}

func TestChordWithBroadcast(t *testing.T) {
	src, srv, _ := newFakes()
	src.batches = [][]userinput.Event{
		{
			userinput.EventButtonDown{Button: userinput.ButtonBack},
			userinput.EventButtonDown{Button: userinput.ButtonDPadUp},
		},
		{userinput.EventQuit{}},
	}

	w := &test.Writer{}
	loop := mainloop.NewLoop(src, srv, mainloop.Config{
		Tick:      time.Millisecond,
		Broadcast: true,
		Detector:  killchord.NewDetector(w),
	})

	test.ExpectSuccess(t, loop.Run())
	test.ExpectEquality(t, w.Compare(killchord.Token+"\n"), true)

	// the token itself is never broadcast
	test.DemandEquality(t, len(srv.broadcasts), 2)
	test.ExpectEquality(t, srv.broadcasts[1], `{"type":"button_down","button":11}`)
}

func TestContextUnusable(t *testing.T) {
	src, srv, c := newFakes()
	srv.err = curated.Errorf(broadcast.ContextUnusable, errors.New("listener closed"))
	loop := mainloop.NewLoop(src, srv, mainloop.Config{Tick: time.Millisecond})

	err := loop.Run()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, broadcast.ContextUnusable), true)
	test.ExpectEquality(t, loop.State(), mainloop.Stopped)
	expectShutdownOrder(t, c)
}

func TestServiceErrorIsLogged(t *testing.T) {
	src, srv, c := newFakes()
	srv.err = errors.New("temporary problem")
	src.onPoll = func(n int) {
		if n == 5 {
			src.batches = [][]userinput.Event{{userinput.EventQuit{}}}
		}
	}
	loop := mainloop.NewLoop(src, srv, mainloop.Config{Tick: time.Millisecond})

	// an error that doesn't match the ContextUnusable pattern does not stop
	// the loop
	test.ExpectSuccess(t, loop.Run())
	test.ExpectEquality(t, srv.serviced, 4)
	expectShutdownOrder(t, c)
}

func TestSourceError(t *testing.T) {
	src, srv, c := newFakes()
	src.err = errors.New("device unplugged")
	loop := mainloop.NewLoop(src, srv, mainloop.Config{Tick: time.Millisecond})

	test.ExpectFailure(t, loop.Run())
	test.ExpectEquality(t, srv.serviced, 0)
	expectShutdownOrder(t, c)
}
