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

package broadcast_test

import (
	"errors"
	"time"

	"github.com/jetsetilly/padcast/broadcast"
)

type fakeSubscriber struct {
	id       string
	fail     bool
	received []string
}

func (sub *fakeSubscriber) ID() string {
	return sub.id
}

func (sub *fakeSubscriber) WriteText(text string) error {
	if sub.fail {
		return errors.New("connection reset")
	}
	sub.received = append(sub.received, text)
	return nil
}

type notice struct {
	sub    broadcast.Subscriber
	closed bool
}

// fakeTransport queues notices which are only dispatched when Service() is
// called. same as the real transport
type fakeTransport struct {
	pending   []notice
	serviced  int
	destroyed int
	err       error
}

func (tr *fakeTransport) connect(sub broadcast.Subscriber) {
	tr.pending = append(tr.pending, notice{sub: sub})
}

func (tr *fakeTransport) disconnect(sub broadcast.Subscriber) {
	tr.pending = append(tr.pending, notice{sub: sub, closed: true})
}

func (tr *fakeTransport) Service(_ time.Duration, cb broadcast.Callbacks) error {
	tr.serviced++
	for _, n := range tr.pending {
		if n.closed {
			cb.Closed(n.sub)
		} else {
			cb.Established(n.sub)
		}
	}
	tr.pending = tr.pending[:0]
	return tr.err
}

func (tr *fakeTransport) Destroy() error {
	tr.destroyed++
	return nil
}
