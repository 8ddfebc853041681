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
	"time"

	gws "github.com/gorilla/websocket"
)

// Subscriber is a single websocket connection. It implements the
// broadcast.Subscriber interface.
type Subscriber struct {
	id           string
	conn         *gws.Conn
	writeTimeout time.Duration
}

// ID implements the broadcast.Subscriber interface.
func (sub *Subscriber) ID() string {
	return sub.id
}

// WriteText implements the broadcast.Subscriber interface. The text is sent as
// a single text message.
//
// Only one goroutine may call WriteText() at a time.
//
// A connection that fails a write cannot be written to again. The connection
// is closed, which causes the reader goroutine to report the closure.
func (sub *Subscriber) WriteText(text string) error {
	if sub.writeTimeout > 0 {
		if err := sub.conn.SetWriteDeadline(time.Now().Add(sub.writeTimeout)); err != nil {
			_ = sub.conn.Close()
			return err
		}
	}
	if err := sub.conn.WriteMessage(gws.TextMessage, []byte(text)); err != nil {
		_ = sub.conn.Close()
		return err
	}
	return nil
}

// close the connection with a close frame. the close frame is a courtesy and
// any error from sending it is ignored
func (sub *Subscriber) close() {
	msg := gws.FormatCloseMessage(gws.CloseGoingAway, "server shutting down")
	_ = sub.conn.WriteControl(gws.CloseMessage, msg, time.Now().Add(100*time.Millisecond))
	_ = sub.conn.Close()
}
