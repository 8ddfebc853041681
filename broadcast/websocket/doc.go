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

// Package websocket is a broadcast.Transport built on gorilla/websocket.
//
// Connections are accepted and read on goroutines belonging to the HTTP
// server. Those goroutines never call into the broadcast package directly.
// Instead, connection and disconnection are posted as notices which are
// handled when the owner of the transport calls Service().
//
// Inbound messages from subscribers are read and discarded. Reading is
// still necessary so that control frames are processed and so that a closed
// connection is noticed.
package websocket
