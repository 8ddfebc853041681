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

// Package broadcast sends text messages to every connected subscriber.
//
// The Server type owns a Transport and a Registry of subscribers. The
// transport tells the server when a subscriber connects or disconnects, and
// the server adds or removes the subscriber from the registry. Broadcast()
// writes a message to every subscriber in the registry.
//
// All of this happens on one goroutine. The transport may use other
// goroutines internally (to accept connections, for instance) but the
// Established() and Closed() callbacks are only ever called from inside
// Service(). The registry therefore needs no locking.
//
// Delivery is best effort. A failed write to one subscriber is logged and
// the remaining subscribers are still written to. Nothing is retried.
package broadcast
