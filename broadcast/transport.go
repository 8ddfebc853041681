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

import "time"

// Sentinel error patterns.
const (
	// the transport could not be created. for example, the port is in use
	ContextCreation = "transport: cannot create context: %v"

	// the transport can no longer be used and the program should end
	ContextUnusable = "transport: context unusable: %v"

	// writing to a single subscriber failed
	SubscriberWriteFailure = "transport: write to subscriber %s: %v"
)

// Subscriber is a connected client of the transport. Subscribers are
// identified by the value returned by ID().
type Subscriber interface {
	ID() string
	WriteText(text string) error
}

// Callbacks are called by the transport from inside Service().
type Callbacks interface {
	Established(sub Subscriber)
	Closed(sub Subscriber)
}

// Transport is the underlying connection library.
type Transport interface {
	// Service processes pending connect and disconnect notifications,
	// calling the appropriate Callbacks function for each. It must return
	// once the timeout has elapsed. The timeout may be cut short if there are
	// notifications to process.
	//
	// An error that matches the ContextUnusable pattern means the transport
	// is no longer able to accept subscribers.
	Service(timeout time.Duration, cb Callbacks) error

	// Destroy closes every connection and releases the transport.
	Destroy() error
}
