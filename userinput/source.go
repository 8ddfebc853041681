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

package userinput

// Source is implemented by packages that read events from real hardware.
//
// Poll() must not block for longer than it takes to drain the events that
// are already queued. It returns the events in the order they happened. An
// empty slice means there was nothing to report.
//
// Close() releases the hardware. It is safe to call Close() more than once.
type Source interface {
	Poll() ([]Event, error)
	Close() error
}

// Named is implemented by Sources that can describe the device they are
// reading from.
type Named interface {
	Name() string
}
