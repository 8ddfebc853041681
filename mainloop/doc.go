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

// Package mainloop ties an input source to a broadcast server.
//
// The loop runs on a single goroutine. Each iteration polls the source for
// events, hands the events to the chord detector (if there is one), encodes
// and broadcasts the events (if broadcasting is enabled) and then services
// the server so that new and closed connections are noticed. The remainder
// of the tick is spent sleeping.
//
// The loop stops when Quit() is called from any goroutine, when the source
// reports a quit event, or when the server reports that it can no longer be
// used. Before Run() returns the source is closed and the server destroyed,
// in that order.
package mainloop
