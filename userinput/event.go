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

import "fmt"

// Event represents a single discrete input event. The concrete types are
// EventButtonDown, EventButtonUp, EventAxisMotion and EventQuit.
type Event interface {
	isEvent()
}

// EventButtonDown is sent when a button is pressed.
type EventButtonDown struct {
	Button Button
}

// EventButtonUp is sent when a button is released.
type EventButtonUp struct {
	Button Button
}

// EventAxisMotion is sent when an analogue axis changes value.
type EventAxisMotion struct {
	Axis  Axis
	Value int16
}

// EventQuit is sent when the input subsystem wants the program to end. It
// is never sent to subscribers.
type EventQuit struct{}

func (EventButtonDown) isEvent() {}
func (EventButtonUp) isEvent()   {}
func (EventAxisMotion) isEvent() {}
func (EventQuit) isEvent()       {}

func (ev EventButtonDown) String() string {
	return fmt.Sprintf("button down: %s", ev.Button)
}

func (ev EventButtonUp) String() string {
	return fmt.Sprintf("button up: %s", ev.Button)
}

func (ev EventAxisMotion) String() string {
	return fmt.Sprintf("axis: %s %d", ev.Axis, ev.Value)
}

func (ev EventQuit) String() string {
	return "quit"
}
