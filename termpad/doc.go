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

// Package termpad turns key presses on a terminal into controller events. It
// is useful for testing subscribers on a machine without a game controller.
//
// The terminal is put into raw mode so key presses are seen immediately.
// Keys are mapped to controller buttons:
//
//	cursor keys    DPad
//	a, b, x, y     face buttons
//	space          Back
//	enter          Start
//	q or ctrl-c    quit
//
// A key press produces a button down event followed immediately by a button
// up event. The exception is the Back button. Back stays down until a key
// other than a cursor key or face button is pressed, which allows the
// Back + DPad Up chord to be made from a keyboard.
package termpad
