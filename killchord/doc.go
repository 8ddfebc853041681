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

// Package killchord recognises a two button chord on the game controller and
// writes a single line to an output when the chord is pressed.
//
// The chord is a modifier button held down while a trigger button is
// pressed. By default the modifier is the Back button and the trigger is the
// DPad Up button. The line is intended for a supervising process which reads
// the standard output of this program and terminates the emulator it is
// looking after when the line appears.
//
// There is no timeout and no sequence. The modifier can be held for any
// length of time and the trigger can be pressed many times while the
// modifier is held. Each press of the trigger writes the line again.
package killchord
