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

// Package sdlpad reads game controller events using SDL2.
//
// SDL must be initialised, polled and shutdown from the same thread. In
// practice this means the main thread, so the functions in this package
// should only be called from the main goroutine after a call to
// runtime.LockOSThread().
//
// Only the game controller subsystem is initialised. SDL's own signal
// handlers are disabled so that an interrupt signal reaches the program
// rather than being turned into an SDL quit event.
package sdlpad
