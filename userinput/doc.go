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

// Package userinput defines the events produced by a game controller and the
// Source interface implemented by the packages that read them.
//
// It can be thought of as the translation layer between the platform
// specific input packages (sdlpad and termpad) and the rest of the program.
// Button and axis numbering follows the SDL game controller layout because
// that was the platform in use during development, and because the numbers
// are sent unchanged to subscribers.
package userinput
