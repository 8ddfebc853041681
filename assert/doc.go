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

// Package assert helps enforce the rule that some values are only ever
// touched by the goroutine that owns them. The subscriber registry for
// example, is owned by the main loop and must never be changed by a
// transport goroutine.
//
// An Owner records the goroutine that claimed it. Check() panics if it is
// called from any other goroutine. The check is only made when the program is
// built with the "assertions" build tag. Otherwise Claim() and Check() do
// nothing.
package assert
