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

// Package test contains helper functions to remove common boilerplate from
// the package tests.
//
// The Expect functions report a failure and let the test continue. The Demand
// functions stop the test immediately and should be used when later parts of
// the test depend on the value being correct. For example, the length of a
// slice before indexing into it.
//
// It is worth describing how success and failure are decided for the nil
// value because it is not obvious. A nil value is considered a success and so
// ExpectFailure(nil) fails. This is how the error type is normally used (nil
// meaning no error) so we interpret nil in the same way everywhere.
//
// The Writer type implements the io.Writer interface and should be used to
// capture output. The Compare() function can then be used to test what was
// written.
package test
