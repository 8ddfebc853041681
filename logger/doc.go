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

// Package logger is the central log for the application. Entries are made
// with a tag, naming the part of the program making the entry, and a detail.
//
//	logger.Log(logger.Allow, "broadcast", "subscriber connected")
//	logger.Logf(logger.Allow, "sdl", "controller: %s", name)
//
// Repeated entries are not added to the log. Instead, the repeat count of the
// most recent entry is increased. The log has a maximum number of entries and
// the oldest entries are forgotten as new ones are made.
//
// The log can be echoed to an io.Writer as entries are added with SetEcho().
// Entries are never printed unless an echo writer has been set.
//
// The Permission argument of the Log() and Logf() functions allows the caller
// to decide whether a log entry should be made at all. logger.Allow is the
// permission to use when an entry should always be made.
package logger
