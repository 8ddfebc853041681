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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Arguments are given to a Modes instance with NewArgs() and then parsed with
// Parse(). Flags for the current mode are added before the call to Parse():
//
//	md := &modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("SERVE", "CHORD", "VERSION")
//	p, err := md.Parse()
//
// After parsing, Mode() returns the selected sub-mode. The first sub-mode is
// the default and is selected if the first argument is not a sub-mode name.
// All sub-mode comparisons are case insensitive.
//
// A sub-mode will usually have its own flags. NewMode() starts a new set of
// flags which are parsed from the arguments following the sub-mode name:
//
//	md.NewMode()
//	port := md.AddInt("port", 9002, "websocket port")
//	p, err = md.Parse()
//
// Parse() returns ParseHelp if help was requested. The help message has
// already been written to the Output writer by then and the program should
// end without printing anything else.
package modalflag
