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

// Package prefs facilitates the storage of preference values on disk. Values
// of the Bool, Int, String and Duration types are added to a Disk instance
// under a key and then loaded from or saved to the preferences file.
//
//	dsk, err := prefs.NewDisk(pth)
//	var port prefs.Int
//	err = dsk.Add("padcast.port", &port)
//	err = dsk.Load(true)
//
// The preferences file is a plain text file. Each line is a key/value pair
// separated by " :: ". Lines for keys that have not been added to a Disk are
// preserved when the file is saved, meaning that more than one Disk can share
// the same file.
//
// Values can also be specified on the command line. A string of the form
//
//	padcast.port::9003; padcast.tick::5ms
//
// is pushed onto the command line stack with PushCommandLineStack(). Values
// on the top of the stack take precedence over values loaded from disk. Each
// value is used once, by the first Disk that has a matching key.
package prefs
