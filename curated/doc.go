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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. Patterns should be stored as a const string in the
// package that creates the error, suitably named and commented. For example:
//
//	const NoControllerFound = "sdl: no controller found"
//
//	e := curated.Errorf(NoControllerFound)
//	if curated.Is(e, NoControllerFound) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if the pattern occurs anywhere in
// the error chain, including errors wrapped with the %w verb of fmt.Errorf().
//
//	e := curated.Errorf("transport: context unusable: %v", err)
//	f := curated.Errorf("loop: %v", e)
//
//	curated.Has(f, "transport: context unusable: %v") // true
//	curated.Is(f, "transport: context unusable: %v")  // false
//
// The Error() function for curated errors normalises the chain such that it
// does not contain duplicate adjacent parts. This alleviates the problem of
// when and how to wrap errors. The message of
//
//	curated.Errorf("sdl: %v", curated.Errorf("sdl: %v", "no controller"))
//
// is "sdl: no controller" and not "sdl: sdl: no controller". For the purposes
// of this package we think of chains as being composed of parts separated by
// the sub-string ': ' as suggested on p239 of "The Go Programming Language"
// (Donovan, Kernighan).
package curated
