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

// Package statsview serves graphs of the program's runtime statistics. It is
// only available when the statsview build tag is present.
//
// After launch, the graphs are viewable at:
//
//	localhost:12600/debug/statsview
//
// And the standard Go pprof statistics at:
//
//	localhost:12600/debug/pprof/
//
// A long running broadcaster with many subscribers can be watched for
// goroutine and heap growth this way.
package statsview
