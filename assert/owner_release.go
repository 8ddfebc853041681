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

//go:build !assertions

package assert

// Enabled is true if the program has been built with the "assertions" tag.
const Enabled = false

// Owner records the goroutine that owns a resource. Without the "assertions"
// build tag nothing is recorded.
type Owner struct{}

// Claim ownership for the calling goroutine.
func (o *Owner) Claim() {}

// Check panics if the calling goroutine is not the owner.
func (o *Owner) Check(what string) {}
