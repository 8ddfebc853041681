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

//go:build assertions

package assert

import "fmt"

// Enabled is true if the program has been built with the "assertions" tag.
const Enabled = true

// Owner records the goroutine that owns a resource.
type Owner struct {
	id uint64
}

// Claim ownership for the calling goroutine.
func (o *Owner) Claim() {
	o.id = GetGoRoutineID()
}

// Check panics if the calling goroutine is not the owner. An Owner that has
// not been claimed is claimed by the first goroutine to call Check().
func (o *Owner) Check(what string) {
	id := GetGoRoutineID()
	if o.id == 0 {
		o.id = id
		return
	}
	if o.id != id {
		panic(fmt.Sprintf("assert: %s owned by goroutine %d but used by goroutine %d", what, o.id, id))
	}
}
