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

package broadcast

import (
	"github.com/jetsetilly/padcast/assert"
)

// Registry is the set of live subscribers. A subscriber appears in the
// registry at most once.
//
// Registry is not safe for concurrent use. It belongs to the goroutine that
// first uses it.
type Registry struct {
	owner assert.Owner

	// insertion ordered list of subscribers and the index of each subscriber
	// ID in that list
	subs []Subscriber
	idx  map[string]int
}

// NewRegistry is the preferred method of initialisation for the Registry type.
func NewRegistry() *Registry {
	return &Registry{
		idx: make(map[string]int),
	}
}

// Add subscriber to the registry. Returns false if a subscriber with the same
// ID is already present, in which case nothing is changed.
func (r *Registry) Add(sub Subscriber) bool {
	r.owner.Check("subscriber registry")

	if _, ok := r.idx[sub.ID()]; ok {
		return false
	}
	r.idx[sub.ID()] = len(r.subs)
	r.subs = append(r.subs, sub)
	return true
}

// Remove subscriber from the registry. Returns false if the subscriber was not
// present.
func (r *Registry) Remove(sub Subscriber) bool {
	r.owner.Check("subscriber registry")

	i, ok := r.idx[sub.ID()]
	if !ok {
		return false
	}
	delete(r.idx, sub.ID())

	// the subs slice is never changed in place. a ForEach() in progress is
	// iterating over the previous slice and is unaffected by the removal
	n := make([]Subscriber, 0, len(r.subs)-1)
	n = append(n, r.subs[:i]...)
	n = append(n, r.subs[i+1:]...)
	r.subs = n

	for j := i; j < len(r.subs); j++ {
		r.idx[r.subs[j].ID()] = j
	}

	return true
}

// Contains returns true if a subscriber with the ID is in the registry.
func (r *Registry) Contains(id string) bool {
	r.owner.Check("subscriber registry")
	_, ok := r.idx[id]
	return ok
}

// Len returns the number of subscribers in the registry.
func (r *Registry) Len() int {
	r.owner.Check("subscriber registry")
	return len(r.subs)
}

// ForEach calls f for every subscriber in the registry as it was at the
// moment ForEach() was called. Subscribers added or removed by f do not
// change which subscribers are visited.
func (r *Registry) ForEach(f func(sub Subscriber)) {
	r.owner.Check("subscriber registry")

	snapshot := r.subs
	for _, sub := range snapshot {
		f(sub)
	}
}
