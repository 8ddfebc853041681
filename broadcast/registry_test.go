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

package broadcast_test

import (
	"testing"

	"github.com/jetsetilly/padcast/broadcast"
	"github.com/jetsetilly/padcast/test"
)

func TestRegistry(t *testing.T) {
	reg := broadcast.NewRegistry()
	a := &fakeSubscriber{id: "a"}
	b := &fakeSubscriber{id: "b"}

	test.ExpectEquality(t, reg.Len(), 0)
	test.ExpectEquality(t, reg.Add(a), true)
	test.ExpectEquality(t, reg.Add(a), false)
	test.ExpectEquality(t, reg.Add(&fakeSubscriber{id: "a"}), false)
	test.ExpectEquality(t, reg.Add(b), true)
	test.ExpectEquality(t, reg.Len(), 2)
	test.ExpectEquality(t, reg.Contains("a"), true)

	test.ExpectEquality(t, reg.Remove(a), true)
	test.ExpectEquality(t, reg.Remove(a), false)
	test.ExpectEquality(t, reg.Len(), 1)
	test.ExpectEquality(t, reg.Contains("a"), false)
	test.ExpectEquality(t, reg.Contains("b"), true)

	// removing an unknown subscriber is not an error
	test.ExpectEquality(t, reg.Remove(&fakeSubscriber{id: "z"}), false)
}

func TestRegistryOrder(t *testing.T) {
	reg := broadcast.NewRegistry()
	for _, id := range []string{"a", "b", "c", "d"} {
		reg.Add(&fakeSubscriber{id: id})
	}
	reg.Remove(&fakeSubscriber{id: "b"})

	var s string
	reg.ForEach(func(sub broadcast.Subscriber) {
		s += sub.ID()
	})
	test.ExpectEquality(t, s, "acd")

	// re-adding places the subscriber at the end
	reg.Add(&fakeSubscriber{id: "b"})
	s = ""
	reg.ForEach(func(sub broadcast.Subscriber) {
		s += sub.ID()
	})
	test.ExpectEquality(t, s, "acdb")
}

func TestRegistryRemoveDuringIteration(t *testing.T) {
	reg := broadcast.NewRegistry()
	subs := []*fakeSubscriber{{id: "a"}, {id: "b"}, {id: "c"}}
	for _, sub := range subs {
		reg.Add(sub)
	}

	// every subscriber is visited even though each one removes itself and
	// the subscriber after it
	var visited int
	reg.ForEach(func(sub broadcast.Subscriber) {
		visited++
		reg.Remove(sub)
		for i := range subs {
			if subs[i].id == sub.ID() && i+1 < len(subs) {
				reg.Remove(subs[i+1])
			}
		}
	})
	test.ExpectEquality(t, visited, 3)
	test.ExpectEquality(t, reg.Len(), 0)

	// adding during iteration does not extend the iteration
	reg.Add(&fakeSubscriber{id: "x"})
	visited = 0
	reg.ForEach(func(sub broadcast.Subscriber) {
		visited++
		reg.Add(&fakeSubscriber{id: sub.ID() + "x"})
	})
	test.ExpectEquality(t, visited, 1)
	test.ExpectEquality(t, reg.Len(), 2)
}
