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

package termpad

import (
	"testing"

	"github.com/jetsetilly/padcast/test"
	"github.com/jetsetilly/padcast/userinput"
)

func expectEvents(t *testing.T, got []userinput.Event, want ...userinput.Event) {
	t.Helper()
	test.DemandEquality(t, len(got), len(want))
	for i := range want {
		test.ExpectEquality(t, got[i], want[i], i)
	}
}

func down(b userinput.Button) userinput.Event {
	return userinput.EventButtonDown{Button: b}
}

func up(b userinput.Button) userinput.Event {
	return userinput.EventButtonUp{Button: b}
}

func TestFaceButtons(t *testing.T) {
	var dec decoder
	expectEvents(t, dec.decode([]byte("aY")),
		down(userinput.ButtonA), up(userinput.ButtonA),
		down(userinput.ButtonY), up(userinput.ButtonY),
	)
}

func TestCursorKeys(t *testing.T) {
	var dec decoder
	expectEvents(t, dec.decode([]byte("\x1b[A\x1b[B\x1b[C\x1b[D")),
		down(userinput.ButtonDPadUp), up(userinput.ButtonDPadUp),
		down(userinput.ButtonDPadDown), up(userinput.ButtonDPadDown),
		down(userinput.ButtonDPadRight), up(userinput.ButtonDPadRight),
		down(userinput.ButtonDPadLeft), up(userinput.ButtonDPadLeft),
	)
}

func TestBackChord(t *testing.T) {
	var dec decoder

	// back is held across calls to decode()
	expectEvents(t, dec.decode([]byte(" ")), down(userinput.ButtonBack))
	expectEvents(t, dec.decode([]byte("\x1b[A")),
		down(userinput.ButtonDPadUp), up(userinput.ButtonDPadUp),
	)
	expectEvents(t, dec.decode([]byte("a")),
		down(userinput.ButtonA), up(userinput.ButtonA),
	)

	// enter releases back before start is pressed
	expectEvents(t, dec.decode([]byte("\r")),
		up(userinput.ButtonBack),
		down(userinput.ButtonStart), up(userinput.ButtonStart),
	)

	// nothing to release
	expectEvents(t, dec.decode([]byte("z")))
}

func TestBackTwice(t *testing.T) {
	var dec decoder
	expectEvents(t, dec.decode([]byte("  ")),
		down(userinput.ButtonBack),
		up(userinput.ButtonBack),
		down(userinput.ButtonBack),
	)
	expectEvents(t, dec.decode([]byte("?")), up(userinput.ButtonBack))
}

func TestQuit(t *testing.T) {
	var dec decoder
	expectEvents(t, dec.decode([]byte(" q")),
		down(userinput.ButtonBack),
		up(userinput.ButtonBack),
		userinput.EventQuit{},
	)
	expectEvents(t, dec.decode([]byte{keyInterrupt}), userinput.EventQuit{})
}

func TestIncompleteEscape(t *testing.T) {
	var dec decoder
	expectEvents(t, dec.decode([]byte("\x1b")))
	expectEvents(t, dec.decode([]byte("\x1b[Zb")),
		down(userinput.ButtonB), up(userinput.ButtonB),
	)
}
