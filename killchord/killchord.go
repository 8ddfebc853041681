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

package killchord

import (
	"io"

	"github.com/jetsetilly/padcast/logger"
	"github.com/jetsetilly/padcast/userinput"
)

// Token is the line written when the chord is detected. It is followed by a
// newline.
const Token = "KILL_EMULATOR"

// Default buttons for the chord.
const (
	DefaultModifier = userinput.ButtonBack
	DefaultTrigger  = userinput.ButtonDPadUp
)

// Detector watches input events for the chord.
type Detector struct {
	out io.Writer

	modifier userinput.Button
	trigger  userinput.Button

	// whether the modifier button is currently held
	modifierHeld bool
}

// NewDetector is the preferred method of initialisation for the Detector
// type. The token is written to out.
func NewDetector(out io.Writer) *Detector {
	return &Detector{
		out:      out,
		modifier: DefaultModifier,
		trigger:  DefaultTrigger,
	}
}

// SetButtons changes the modifier and trigger buttons. Any held modifier is
// forgotten.
func (det *Detector) SetButtons(modifier userinput.Button, trigger userinput.Button) {
	det.modifier = modifier
	det.trigger = trigger
	det.modifierHeld = false
}

// ModifierHeld returns true if the modifier button is currently held.
func (det *Detector) ModifierHeld() bool {
	return det.modifierHeld
}

// Handle the event. Returns true if the event completed the chord, in which
// case the token has been written.
func (det *Detector) Handle(ev userinput.Event) bool {
	switch ev := ev.(type) {
	case userinput.EventButtonDown:
		if ev.Button == det.modifier {
			det.modifierHeld = true
			return false
		}
		if ev.Button == det.trigger && det.modifierHeld {
			det.emit()
			return true
		}
	case userinput.EventButtonUp:
		if ev.Button == det.modifier {
			det.modifierHeld = false
		}
	}
	return false
}

func (det *Detector) emit() {
	logger.Logf(logger.Allow, "killchord", "%s + %s", det.modifier, det.trigger)

	if _, err := io.WriteString(det.out, Token+"\n"); err != nil {
		logger.Logf(logger.Allow, "killchord", "write token: %v", err)
		return
	}

	// the supervising process must see the line immediately
	switch w := det.out.(type) {
	case interface{ Flush() error }:
		if err := w.Flush(); err != nil {
			logger.Logf(logger.Allow, "killchord", "flush token: %v", err)
		}
	case interface{ Sync() error }:
		// os.Stdout returns an error from Sync() when it is a pipe. that is
		// not a problem because pipes are not buffered
		_ = w.Sync()
	}
}
