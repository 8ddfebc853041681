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

import "github.com/jetsetilly/padcast/userinput"

// ASCII codes of interest.
const (
	keyInterrupt      = 3
	keyLineFeed       = 10
	keyCarriageReturn = 13
	keyEsc            = 27
	keySpace          = ' '
)

// characters following keyEsc for the cursor keys.
const (
	escCursor      = '['
	cursorUp       = 'A'
	cursorDown     = 'B'
	cursorForward  = 'C'
	cursorBackward = 'D'
)

// decoder turns terminal input into controller events. The decoder keeps
// the state of the Back button between calls to decode().
type decoder struct {
	backHeld bool
}

// press produces events for a button which is released immediately.
func (dec *decoder) press(events []userinput.Event, b userinput.Button) []userinput.Event {
	return append(events,
		userinput.EventButtonDown{Button: b},
		userinput.EventButtonUp{Button: b},
	)
}

// releaseBack produces the deferred up event for the Back button.
func (dec *decoder) releaseBack(events []userinput.Event) []userinput.Event {
	if dec.backHeld {
		dec.backHeld = false
		events = append(events, userinput.EventButtonUp{Button: userinput.ButtonBack})
	}
	return events
}

// decode input from the terminal. input is expected to be the result of a
// single read and so escape sequences are not split across calls.
func (dec *decoder) decode(input []byte) []userinput.Event {
	var events []userinput.Event

	for i := 0; i < len(input); i++ {
		c := input[i]

		switch c {
		case keyEsc:
			if i+2 < len(input) && input[i+1] == escCursor {
				var b userinput.Button
				switch input[i+2] {
				case cursorUp:
					b = userinput.ButtonDPadUp
				case cursorDown:
					b = userinput.ButtonDPadDown
				case cursorForward:
					b = userinput.ButtonDPadRight
				case cursorBackward:
					b = userinput.ButtonDPadLeft
				default:
					// unrecognised escape sequence
					i += 2
					events = dec.releaseBack(events)
					continue
				}
				i += 2
				events = dec.press(events, b)
				continue
			}
			events = dec.releaseBack(events)

		case 'a', 'A':
			events = dec.press(events, userinput.ButtonA)
		case 'b', 'B':
			events = dec.press(events, userinput.ButtonB)
		case 'x', 'X':
			events = dec.press(events, userinput.ButtonX)
		case 'y', 'Y':
			events = dec.press(events, userinput.ButtonY)

		case keySpace:
			events = dec.releaseBack(events)
			events = append(events, userinput.EventButtonDown{Button: userinput.ButtonBack})
			dec.backHeld = true

		case keyCarriageReturn, keyLineFeed:
			events = dec.releaseBack(events)
			events = dec.press(events, userinput.ButtonStart)

		case 'q', 'Q', keyInterrupt:
			events = dec.releaseBack(events)
			events = append(events, userinput.EventQuit{})

		default:
			events = dec.releaseBack(events)
		}
	}

	return events
}
