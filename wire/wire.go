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

// Package wire converts userinput events to the JSON text sent to
// subscribers. The format is fixed:
//
//	{"type":"button_down","button":0}
//	{"type":"button_up","button":0}
//	{"type":"axis","axis":1,"value":-32768}
//
// Key order and key names must not change. Existing subscribers depend on
// them.
package wire

import (
	"encoding/json"

	"github.com/jetsetilly/padcast/curated"
	"github.com/jetsetilly/padcast/userinput"
)

// UnencodableEvent is returned by Encode() for events that have no wire form.
const UnencodableEvent = "wire: event has no wire form: %T"

// Type values used in the "type" field.
const (
	TypeButtonDown = "button_down"
	TypeButtonUp   = "button_up"
	TypeAxis       = "axis"
)

// field order of the structs is the key order in the encoded text.
type buttonMsg struct {
	Type   string `json:"type"`
	Button uint8  `json:"button"`
}

type axisMsg struct {
	Type  string `json:"type"`
	Axis  uint8  `json:"axis"`
	Value int16  `json:"value"`
}

// Encode returns the JSON text for the event.
func Encode(ev userinput.Event) (string, error) {
	var msg any

	switch ev := ev.(type) {
	case userinput.EventButtonDown:
		msg = buttonMsg{Type: TypeButtonDown, Button: uint8(ev.Button)}
	case userinput.EventButtonUp:
		msg = buttonMsg{Type: TypeButtonUp, Button: uint8(ev.Button)}
	case userinput.EventAxisMotion:
		msg = axisMsg{Type: TypeAxis, Axis: uint8(ev.Axis), Value: ev.Value}
	default:
		return "", curated.Errorf(UnencodableEvent, ev)
	}

	b, err := json.Marshal(msg)
	if err != nil {
		return "", err
	}

	return string(b), nil
}
