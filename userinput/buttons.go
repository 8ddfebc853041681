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

package userinput

import (
	"fmt"
	"strconv"
	"strings"
)

// Button identifies a controller button. Values are the same as the
// SDL_GameControllerButton enumeration.
type Button uint8

// List of valid Button values.
const (
	ButtonA Button = iota
	ButtonB
	ButtonX
	ButtonY
	ButtonBack
	ButtonGuide
	ButtonStart
	ButtonLeftStick
	ButtonRightStick
	ButtonLeftShoulder
	ButtonRightShoulder
	ButtonDPadUp
	ButtonDPadDown
	ButtonDPadLeft
	ButtonDPadRight
)

var buttonNames = []string{
	"a", "b", "x", "y",
	"back", "guide", "start",
	"leftstick", "rightstick",
	"leftshoulder", "rightshoulder",
	"dpadup", "dpaddown", "dpadleft", "dpadright",
}

func (b Button) String() string {
	if int(b) < len(buttonNames) {
		return buttonNames[b]
	}
	return fmt.Sprintf("button%d", uint8(b))
}

// ParseButton returns the Button named by s. Names are those returned by the
// String() function and are case insensitive. A decimal button number is
// also accepted.
func ParseButton(s string) (Button, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range buttonNames {
		if n == s {
			return Button(i), nil
		}
	}

	if n, err := strconv.ParseUint(s, 10, 8); err == nil {
		return Button(n), nil
	}

	return 0, fmt.Errorf("userinput: unrecognised button (%s)", s)
}

// Axis identifies an analogue controller axis. Values are the same as the
// SDL_GameControllerAxis enumeration.
type Axis uint8

// List of valid Axis values.
const (
	AxisLeftX Axis = iota
	AxisLeftY
	AxisRightX
	AxisRightY
	AxisTriggerLeft
	AxisTriggerRight
)

var axisNames = []string{
	"leftx", "lefty", "rightx", "righty", "triggerleft", "triggerright",
}

func (a Axis) String() string {
	if int(a) < len(axisNames) {
		return axisNames[a]
	}
	return fmt.Sprintf("axis%d", uint8(a))
}
