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

package userinput_test

import (
	"testing"

	"github.com/jetsetilly/padcast/test"
	"github.com/jetsetilly/padcast/userinput"
)

func TestButtonNumbering(t *testing.T) {
	// values must match the SDL game controller layout
	test.ExpectEquality(t, uint8(userinput.ButtonA), 0)
	test.ExpectEquality(t, uint8(userinput.ButtonBack), 4)
	test.ExpectEquality(t, uint8(userinput.ButtonStart), 6)
	test.ExpectEquality(t, uint8(userinput.ButtonDPadUp), 11)
	test.ExpectEquality(t, uint8(userinput.ButtonDPadRight), 14)
	test.ExpectEquality(t, uint8(userinput.AxisTriggerRight), 5)
}

func TestParseButton(t *testing.T) {
	b, err := userinput.ParseButton("Back")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, userinput.ButtonBack)

	b, err = userinput.ParseButton(" dpadup ")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, userinput.ButtonDPadUp)

	b, err = userinput.ParseButton("12")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, userinput.ButtonDPadDown)

	_, err = userinput.ParseButton("turbo")
	test.ExpectFailure(t, err)

	// trailing characters and out of range numbers are not accepted
	_, err = userinput.ParseButton("5abc")
	test.ExpectFailure(t, err)
	_, err = userinput.ParseButton("256")
	test.ExpectFailure(t, err)
	_, err = userinput.ParseButton("-1")
	test.ExpectFailure(t, err)

	// every name parses back to its own button
	for b := userinput.ButtonA; b <= userinput.ButtonDPadRight; b++ {
		p, err := userinput.ParseButton(b.String())
		test.ExpectSuccess(t, err, b)
		test.ExpectEquality(t, p, b, b)
	}
}

func TestEventStrings(t *testing.T) {
	test.ExpectEquality(t, userinput.EventButtonDown{Button: userinput.ButtonA}.String(), "button down: a")
	test.ExpectEquality(t, userinput.EventAxisMotion{Axis: userinput.AxisLeftY, Value: -1}.String(), "axis: lefty -1")
	test.ExpectEquality(t, userinput.Button(99).String(), "button99")
}
