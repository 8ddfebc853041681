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
	"errors"
	"io"
	"time"

	"github.com/jetsetilly/padcast/curated"
	"github.com/jetsetilly/padcast/logger"
	"github.com/jetsetilly/padcast/userinput"
	"github.com/pkg/term"
)

// InitialisationError is returned by Open() when the terminal cannot be
// prepared.
const InitialisationError = "terminal: initialisation: %v"

// DefaultDevice is the terminal used when no other device is specified.
const DefaultDevice = "/dev/tty"

// Terminal implements the userinput.Source interface.
type Terminal struct {
	device string
	t      *term.Term
	dec    decoder
	buf    []byte
}

// Open the terminal device and put it into raw mode.
func Open(device string) (*Terminal, error) {
	if device == "" {
		device = DefaultDevice
	}

	t, err := term.Open(device, term.RawMode)
	if err != nil {
		return nil, curated.Errorf(InitialisationError, err)
	}

	// reads return after a short time even if there is no input. SDL's
	// PollEvent() behaves the same way
	err = t.SetReadTimeout(time.Millisecond)
	if err != nil {
		_ = t.Restore()
		_ = t.Close()
		return nil, curated.Errorf(InitialisationError, err)
	}

	logger.Logf(logger.Allow, "terminal", "reading keys from %s", device)

	return &Terminal{
		device: device,
		t:      t,
		buf:    make([]byte, 64),
	}, nil
}

// Name implements the userinput.Named interface.
func (trm *Terminal) Name() string {
	return trm.device
}

// Poll implements the userinput.Source interface.
func (trm *Terminal) Poll() ([]userinput.Event, error) {
	if trm.t == nil {
		return nil, nil
	}

	n, err := trm.t.Read(trm.buf)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}

	return trm.dec.decode(trm.buf[:n]), nil
}

// Close implements the userinput.Source interface. The terminal is returned
// to the mode it was in before Open() was called.
func (trm *Terminal) Close() error {
	if trm.t == nil {
		return nil
	}
	t := trm.t
	trm.t = nil

	err := t.Restore()
	if cerr := t.Close(); err == nil {
		err = cerr
	}
	return err
}
