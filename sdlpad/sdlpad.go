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

package sdlpad

import (
	"github.com/jetsetilly/padcast/curated"
	"github.com/jetsetilly/padcast/logger"
	"github.com/jetsetilly/padcast/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// Sentinel error patterns.
const (
	InitialisationError = "sdl: initialisation: %v"
	NoControllerFound   = "sdl: no controller found"
)

// Pad is an open game controller. It implements the userinput.Source
// interface.
type Pad struct {
	pad    *sdl.GameController
	closed bool

	// whether to open a controller that is connected after the Pad was
	// created
	hotplug bool
}

// Open initialises SDL and opens the first game controller. Returns an error
// with the NoControllerFound pattern if there is no game controller. SDL is
// shutdown again in that case.
func Open() (*Pad, error) {
	p, err := open(false)
	if err != nil {
		return nil, err
	}

	if p.pad == nil {
		p.Close()
		return nil, curated.Errorf(NoControllerFound)
	}

	return p, nil
}

// OpenOptional is like Open() but it is not an error for there to be no game
// controller. The first controller to be connected afterwards will be used.
func OpenOptional() (*Pad, error) {
	p, err := open(true)
	if err != nil {
		return nil, err
	}

	if p.pad == nil {
		logger.Log(logger.Allow, "sdl", "no controller found. waiting for one to be connected")
	}

	return p, nil
}

func open(hotplug bool) (*Pad, error) {
	sdl.SetHint(sdl.HINT_NO_SIGNAL_HANDLERS, "1")

	err := sdl.Init(sdl.INIT_GAMECONTROLLER)
	if err != nil {
		return nil, curated.Errorf(InitialisationError, err)
	}

	v := sdl.Version{}
	sdl.VERSION(&v)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", v.Major, v.Minor, v.Patch)

	p := &Pad{
		hotplug: hotplug,
	}

	for i := 0; i < sdl.NumJoysticks(); i++ {
		if p.openController(i) {
			break
		}
	}

	return p, nil
}

// open the controller at the device index. returns true if the controller
// was opened
func (p *Pad) openController(idx int) bool {
	if !sdl.IsGameController(idx) {
		logger.Logf(logger.Allow, "sdl", "device %d is not a game controller", idx)
		return false
	}

	pad := sdl.GameControllerOpen(idx)
	if pad == nil {
		logger.Logf(logger.Allow, "sdl", "device %d: %v", idx, sdl.GetError())
		return false
	}

	p.pad = pad
	logger.Logf(logger.Allow, "sdl", "controller: %s", pad.Name())

	return true
}

// Name implements the userinput.Named interface.
func (p *Pad) Name() string {
	if p.pad == nil {
		return "no controller"
	}
	return p.pad.Name()
}

// Poll implements the userinput.Source interface.
func (p *Pad) Poll() ([]userinput.Event, error) {
	if p.closed {
		return nil, nil
	}

	var events []userinput.Event

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		if dev, ok := ev.(*sdl.ControllerDeviceEvent); ok {
			p.device(dev)
			continue
		}

		if e, ok := translate(ev); ok {
			events = append(events, e)
		}
	}

	return events, nil
}

// handle controllers being connected and disconnected
func (p *Pad) device(ev *sdl.ControllerDeviceEvent) {
	switch ev.Type {
	case sdl.CONTROLLERDEVICEADDED:
		if p.pad == nil && p.hotplug {
			// the Which field is the device index for added devices
			p.openController(int(ev.Which))
		}
	case sdl.CONTROLLERDEVICEREMOVED:
		// the Which field is the instance ID for removed devices
		if p.pad != nil {
			if id, err := p.pad.Joystick().InstanceID(); err == nil && id == ev.Which {
				logger.Logf(logger.Allow, "sdl", "controller removed: %s", p.pad.Name())
				p.pad.Close()
				p.pad = nil
			}
		}
	}
}

// translate a single SDL event. returns false if the event is not of
// interest
func translate(ev sdl.Event) (userinput.Event, bool) {
	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		return userinput.EventQuit{}, true

	case *sdl.ControllerButtonEvent:
		b := userinput.Button(ev.Button)
		if ev.State == sdl.PRESSED {
			return userinput.EventButtonDown{Button: b}, true
		}
		return userinput.EventButtonUp{Button: b}, true

	case *sdl.ControllerAxisEvent:
		return userinput.EventAxisMotion{
			Axis:  userinput.Axis(ev.Axis),
			Value: ev.Value,
		}, true
	}

	return nil, false
}

// Close implements the userinput.Source interface.
func (p *Pad) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true

	if p.pad != nil {
		p.pad.Close()
		p.pad = nil
	}
	sdl.Quit()

	return nil
}
