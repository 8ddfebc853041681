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

package preferences

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/jetsetilly/padcast/broadcast/websocket"
	"github.com/jetsetilly/padcast/curated"
	"github.com/jetsetilly/padcast/killchord"
	"github.com/jetsetilly/padcast/mainloop"
	"github.com/jetsetilly/padcast/paths"
	"github.com/jetsetilly/padcast/prefs"
	"github.com/jetsetilly/padcast/userinput"
)

// Preferences defines and collates all the preference values used by padcast.
type Preferences struct {
	dsk *prefs.Disk

	// address of the websocket listener. an empty host means all interfaces
	Port prefs.Int
	Host prefs.String

	// length of one main loop iteration
	Tick prefs.Duration

	// deadline for writing a single message to a subscriber
	WriteTimeout prefs.Duration

	// buttons making up the kill chord. values are button names as
	// understood by userinput.ParseButton()
	Modifier prefs.String
	Trigger  prefs.String
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. Values are loaded from the preferences file, which is created if it
// does not exist.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return newPreferences(pth)
}

func newPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.Port.SetHookPost(func(v prefs.Value) error {
		if n := v.(int); n < 0 || n > 65535 {
			return fmt.Errorf("preferences: port out of range (%d)", n)
		}
		return nil
	})

	validButton := func(v prefs.Value) error {
		_, err := userinput.ParseButton(v.(string))
		return err
	}
	p.Modifier.SetHookPost(validButton)
	p.Trigger.SetHookPost(validButton)

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("padcast.port", &p.Port)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("padcast.host", &p.Host)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("padcast.tick", &p.Tick)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("padcast.writeTimeout", &p.WriteTimeout)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("killchord.modifier", &p.Modifier)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("killchord.trigger", &p.Trigger)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	_ = p.Port.Set(websocket.DefaultPort)
	_ = p.Host.Set("")
	_ = p.Tick.Set(mainloop.DefaultTick)
	_ = p.WriteTimeout.Set(websocket.DefaultConfig().WriteTimeout)
	_ = p.Modifier.Set(killchord.DefaultModifier.String())
	_ = p.Trigger.Set(killchord.DefaultTrigger.String())
}

// Load current preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Addr returns the listening address in the form expected by net.Listen().
func (p *Preferences) Addr() string {
	return net.JoinHostPort(p.Host.Get().(string), strconv.Itoa(p.Port.Get().(int)))
}

// ChordButtons returns the modifier and trigger buttons of the kill chord.
func (p *Preferences) ChordButtons() (userinput.Button, userinput.Button) {
	// the hooks have already checked that the values are valid
	m, _ := userinput.ParseButton(p.Modifier.Get().(string))
	t, _ := userinput.ParseButton(p.Trigger.Get().(string))
	return m, t
}

// TickDuration returns the value of the Tick preference.
func (p *Preferences) TickDuration() time.Duration {
	return p.Tick.Get().(time.Duration)
}

// WriteTimeoutDuration returns the value of the WriteTimeout preference.
func (p *Preferences) WriteTimeoutDuration() time.Duration {
	return p.WriteTimeout.Get().(time.Duration)
}
