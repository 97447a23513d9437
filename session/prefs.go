// This file is part of emucore.
//
// emucore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// emucore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with emucore.  If not, see <https://www.gnu.org/licenses/>.

package session

import (
	"github.com/emucore/emucore/prefs"
)

// Preferences for the session.
type Preferences struct {
	// emulation speed as a percentage of the speed of the real device
	Speed prefs.Int

	// run the CPU in its own goroutine
	Threaded prefs.Bool

	// the longest time the CPU engine sleeps for when the emulated device
	// is idle, in milliseconds
	SleepMS prefs.Int

	// fuzz harness configuration
	HordeDepth       prefs.Int
	HordeMaxGremlins prefs.Int
}

// List of preference keys.
const (
	PrefSpeed            = "emulation.speed"
	PrefThreaded         = "session.threaded"
	PrefSleepMS          = "session.sleepms"
	PrefHordeDepth       = "horde.depth"
	PrefHordeMaxGremlins = "horde.maxgremlins"
)

// NewPreferences is the preferred method of initialisation for the
// Preferences type. If the collection is not nil, the preferences are added
// to it.
func NewPreferences(c *prefs.Collection) (*Preferences, error) {
	p := &Preferences{}

	// earlier versions stored the speed as a multiplier
	p.Speed.SetHookPost(func(v prefs.Value) error {
		if m := migrateSpeed(v.(int)); m != v.(int) {
			return p.Speed.Set(m)
		}
		return nil
	})

	p.SetDefaults()

	if c != nil {
		for key, v := range map[string]prefs.Pref{
			PrefSpeed:            &p.Speed,
			PrefThreaded:         &p.Threaded,
			PrefSleepMS:          &p.SleepMS,
			PrefHordeDepth:       &p.HordeDepth,
			PrefHordeMaxGremlins: &p.HordeMaxGremlins,
		} {
			if err := c.Add(key, v); err != nil {
				return nil, err
			}
		}
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	_ = p.Speed.Set(100)
	_ = p.Threaded.Set(true)
	_ = p.SleepMS.Set(10)
	_ = p.HordeDepth.Set(1000)
	_ = p.HordeMaxGremlins.Set(10)
}

// speed as a percentage. never less than one
func (p *Preferences) speed() int {
	return max(1, p.Speed.Get().(int))
}

func migrateSpeed(speed int) int {
	switch speed {
	case 1, 2, 4, 8:
		return speed * 100
	}
	return speed
}
