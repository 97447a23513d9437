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

package prefs

import (
	"maps"
	"slices"
	"sync"

	"github.com/emucore/emucore/curated"
	"github.com/emucore/emucore/logger"
)

// Error patterns.
const (
	DuplicateKey = "prefs: duplicate key (%s)"
	UnknownKey   = "prefs: unknown key (%s)"
	SetFailed    = "prefs: %s: %v"
)

// Collection is a set of preferences, each identified by a dotted key.
type Collection struct {
	crit  sync.Mutex
	prefs map[string]Pref

	// keys that were set from the command line stack
	commandLine map[string]bool
}

// NewCollection is the preferred method of initialisation for the
// Collection type.
func NewCollection() *Collection {
	return &Collection{
		prefs:       make(map[string]Pref),
		commandLine: make(map[string]bool),
	}
}

// Add a preference to the collection. If the top group of the command line
// stack has a value for the key, the preference is set to that value.
func (c *Collection) Add(key string, p Pref) error {
	c.crit.Lock()
	if _, ok := c.prefs[key]; ok {
		c.crit.Unlock()
		return curated.Errorf(DuplicateKey, key)
	}
	c.prefs[key] = p
	c.crit.Unlock()

	if ok, v := GetCommandLinePref(key); ok {
		if err := p.Set(v); err != nil {
			return curated.Errorf(SetFailed, key, err)
		}
		c.crit.Lock()
		c.commandLine[key] = true
		c.crit.Unlock()
	}

	return nil
}

func (c *Collection) fromCommandLine(key string) bool {
	c.crit.Lock()
	defer c.crit.Unlock()
	return c.commandLine[key]
}

// Lookup returns the preference for the key.
func (c *Collection) Lookup(key string) (Pref, bool) {
	c.crit.Lock()
	defer c.crit.Unlock()
	p, ok := c.prefs[key]
	return p, ok
}

// Set the preference for the key.
func (c *Collection) Set(key string, v Value) error {
	p, ok := c.Lookup(key)
	if !ok {
		return curated.Errorf(UnknownKey, key)
	}
	if err := p.Set(v); err != nil {
		return curated.Errorf(SetFailed, key, err)
	}
	logger.Logf(logger.Allow, "prefs", "%s = %s", key, p)
	return nil
}

// Keys returns the keys in the collection in sorted order.
func (c *Collection) Keys() []string {
	c.crit.Lock()
	defer c.crit.Unlock()
	return slices.Sorted(maps.Keys(c.prefs))
}

// Reset all preferences in the collection.
func (c *Collection) Reset() error {
	for _, k := range c.Keys() {
		p, _ := c.Lookup(k)
		if err := p.Reset(); err != nil {
			return curated.Errorf(SetFailed, k, err)
		}
	}
	return nil
}
