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

package userinput

import (
	"math/bits"
	"strings"
)

// Button identifies a hardware button on the emulated device.
type Button int

// List of hardware buttons.
const (
	Power Button = iota
	Up
	Down
	App1
	App2
	App3
	App4
	Cradle
	Antenna
	Contrast
	NumButtons
)

func (b Button) String() string {
	switch b {
	case Power:
		return "Power"
	case Up:
		return "Up"
	case Down:
		return "Down"
	case App1:
		return "App1"
	case App2:
		return "App2"
	case App3:
		return "App3"
	case App4:
		return "App4"
	case Cradle:
		return "Cradle"
	case Antenna:
		return "Antenna"
	case Contrast:
		return "Contrast"
	}
	return "Unknown"
}

// Mask is a set of buttons.
type Mask uint32

// MaskOf returns the Mask containing the listed buttons.
func MaskOf(buttons ...Button) Mask {
	var m Mask
	for _, b := range buttons {
		m |= 1 << uint(b)
	}
	return m
}

// Has returns true if the button is in the set.
func (m Mask) Has(b Button) bool {
	return m&(1<<uint(b)) != 0
}

// Buttons returns the buttons in the set, in order.
func (m Mask) Buttons() []Button {
	l := make([]Button, 0, bits.OnesCount32(uint32(m)))
	for b := Button(0); b < NumButtons; b++ {
		if m.Has(b) {
			l = append(l, b)
		}
	}
	return l
}

func (m Mask) String() string {
	if m == 0 {
		return "{}"
	}
	s := make([]string, 0)
	for _, b := range m.Buttons() {
		s = append(s, b.String())
	}
	return "{" + strings.Join(s, ",") + "}"
}

// Changes is the result of a call to Poll().
type Changes struct {
	Pressed  Mask
	Released Mask
}

// Empty returns true if there are no changes.
func (c Changes) Empty() bool {
	return c.Pressed == 0 && c.Released == 0
}
