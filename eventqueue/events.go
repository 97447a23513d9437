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

package eventqueue

import "fmt"

// KeyEvent is a key press to be delivered to the emulated device.
type KeyEvent struct {
	// character code. zero if the event is for a virtual key
	Char rune

	// virtual key code, if the event is not for a character
	Virtual int

	Modifiers int
}

func (ev KeyEvent) String() string {
	if ev.Char != 0 {
		return fmt.Sprintf("key %q", ev.Char)
	}
	return fmt.Sprintf("vkey %d", ev.Virtual)
}

// PenEvent is a pen (touchscreen) event. Coordinates are in screen pixels.
type PenEvent struct {
	X, Y int
	Down bool
}

// NoPen is the pen event used to mean that there was no previous event.
var NoPen = PenEvent{X: -1, Y: -1, Down: false}

func (ev PenEvent) String() string {
	if ev.Down {
		return fmt.Sprintf("pen down (%d,%d)", ev.X, ev.Y)
	}
	return fmt.Sprintf("pen up (%d,%d)", ev.X, ev.Y)
}
