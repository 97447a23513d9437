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
	"sync/atomic"
)

// the number of polls to suppress changes for after an edge, at full speed
// or faster
const fullSpeedCooldown = 5

// Cooldown returns the number of polls for which changes are held off after
// an edge. The emulation speed is a percentage.
//
// At slower emulation speeds each poll takes longer in wall-clock terms, so
// the number of polls is reduced to keep the debounce time roughly
// constant (10 to 16 milliseconds).
func Cooldown(speed int) int {
	if speed > 0 && speed < 100 {
		return max(1, speed*fullSpeedCooldown/100+1)
	}
	return fullSpeedCooldown
}

// State is the debounced state of the hardware buttons.
type State struct {
	// written by the control thread and read by the CPU thread
	current         atomic.Uint32
	taps            atomic.Uint32
	releaseRequests atomic.Uint32

	// written by the CPU thread. HasActivity() reads it from any thread
	autoRelease atomic.Uint32

	// only accessed by the CPU thread
	previous uint32
	cooldown int
}

// Press the button. The press is reported by the next poll that is not
// cooling down.
func (s *State) Press(b Button) {
	s.current.Or(uint32(MaskOf(b)))
}

// Release the button. The release is not applied until the press has been
// reported by a poll.
func (s *State) Release(b Button) {
	s.releaseRequests.Or(uint32(MaskOf(b)))
}

// Tap presses the button and releases it automatically on the poll after
// the press is reported. Used for keyboard shortcuts and menu actions where
// a quick press/release pair would otherwise be lost between polls.
func (s *State) Tap(b Button) {
	m := uint32(MaskOf(b))
	s.taps.Or(m)
	s.current.Or(m)
}

// Poll returns the button edges since the previous poll. Must only be called
// from the CPU thread. The speed argument is the emulation speed as a
// percentage.
func (s *State) Poll(speed int) Changes {
	if s.cooldown > 0 {
		s.cooldown--
		return Changes{}
	}

	// release any buttons that were tapped on a previous poll. the edge
	// detection below will see the release
	if auto := s.autoRelease.Swap(0); auto != 0 {
		s.current.And(^auto)
	}

	// apply release requests but only for buttons whose press has already
	// been reported. the other requests remain pending
	if req := s.releaseRequests.Swap(0); req != 0 {
		if canRelease := req & s.previous; canRelease != 0 {
			s.current.And(^canRelease)
		}
		if deferred := req &^ s.previous; deferred != 0 {
			s.releaseRequests.Or(deferred)
		}
	}

	current := s.current.Load()
	changed := current ^ s.previous

	c := Changes{
		Pressed:  Mask(changed & current),
		Released: Mask(changed & s.previous),
	}

	if !c.Empty() {
		s.cooldown = Cooldown(speed)
	}

	// taps that are currently pressed are released on the next poll
	s.autoRelease.Store(s.taps.Swap(0) & current)

	s.previous = current

	return c
}

// HasActivity returns true if any button is pressed or there is any pending
// button activity. Safe to call from any thread.
func (s *State) HasActivity() bool {
	return s.current.Load() != 0 || s.taps.Load() != 0 ||
		s.releaseRequests.Load() != 0 || s.autoRelease.Load() != 0
}

// Clear all button state.
func (s *State) Clear() {
	s.current.Store(0)
	s.taps.Store(0)
	s.releaseRequests.Store(0)
	s.autoRelease.Store(0)
	s.previous = 0
	s.cooldown = 0
}

// CooldownRemaining returns the number of polls that will return no changes.
func (s *State) CooldownRemaining() int {
	return s.cooldown
}
