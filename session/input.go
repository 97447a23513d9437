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
	"github.com/emucore/emucore/eventqueue"
	"github.com/emucore/emucore/govern"
	"github.com/emucore/emucore/logger"
	"github.com/emucore/emucore/userinput"
)

// user input is not accepted while the emulation is being driven by
// something other than the user
func (s *Session) canBotherCPU() bool {
	if s.harness != nil && s.harness.IsOn() {
		return false
	}
	if s.collab.Playback != nil && s.collab.Playback.Replaying() {
		return false
	}
	if s.collab.Minimizer != nil && s.collab.Minimizer.IsOn() {
		return false
	}
	return true
}

// make the emulated OS notice new input. a dozing CPU engine is woken and
// the OS is called into if the CPU can be stopped on a system call
func (s *Session) wakeUpCPU() {
	s.wakeSleep()

	if s.collab.OS == nil {
		return
	}

	st := NewStopper(s, govern.StopOnSysCall)
	defer st.Release()

	if st.CanCall() {
		if err := s.collab.OS.Wakeup(); err != nil {
			logger.Log(logger.Allow, "session", err)
		}
	}
}

// PostKeyEvent adds a key event to the key queue. The event is dropped if
// the emulation is not accepting user input.
func (s *Session) PostKeyEvent(ev eventqueue.KeyEvent) {
	if !s.canBotherCPU() {
		return
	}
	s.keys.Put(ev)
	s.wakeUpCPU()
}

// HasKeyEvent returns true if the key queue is not empty.
func (s *Session) HasKeyEvent() bool {
	return s.keys.Has()
}

// PeekKeyEvent returns the next key event without removing it from the
// queue.
func (s *Session) PeekKeyEvent() (eventqueue.KeyEvent, bool) {
	return s.keys.Peek()
}

// GetKeyEvent removes and returns the next key event.
func (s *Session) GetKeyEvent() (eventqueue.KeyEvent, bool) {
	return s.keys.Get()
}

// PostPenEvent adds a pen event to the pen queue. The event is dropped if
// the emulation is not accepting user input or if it repeats the previous
// pen-down event.
func (s *Session) PostPenEvent(ev eventqueue.PenEvent) {
	if !s.canBotherCPU() {
		return
	}
	if s.pens.Post(ev) {
		s.wakeUpCPU()
	}
}

// HasPenEvent returns true if the pen queue is not empty.
func (s *Session) HasPenEvent() bool {
	return s.pens.Has()
}

// PeekPenEvent returns the next pen event without removing it from the
// queue.
func (s *Session) PeekPenEvent() (eventqueue.PenEvent, bool) {
	return s.pens.Peek()
}

// GetPenEvent removes and returns the next pen event.
func (s *Session) GetPenEvent() (eventqueue.PenEvent, bool) {
	return s.pens.Get()
}

// SetButtonDown presses a hardware button. Ignored if the emulation is not
// accepting user input.
func (s *Session) SetButtonDown(b userinput.Button) {
	if !s.canBotherCPU() {
		return
	}
	s.buttons.Press(b)
	s.wakeSleep()
}

// SetButtonUp releases a hardware button. A release is always accepted so
// that a button pressed before input was blocked is not stuck down.
func (s *Session) SetButtonUp(b userinput.Button) {
	s.buttons.Release(b)
	s.wakeSleep()
}

// SetButtonTap presses a hardware button and releases it after the press has
// been seen by the emulated device.
func (s *Session) SetButtonTap(b userinput.Button) {
	if !s.canBotherCPU() {
		return
	}
	s.buttons.Tap(b)
	s.wakeSleep()
}

// PollButtonChanges returns the debounced button edges since the previous
// poll. Called periodically by the CPU engine.
func (s *Session) PollButtonChanges() userinput.Changes {
	return s.buttons.Poll(s.prefs.speed())
}

// HasButtonActivity returns true if a button is held down or a change is
// waiting to be reported.
func (s *Session) HasButtonActivity() bool {
	return s.buttons.HasActivity()
}
