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
	"github.com/emucore/emucore/dialog"
	"github.com/emucore/emucore/govern"
	"github.com/emucore/emucore/logger"
)

// BlockOnDialog shows a dialog and returns the button used to dismiss it.
// Called by the CPU thread.
//
// When the session is threaded the dialog is handed to the dialog host and
// the CPU thread waits for the control thread to complete it. The wait ends
// with dialog.ItemNone if the CPU is stopped in the meantime.
//
// When the session is not threaded the callback is run immediately. The
// same is true during a reentrant call because the control thread might be
// the one making the call.
func (s *Session) BlockOnDialog(callback dialog.Callback, params any) dialog.ButtonID {
	s.crit.Lock()

	if !s.threaded || s.collab.Dialogs == nil || s.nestLevel > 0 {
		oldState := s.state
		s.state = govern.BlockedOnUI
		s.cond.Broadcast()
		s.crit.Unlock()

		// the CPU must not run while the dialog is open
		st := NewStopper(s, govern.StopNow)
		id := callback(params)
		st.Release()

		s.crit.Lock()
		s.state = oldState
		s.cond.Broadcast()
		s.crit.Unlock()

		return id
	}

	req := dialog.NewRequest(callback, params)
	s.collab.Dialogs.ScheduleDialog(req)

	oldState := s.state
	s.state = govern.BlockedOnUI
	s.cond.Broadcast()

	for !req.Done() && !s.stop {
		s.cond.Wait()
	}

	s.state = oldState
	s.cond.Broadcast()
	s.crit.Unlock()

	id := req.Result()
	logger.Logf(logger.Allow, "dialog", "dismissed with %s", id)

	return id
}

// UnblockDialog is called by the control thread when it has completed a
// dialog request.
func (s *Session) UnblockDialog() {
	s.crit.Lock()
	defer s.crit.Unlock()
	s.cond.Broadcast()
}
