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
	"time"

	"github.com/emucore/emucore/assert"
	"github.com/emucore/emucore/govern"
	"github.com/emucore/emucore/logger"
	"github.com/emucore/emucore/notifications"
)

// CreateThread prepares the session for running. If the threaded preference
// is set, the CPU is started in its own goroutine. Otherwise the session is
// driven with ExecuteIncremental().
//
// If suspended is true the session starts suspended and must be resumed with
// ResumeThread().
//
// Does nothing if the CPU goroutine already exists.
func (s *Session) CreateThread(suspended bool) {
	s.crit.Lock()
	defer s.crit.Unlock()

	if s.done != nil {
		return
	}

	s.stop = false
	s.ledger.Clear()
	if suspended {
		s.ledger.ByUIThread = 1
	}

	s.threaded = s.prefs.Threaded.Get().(bool)

	if !s.threaded {
		s.state = govern.Suspended
		s.cond.Broadcast()
		return
	}

	if suspended {
		s.state = govern.Suspended
	} else {
		s.state = govern.Running
	}

	s.done = make(chan struct{})
	go s.run(s.done)

	logger.Logf(logger.Allow, "session", "cpu thread created (%s)", s.state)
}

// DestroyThread stops the CPU. The stop cannot be undone. A new thread must
// be created with CreateThread() to run again.
//
// Does nothing if the CPU goroutine does not exist.
func (s *Session) DestroyThread() {
	s.crit.Lock()

	if !s.threaded {
		if s.state != govern.Stopped {
			s.stop = true
			s.state = govern.Stopped
			s.cond.Broadcast()
		}
		s.crit.Unlock()
		return
	}

	done := s.done
	if done == nil {
		s.crit.Unlock()
		return
	}

	s.stop = true
	s.ledger.ByUIThread++
	s.checkAfterCycle()
	s.cond.Broadcast()
	s.wakeSleep()

	for s.state != govern.Stopped {
		s.cond.Wait()
	}

	s.done = nil
	s.threaded = false
	s.crit.Unlock()

	<-done
}

// SuspendThread suspends the CPU thread in the requested way. Returns true if
// the thread was suspended and must be resumed with a call to ResumeThread().
// Returns false if the thread could not be or was not suspended, in which
// case ResumeThread() must not be called.
//
// A StopNow request is satisfied by either Suspended or BlockedOnUI. A
// StopOnCycle request must end in the Suspended state. A StopOnSysCall
// request must end in the Suspended state with the system call reason set.
func (s *Session) SuspendThread(how govern.StopMethod) bool {
	if how == govern.StopNone {
		return false
	}

	s.crit.Lock()
	defer s.crit.Unlock()

	if s.state == govern.Stopped {
		return false
	}

	desiredBreakOnSysCall := false

	switch how {
	case govern.StopNow, govern.StopOnCycle:
		s.ledger.ByUIThread++
	case govern.StopOnSysCall:
		desiredBreakOnSysCall = true
	}

	s.checkAfterCycle()

	if s.threaded {
		if s.state == govern.Running {
			s.wakeSleep()

			for s.state == govern.Running {
				// set inside the loop because a reset on the CPU thread
				// clears it
				s.breakOnSysCall = desiredBreakOnSysCall
				s.cond.Broadcast()
				s.cond.Wait()
			}
		}
	} else {
		s.breakOnSysCall = desiredBreakOnSysCall
		s.ledger.ByTimeout = false

		for s.state == govern.Suspended && !s.ledger.AnyActive() {
			s.crit.Unlock()
			s.ExecuteIncremental()
			s.crit.Lock()

			// the timeout is not a reason to stop here
			s.ledger.ByTimeout = false
		}
	}

	if s.state == govern.Stopped {
		if how != govern.StopOnSysCall {
			s.ledger.ByUIThread--
		}
		s.breakOnSysCall = false
		return false
	}

	assert.Assert(s.state == govern.Suspended || s.state == govern.BlockedOnUI,
		"suspend ended in state ", s.state)

	result := true

	switch how {
	case govern.StopNow:
		result = true
	case govern.StopOnCycle:
		result = s.state == govern.Suspended
		if !result {
			// the increment is not owed a resume
			s.ledger.ByUIThread--
		}
	case govern.StopOnSysCall:
		result = s.state == govern.Suspended && s.ledger.BySysCall
		if result {
			s.ledger.ByUIThread++
		}
	}

	s.breakOnSysCall = false

	if result {
		assert.Assert(s.ledger.ByUIThread > 0, "suspended without ui thread reason")
		assert.Assert(!s.ledger.BySubroutineReturn, "suspended with subroutine return reason")
		assert.Assert(s.nestLevel == 0 || s.state == govern.BlockedOnUI, "suspended while nested")
	}

	s.cond.Broadcast()

	return result
}

// ResumeThread undoes a successful call to SuspendThread(). The session
// returns to the Running state if no other suspend reasons remain. A
// session that is BlockedOnUI remains blocked.
func (s *Session) ResumeThread() {
	s.crit.Lock()
	defer s.crit.Unlock()

	assert.Assert(s.ledger.ByUIThread > 0, "resume without suspend")
	if s.ledger.ByUIThread <= 0 {
		return
	}

	s.ledger.ByUIThread--

	if s.ledger.ByUIThread == 0 && s.ledger.ByExternal.Raw() == 0 {
		s.ledger.BySysCall = false
	}

	if s.threaded && !s.ledger.AnyActive() && s.state == govern.Suspended {
		s.state = govern.Running
	}

	s.cond.Broadcast()
}

// Sleep is called by the CPU engine when the emulated device is idle. The
// sleep ends early if a suspend is requested or new input is posted.
func (s *Session) Sleep(d time.Duration) {
	s.sleepCrit.Lock()
	wake := s.sleep
	s.sleepCrit.Unlock()

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
	case <-wake:
	}
}

// wake the CPU engine if it is sleeping
func (s *Session) wakeSleep() {
	s.sleepCrit.Lock()
	defer s.sleepCrit.Unlock()
	close(s.sleep)
	s.sleep = make(chan struct{})
}

// the scheduler loop. runs in its own goroutine until the stop flag is set
func (s *Session) run(done chan struct{}) {
	defer close(done)

	s.crit.Lock()

	for !s.stop {
		if s.ledger.AnyActive() || s.nestLevel > 0 {
			for s.nestLevel > 0 || (s.ledger.AnyActive() && !s.stop) {
				if s.nestLevel == 0 && s.state != govern.BlockedOnUI {
					s.state = govern.Suspended
				}
				s.cond.Broadcast()
				s.cond.Wait()
			}

			if s.stop {
				continue
			}
		}

		// a reason to suspend can be cleared without a call to ResumeThread()
		if s.state == govern.Suspended {
			s.state = govern.Running
			s.cond.Broadcast()
		}

		assert.Assert(s.nestLevel == 0, "scheduler loop while nested")

		// deferred work is observed before every burst
		s.crit.Unlock()
		if err := s.ExecuteSpecial(false); err != nil {
			s.dispatch(err)
		}
		s.crit.Lock()

		if s.stop || s.ledger.AnyActive() {
			continue
		}

		err := s.burst()
		if err != nil {
			s.crit.Unlock()
			s.dispatch(err)
			s.crit.Lock()
		}
	}

	s.state = govern.Stopped
	s.cond.Broadcast()
	s.crit.Unlock()

	logger.Log(logger.Allow, "session", "cpu thread stopped")
	s.collab.Notify.Notify(notifications.NotifyThreadStopped, nil)
}
