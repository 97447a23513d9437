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
	"github.com/emucore/emucore/assert"
	"github.com/emucore/emucore/curated"
	"github.com/emucore/emucore/emulation"
	"github.com/emucore/emucore/govern"
	"github.com/emucore/emucore/logger"
	"github.com/emucore/emucore/notifications"
)

// run the CPU engine until it breaks. the state is Running for the duration
// of the burst and is restored afterwards.
//
// must be called with crit held. crit is released for the burst and held
// again on return
func (s *Session) burst() error {
	old := s.state
	s.state = govern.Running
	s.cond.Broadcast()

	s.crit.Unlock()
	err := s.cpu.Execute()
	s.crit.Lock()

	s.state = old

	return err
}

// dispatch an error returned by the CPU engine. must be called without crit
// held
func (s *Session) dispatch(err error) {
	if u, ok := emulation.AsUnwind(err); ok {
		switch u.Kind {
		case emulation.UnwindReset:
			logger.Logf(logger.Allow, "scheduler", "reset: %s", u.Message)
			s.collab.Notify.Notify(notifications.NotifyResetException, u.Message)
		case emulation.UnwindTopLevel:
			logger.Log(logger.Allow, "scheduler", u)
		}
		if u.Action != nil {
			u.Action()
		}
		return
	}

	// anything else halts the CPU in the same way as an error in the
	// emulated runtime
	logger.Log(logger.Allow, "scheduler", curated.Errorf(ExecutionFailed, err))
	s.ScheduleSuspendError()
}

// ExecuteIncremental runs the CPU engine until it breaks. Used by the control
// thread when the CPU does not have its own goroutine. The session must be
// Suspended or BlockedOnUI and the CPU does not run if any suspend reason is
// present.
func (s *Session) ExecuteIncremental() {
	s.crit.Lock()

	s.ledger.ByTimeout = false

	assert.Assert(s.state == govern.Suspended || s.state == govern.BlockedOnUI,
		"incremental execution in state ", s.state)
	assert.Assert(s.nestLevel == 0, "incremental execution while nested")

	if s.state == govern.BlockedOnUI || s.ledger.AnyActive() {
		s.crit.Unlock()
		return
	}

	s.crit.Unlock()
	if err := s.ExecuteSpecial(false); err != nil {
		s.dispatch(err)
	}
	s.crit.Lock()

	var err error
	if !s.ledger.AnyActive() {
		err = s.burst()
	}

	assert.Assert(s.ledger.ByUIThread == 0, "ui thread suspend during incremental execution")
	assert.Assert(!s.ledger.BySubroutineReturn, "subroutine return during incremental execution")

	s.crit.Unlock()

	if err != nil {
		s.dispatch(err)
	}
}

// ExecuteSubroutine is a reentrant call into the emulated runtime. It runs
// the CPU engine until the subroutine returns or a debugger break occurs.
//
// Suspend reasons pending at the time of the call are put to one side for
// the duration of the call and restored afterwards, together with any
// reasons that arrived during the call. A suspend request from the control
// thread ends the call immediately.
//
// Can be called by the control thread, when the CPU is suspended, or by the
// CPU thread from inside the CPU engine.
func (s *Session) ExecuteSubroutine() error {
	if s.cpu == nil {
		return curated.Errorf(NotInitialised)
	}

	s.crit.Lock()

	assert.Assert(s.nestLevel >= 0, "negative nest level")

	oldState := s.ledger
	s.ledger.Clear()

	var unwind error

	for !s.ledger.AnyActive() {
		oldNestLevel := s.nestLevel
		s.nestLevel++

		err := s.burst()

		s.nestLevel = oldNestLevel

		if err != nil {
			unwind = err
			break
		}

		// a suspend request from the control thread is left in the live
		// ledger where ResumeThread() will find it
		if s.ledger.ByUIThread > 0 {
			break
		}

		oldState.Fold(&s.ledger)

		if s.ledger.Terminal() {
			break
		}
	}

	liveUIThread := s.ledger.ByUIThread
	s.ledger = oldState
	s.ledger.ByUIThread += liveUIThread

	// a resume from an external agent can arrive before the matching suspend
	s.ledger.ByExternal.Clamp()

	s.cond.Broadcast()
	s.crit.Unlock()

	if unwind != nil {
		s.dispatch(unwind)
	}

	return nil
}

// ExecuteSpecial runs the deferred work. Called by the CPU engine between
// instructions whenever it has been told to check after the current cycle,
// and by the scheduler loop before every burst.
//
// If checkForResetOnly is true only the reset and deferred error phases are
// run.
func (s *Session) ExecuteSpecial(checkForResetOnly bool) error {
	if s.harness == nil {
		return s.deferred.Run(checkForResetOnly, deferredHandler{s: s}, nil)
	}

	on := s.harness.IsOn()
	err := s.deferred.Run(checkForResetOnly, deferredHandler{s: s}, s.harness)
	if on && !s.harness.IsOn() {
		s.collab.Notify.Notify(notifications.NotifyHordeOff, nil)
	}
	return err
}

// CheckForBreak returns true if the CPU engine should stop. Called by the
// CPU engine at every cycle boundary where it has been told to check.
//
// While nested, the external suspend count is ignored. A nested call starts
// with the count at zero so a non-zero count means that an external agent is
// in the middle of a suspend/resume pair, which must be allowed to finish.
func (s *Session) CheckForBreak() bool {
	s.crit.Lock()
	defer s.crit.Unlock()

	if s.nestLevel > 0 {
		return s.ledger.AnyActiveIgnoringExternal()
	}
	return s.ledger.AnyActive()
}

// from the CPU thread the session must be running. from the control thread
// the session must be halted, unless a nested call is in progress
func (s *Session) assertLedgerAccess(ctx Context) {
	switch ctx {
	case CPUThread:
		assert.Assert(s.state == govern.Running, "ledger access from ", ctx, " in state ", s.state)
	case ControlThread:
		assert.Assert((s.nestLevel == 0 && s.state != govern.Running) || (s.nestLevel > 0 && s.state == govern.Running),
			"ledger access from ", ctx, " in state ", s.state)
	}
}

// deferredHandler performs the deferred work that needs the session
type deferredHandler struct {
	s *Session
}

func (h deferredHandler) Reset(reset govern.ResetType) {
	h.s.Reset(reset)
}

func (h deferredHandler) ResetBankHandlers() {
	h.s.collab.Memory.ResetBankHandlers()
}

func (h deferredHandler) MinimizeLoadState() error {
	if h.s.collab.Minimizer == nil {
		return nil
	}
	return h.s.collab.Minimizer.RealLoadInitialState()
}
