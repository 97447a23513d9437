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

package session_test

import (
	"errors"
	"testing"
	"time"

	"github.com/emucore/emucore/emulation"
	"github.com/emucore/emucore/govern"
	"github.com/emucore/emucore/ledger"
	"github.com/emucore/emucore/notifications"
	"github.com/emucore/emucore/session"
	"github.com/emucore/emucore/test"
	"github.com/emucore/emucore/userinput"
	"github.com/stretchr/testify/require"
)

func TestPairing(t *testing.T) {
	f := newFixture(t, false)
	f.s.CreateThread(false)
	test.ExpectEquality(t, f.s.State(), govern.Suspended)

	var stoppers []*session.Stopper
	for range 3 {
		st := session.NewStopper(f.s, govern.StopNow)
		test.ExpectSuccess(t, st.Stopped())
		test.ExpectFailure(t, st.CanCall())
		stoppers = append(stoppers, st)
	}
	test.ExpectEquality(t, f.s.SuspendState(session.ControlThread).ByUIThread, 3)

	for _, st := range stoppers {
		st.Release()
		st.Release()
	}
	test.ExpectEquality(t, f.s.SuspendState(session.ControlThread), ledger.Counters{})

	// nothing to suspend without a session
	st := session.NewStopper(nil, govern.StopNow)
	test.ExpectFailure(t, st.Stopped())
	st.Release()
}

func TestSuspendStopped(t *testing.T) {
	f := newFixture(t, false)
	test.ExpectEquality(t, f.s.State(), govern.Stopped)
	test.ExpectFailure(t, f.s.SuspendThread(govern.StopNow))
	test.ExpectFailure(t, f.s.SuspendThread(govern.StopNone))
	test.ExpectEquality(t, f.s.SuspendState(session.ControlThread).ByUIThread, 0)
}

func TestIncremental(t *testing.T) {
	f := newFixture(t, false)
	f.cpu.exec = func(n int) error {
		f.s.ScheduleSuspendTimeout()
		return nil
	}
	f.s.CreateThread(false)

	f.s.ExecuteIncremental()
	test.ExpectEquality(t, f.cpu.executes.Load(), int32(1))
	test.ExpectSuccess(t, f.s.SuspendState(session.ControlThread).ByTimeout)

	// the timeout belongs to the previous step
	f.s.ExecuteIncremental()
	test.ExpectEquality(t, f.cpu.executes.Load(), int32(2))

	// no execution while a suspend reason is present
	f.s.ScheduleSuspendError()
	f.s.ExecuteIncremental()
	test.ExpectEquality(t, f.cpu.executes.Load(), int32(2))
}

func TestIncrementalSuspendOnSysCall(t *testing.T) {
	f := newFixture(t, false)
	f.s.CreateThread(false)

	// the CPU runs until it reaches a system call
	test.ExpectSuccess(t, f.s.SuspendThread(govern.StopOnSysCall))
	c := f.s.SuspendState(session.ControlThread)
	test.ExpectSuccess(t, c.BySysCall)
	test.ExpectEquality(t, c.ByUIThread, 1)
	test.ExpectFailure(t, f.s.BreakOnSysCall())

	f.s.ResumeThread()
	test.ExpectEquality(t, f.s.SuspendState(session.ControlThread), ledger.Counters{})
	test.ExpectEquality(t, f.s.State(), govern.Suspended)
}

func TestUnwind(t *testing.T) {
	f := newFixture(t, false)
	f.s.CreateThread(false)

	f.cpu.exec = func(n int) error {
		return &emulation.Unwind{
			Kind:    emulation.UnwindReset,
			Message: "fatal",
			Action:  func() { f.s.ScheduleReset(govern.ResetSoft) },
		}
	}
	f.s.ExecuteIncremental()
	test.ExpectSuccess(t, f.rec.has(string(notifications.NotifyResetException)+":fatal"))
	test.ExpectSuccess(t, f.s.Pending().Reset)
	test.ExpectEquality(t, f.s.State(), govern.Suspended)

	// the pending reset is performed before the next burst
	f.cpu.exec = func(n int) error {
		return errors.New("unimplemented instruction")
	}
	f.s.ExecuteIncremental()
	test.ExpectFailure(t, f.s.Pending().Reset)
	test.ExpectSuccess(t, f.rec.has(string(notifications.NotifySessionReset)))

	// any other error halts the CPU
	test.ExpectEquality(t, f.s.SuspendState(session.ControlThread).ByDebugger, 1)
}

func TestThreaded(t *testing.T) {
	f := newFixture(t, true)
	f.s.CreateThread(false)
	test.ExpectSuccess(t, f.s.Threaded())
	f.eventually(t, govern.Running)

	test.ExpectSuccess(t, f.s.SuspendThread(govern.StopOnCycle))
	test.ExpectEquality(t, f.s.State(), govern.Suspended)
	test.ExpectSuccess(t, f.s.SuspendThread(govern.StopOnCycle))

	f.s.ResumeThread()
	require.Never(t, func() bool {
		return f.s.State() != govern.Suspended
	}, 20*time.Millisecond, time.Millisecond)

	f.s.ResumeThread()
	f.eventually(t, govern.Running)

	f.s.DestroyThread()
	test.ExpectEquality(t, f.s.State(), govern.Stopped)
	test.ExpectSuccess(t, f.rec.has(string(notifications.NotifyThreadStopped)))
	test.ExpectFailure(t, f.s.SuspendThread(govern.StopNow))
}

func TestThreadedCreatedSuspended(t *testing.T) {
	f := newFixture(t, true)
	f.s.CreateThread(true)
	f.eventually(t, govern.Suspended)
	test.ExpectEquality(t, f.cpu.executes.Load(), int32(0))

	f.s.ResumeThread()
	f.eventually(t, govern.Running)
}

func TestThreadedClearedWithoutResume(t *testing.T) {
	f := newFixture(t, true)
	f.s.CreateThread(false)
	f.eventually(t, govern.Running)

	f.s.ScheduleSuspendError()
	f.eventually(t, govern.Suspended)
	test.ExpectEquality(t, f.s.SuspendState(session.ControlThread).ByDebugger, 1)

	// the debugger clears the break
	f.s.SetSuspendState(session.ControlThread, ledger.Counters{})
	f.eventually(t, govern.Running)
}

func TestThreadedDeferredWork(t *testing.T) {
	f := newFixture(t, true)
	f.s.CreateThread(false)
	f.eventually(t, govern.Running)

	f.s.ScheduleReset(govern.ResetSoft)
	require.Eventually(t, func() bool {
		return f.rec.has(string(notifications.NotifySessionReset))
	}, time.Second, time.Millisecond)
	test.ExpectEquality(t, f.s.State(), govern.Running)
}

func TestSleep(t *testing.T) {
	f := newFixture(t, true)

	done := make(chan struct{})
	go func() {
		f.s.Sleep(time.Minute)
		close(done)
	}()

	// a button press ends the sleep early
	require.Never(t, func() bool {
		select {
		case <-done:
			return true
		default:
			return false
		}
	}, 10*time.Millisecond, time.Millisecond)
	f.s.SetButtonUp(userinput.Power)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("sleep was not interrupted")
	}
}
