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

// Package session is the session coordinator. It owns the state of the
// emulation (Stopped, Running, Suspended or BlockedOnUI), the suspend ledger
// and the goroutine that runs the emulated CPU.
//
// Two logical threads of execution meet in the session. The CPU thread runs
// the scheduler loop in Run(). The control thread (the user interface or any
// other host environment) posts input and asks the CPU thread to suspend and
// resume. When the emulation is not threaded, the control thread drives the
// CPU directly with ExecuteIncremental().
//
// The state, the suspend ledger and the nest level are protected by a single
// mutex and condition variable. Every change to them is broadcast on the
// condition and every wait re-checks its predicate. Button state is handled
// with atomics so that the control thread never waits for a CPU burst to end.
//
// The CPU engine stops only at cycle boundaries, when CheckForBreak()
// returns true. Scheduling any deferred work or suspend reason forces the
// engine to check at the end of the current cycle.
//
// Only one session can exist at a time. NewSession() fails if another
// session has not been destroyed.
package session
