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

import "github.com/emucore/emucore/govern"

// Stopper suspends the CPU thread for the duration of an operation on the
// control thread. The operation should end with a call to Release(),
// usually deferred:
//
//	st := session.NewStopper(s, govern.StopOnSysCall)
//	defer st.Release()
//	if st.CanCall() {
//		...
//	}
type Stopper struct {
	s       *Session
	how     govern.StopMethod
	stopped bool
}

// NewStopper suspends the session with the stop method. The session can be
// nil, in which case the Stopper does nothing.
func NewStopper(s *Session, how govern.StopMethod) *Stopper {
	st := &Stopper{
		s:   s,
		how: how,
	}
	if s != nil {
		st.stopped = s.SuspendThread(how)
	}
	return st
}

// Stopped returns true if the session was suspended in the requested way.
func (st *Stopper) Stopped() bool {
	return st.stopped
}

// CanCall returns true if it is safe to call into the emulated OS. Only a
// session stopped on a system call can be called into.
func (st *Stopper) CanCall() bool {
	return st.stopped && st.how == govern.StopOnSysCall
}

// Release resumes the session if it was suspended by the Stopper. Calling
// Release() more than once is safe.
func (st *Stopper) Release() {
	if st.stopped {
		st.stopped = false
		st.s.ResumeThread()
	}
}
