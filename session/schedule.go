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
	"github.com/emucore/emucore/deferred"
	"github.com/emucore/emucore/govern"
)

// add a suspend reason. the CPU engine is told to check at the end of the
// current cycle
func (s *Session) scheduleSuspend(f func()) {
	s.crit.Lock()
	f()
	s.cond.Broadcast()
	s.crit.Unlock()
	s.checkAfterCycle()
}

// ScheduleSuspendException suspends the CPU because of an exception in the
// emulated runtime.
func (s *Session) ScheduleSuspendException() {
	s.scheduleSuspend(func() { s.ledger.ByDebugger++ })
}

// ScheduleSuspendError suspends the CPU because of an error in the emulated
// runtime.
func (s *Session) ScheduleSuspendError() {
	s.scheduleSuspend(func() { s.ledger.ByDebugger++ })
}

// ScheduleSuspendExternal suspends the CPU at the request of an external
// agent. The CPU is regarded as having stopped on a system call.
func (s *Session) ScheduleSuspendExternal() {
	s.scheduleSuspend(func() {
		s.ledger.ByExternal++
		s.ledger.BySysCall = true
	})
}

// ScheduleResumeExternal undoes ScheduleSuspendExternal(). The count can go
// negative if the resume arrives during a nested call.
func (s *Session) ScheduleResumeExternal() {
	s.crit.Lock()
	defer s.crit.Unlock()
	s.ledger.ByExternal--
	s.cond.Broadcast()
}

// ScheduleSuspendTimeout suspends the CPU because its time slice has ended.
func (s *Session) ScheduleSuspendTimeout() {
	s.scheduleSuspend(func() { s.ledger.ByTimeout = true })
}

// ScheduleSuspendSysCall suspends the CPU because it has reached a system
// call and BreakOnSysCall() is true.
func (s *Session) ScheduleSuspendSysCall() {
	s.scheduleSuspend(func() { s.ledger.BySysCall = true })
}

// ScheduleSuspendSubroutineReturn ends the nested call started by
// ExecuteSubroutine().
func (s *Session) ScheduleSuspendSubroutineReturn() {
	s.scheduleSuspend(func() { s.ledger.BySubroutineReturn = true })
}

// ScheduleReset arranges for the emulated device to be reset between bursts.
func (s *Session) ScheduleReset(reset govern.ResetType) {
	s.deferred.ScheduleReset(reset)
}

// ScheduleResetBanks arranges for the memory bank handlers to be reset.
func (s *Session) ScheduleResetBanks() {
	s.deferred.ScheduleResetBanks()
}

// ScheduleAutoSaveState arranges for the fuzz harness to take a snapshot.
func (s *Session) ScheduleAutoSaveState() {
	s.deferred.ScheduleHarness(deferred.AutoSaveState)
}

// ScheduleSaveRootState arranges for the fuzz harness to save the root state.
func (s *Session) ScheduleSaveRootState() {
	s.deferred.ScheduleHarness(deferred.SaveRootState)
}

// ScheduleSaveSuspendedState arranges for the fuzz harness to save the
// suspended state.
func (s *Session) ScheduleSaveSuspendedState() {
	s.deferred.ScheduleHarness(deferred.SaveSuspendedState)
}

// ScheduleLoadRootState arranges for the fuzz harness to load the root
// state.
func (s *Session) ScheduleLoadRootState() {
	s.deferred.ScheduleHarness(deferred.LoadRootState)
}

// ScheduleNextGremlinFromRootState arranges for the fuzz harness to load the
// root state and start the next gremlin.
func (s *Session) ScheduleNextGremlinFromRootState() {
	s.deferred.ScheduleHarness(deferred.NextGremlinFromRootState)
}

// ScheduleNextGremlinFromSuspendedState arranges for the fuzz harness to load
// the suspended state and continue the gremlin.
func (s *Session) ScheduleNextGremlinFromSuspendedState() {
	s.deferred.ScheduleHarness(deferred.NextGremlinFromSuspendedState)
}

// ScheduleMinimizeLoadState arranges for the minimizer's initial state to be
// loaded.
func (s *Session) ScheduleMinimizeLoadState() {
	s.deferred.ScheduleMinimizeLoadState()
}

// ScheduleDeferredError adds an action to the list of deferred errors. An
// action returning an error abandons the remaining actions. An action that
// needs to reset the device or abandon execution returns an
// emulation.Unwind.
func (s *Session) ScheduleDeferredError(a deferred.Action) {
	s.deferred.ScheduleDeferredError(a)
}
