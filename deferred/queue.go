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

package deferred

import (
	"fmt"
	"sync"

	"github.com/emucore/emucore/assert"
	"github.com/emucore/emucore/govern"
	"github.com/emucore/emucore/horde"
	"github.com/emucore/emucore/logger"
)

// Action is a deferred error. Returning an error abandons the remaining
// actions in the list.
type Action func() error

// Handler performs the reset phases and the minimized state restoration.
type Handler interface {
	Reset(reset govern.ResetType)
	ResetBankHandlers()
	MinimizeLoadState() error
}

// Pending is a summary of the work waiting in the queue.
type Pending struct {
	Reset      bool
	ResetType  govern.ResetType
	ResetBanks bool
	Errors     int
	Harness    HarnessOp
	Minimize   bool
}

// Queue of deferred work. The zero value is not usable. Use NewQueue().
type Queue struct {
	crit sync.Mutex

	// called whenever something is scheduled
	check func()

	reset      bool
	resetType  govern.ResetType
	resetBanks bool
	errs       []Action
	harness    HarnessOp
	minimize   bool

	// true while deferred errors are being run. scheduling a deferred error
	// from inside a deferred error is not allowed
	iterating bool
}

// NewQueue is the preferred method of initialisation for the Queue type. The
// check function is called whenever anything is scheduled and should make
// the CPU consult the scheduler at the end of the current cycle. It can be
// nil.
func NewQueue(check func()) *Queue {
	return &Queue{
		check:     check,
		resetType: govern.ResetSys,
	}
}

func (q *Queue) forceCheck() {
	if q.check != nil {
		q.check()
	}
}

// ScheduleReset arranges for the emulated device to be reset.
func (q *Queue) ScheduleReset(reset govern.ResetType) {
	q.crit.Lock()
	q.reset = true
	q.resetType = reset
	q.crit.Unlock()
	q.forceCheck()
}

// ScheduleResetBanks arranges for the memory bank handlers to be reset.
func (q *Queue) ScheduleResetBanks() {
	q.crit.Lock()
	q.resetBanks = true
	q.crit.Unlock()
	q.forceCheck()
}

// ScheduleDeferredError adds an action to the end of the list of deferred
// errors.
func (q *Queue) ScheduleDeferredError(a Action) {
	q.crit.Lock()
	assert.Assert(!q.iterating, "deferred error scheduled while running deferred errors")
	q.errs = append(q.errs, a)
	q.crit.Unlock()
	q.forceCheck()
}

// ScheduleHarness arranges for a fuzz harness transition. Only one
// transition can be pending. If another is already pending it is replaced.
func (q *Queue) ScheduleHarness(op HarnessOp) {
	q.crit.Lock()
	if q.harness != NoHarnessOp && q.harness != op {
		assert.Assert(false, fmt.Sprintf("harness transition %q scheduled while %q is pending", op, q.harness))
	}
	q.harness = op
	q.crit.Unlock()
	q.forceCheck()
}

// ScheduleMinimizeLoadState arranges for the minimized state to be loaded.
func (q *Queue) ScheduleMinimizeLoadState() {
	q.crit.Lock()
	q.minimize = true
	q.crit.Unlock()
	q.forceCheck()
}

// Clear all pending work. The reset type reverts to ResetSys.
func (q *Queue) Clear() {
	q.crit.Lock()
	defer q.crit.Unlock()
	q.reset = false
	q.resetType = govern.ResetSys
	q.resetBanks = false
	q.harness = NoHarnessOp
	q.minimize = false
	if !q.iterating {
		q.errs = nil
	}
}

// ClearErrors removes all deferred errors without running them.
func (q *Queue) ClearErrors() {
	q.crit.Lock()
	defer q.crit.Unlock()
	if !q.iterating {
		q.errs = nil
	}
}

// Pending returns a summary of the pending work.
func (q *Queue) Pending() Pending {
	q.crit.Lock()
	defer q.crit.Unlock()
	return Pending{
		Reset:      q.reset,
		ResetType:  q.resetType,
		ResetBanks: q.resetBanks,
		Errors:     len(q.errs),
		Harness:    q.harness,
		Minimize:   q.minimize,
	}
}

// Empty returns true if there is no pending work.
func (q *Queue) Empty() bool {
	q.crit.Lock()
	defer q.crit.Unlock()
	return !q.reset && !q.resetBanks && len(q.errs) == 0 && q.harness == NoHarnessOp && !q.minimize
}

// Run the pending work in phase order. Must only be called by the CPU
// thread between bursts.
//
// If resetOnly is true, only the reset and deferred error phases are run.
// The harness argument can be nil.
//
// The first error returned by a phase ends the run and is returned. The list
// of deferred errors is always emptied, even when one of them fails.
func (q *Queue) Run(resetOnly bool, h Handler, harness horde.Harness) error {
	// phase 1: reset. a reset clears the queue, including any bank reset
	q.crit.Lock()
	reset := q.reset
	resetType := q.resetType
	if reset {
		q.reset = false
		q.resetBanks = false
	}
	q.crit.Unlock()

	if reset {
		h.Reset(resetType)
	}

	// phase 2: bank handlers
	q.crit.Lock()
	resetBanks := q.resetBanks
	q.resetBanks = false
	q.crit.Unlock()

	if resetBanks {
		h.ResetBankHandlers()
	}

	// phase 3: deferred errors
	if err := q.runErrors(); err != nil {
		return err
	}

	// phase 4
	if resetOnly {
		return nil
	}

	// phase 5: harness transition
	q.crit.Lock()
	op := q.harness
	q.harness = NoHarnessOp
	q.crit.Unlock()

	if op != NoHarnessOp && harness != nil {
		runHarness(op, harness)
	}

	// phase 6: minimized state
	q.crit.Lock()
	minimize := q.minimize
	q.minimize = false
	q.crit.Unlock()

	if minimize {
		if err := h.MinimizeLoadState(); err != nil {
			return err
		}
	}

	return nil
}

func (q *Queue) runErrors() error {
	q.crit.Lock()
	if len(q.errs) == 0 {
		q.crit.Unlock()
		return nil
	}
	errs := q.errs
	q.iterating = true
	q.crit.Unlock()

	// the list is emptied whatever happens
	defer func() {
		q.crit.Lock()
		q.errs = nil
		q.iterating = false
		q.crit.Unlock()
	}()

	for _, a := range errs {
		if err := a(); err != nil {
			return err
		}
	}

	return nil
}

func runHarness(op HarnessOp, harness horde.Harness) {
	var err error

	switch op {
	case AutoSaveState:
		err = harness.AutoSaveState()
	case SaveRootState:
		err = harness.SaveRootState()
	case SaveSuspendedState:
		err = harness.SaveSuspendedState()
	case LoadRootState:
		err = harness.LoadRootState()
	case LoadSuspendedState:
		err = harness.LoadSuspendedState()
	case NextGremlinFromRootState:
		if err = harness.LoadRootState(); err == nil {
			err = harness.StartGremlinFromLoadedRootState()
		} else {
			harness.TurnOn(false)
		}
	case NextGremlinFromSuspendedState:
		if err = harness.LoadSuspendedState(); err == nil {
			err = harness.StartGremlinFromLoadedSuspendedState()
		} else {
			harness.TurnOn(false)
		}
	}

	if err != nil {
		logger.Logf(logger.Allow, "deferred", "%s: %v", op, err)
	}
}
