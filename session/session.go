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
	"sync"
	"sync/atomic"

	"github.com/emucore/emucore/curated"
	"github.com/emucore/emucore/deferred"
	"github.com/emucore/emucore/dialog"
	"github.com/emucore/emucore/emulation"
	"github.com/emucore/emucore/eventqueue"
	"github.com/emucore/emucore/govern"
	"github.com/emucore/emucore/horde"
	"github.com/emucore/emucore/ledger"
	"github.com/emucore/emucore/notifications"
	"github.com/emucore/emucore/userinput"
)

// Error patterns.
const (
	AlreadyExists   = "session: a session already exists"
	NoCPU           = "session: no cpu creator"
	NoMemory        = "session: no memory"
	NotInitialised  = "session: not initialised"
	InvalidFile     = "session: invalid session file: %v"
	ExecutionFailed = "session: execution: %v"
)

var (
	_ emulation.Scheduler = (*Session)(nil)
	_ horde.Session       = (*Session)(nil)
)

// only one session can exist at a time
var exists atomic.Bool

// Collaborators are the parts of the emulation the session coordinates.
// Only CPU and Memory are required.
type Collaborators struct {
	CPU    emulation.CPUCreator
	Memory emulation.Memory

	// subsystems in the order they are initialised and reset
	Platform emulation.Subsystem
	Debug    emulation.Subsystem
	Host     emulation.Subsystem
	Screen   emulation.Subsystem
	Errors   emulation.Subsystem
	OS       emulation.OS

	// the hardware receives the boot keys held during a reset
	Buttons emulation.ButtonEventer

	Playback  emulation.Playback
	Minimizer emulation.Minimizer

	// dialogs requested by the CPU thread are shown by the host
	Dialogs dialog.Host

	Notify notifications.Notify
}

// Session coordinates the CPU thread and the control thread.
type Session struct {
	collab  Collaborators
	prefs   *Preferences
	harness horde.Harness

	cfg  emulation.Configuration
	file string
	cpu  emulation.CPU

	// crit protects the fields below it and is the lock for cond
	crit sync.Mutex
	cond *sync.Cond

	state          govern.State
	ledger         ledger.Counters
	nestLevel      int
	breakOnSysCall bool
	stop           bool
	needPostLoad   bool

	// true if the CPU is running in its own goroutine
	threaded bool

	// closed when the CPU goroutine ends
	done chan struct{}

	// sleeping CPU engine waits for this channel to close. protected by
	// sleepCrit
	sleepCrit sync.Mutex
	sleep     chan struct{}

	deferred *deferred.Queue

	keys    *eventqueue.Queue[eventqueue.KeyEvent]
	pens    *eventqueue.PenQueue
	buttons userinput.State

	// buttons held down during the most recent reset
	bootKeys userinput.Mask

	breaks breakpoints
}

// NewSession is the preferred method of initialisation for the Session type.
// The preferences argument can be nil, in which case default values are used.
//
// Returns an error if a session already exists.
func NewSession(collab Collaborators, p *Preferences) (*Session, error) {
	if collab.CPU == nil {
		return nil, curated.Errorf(NoCPU)
	}
	if collab.Memory == nil {
		return nil, curated.Errorf(NoMemory)
	}

	if !exists.CompareAndSwap(false, true) {
		return nil, curated.Errorf(AlreadyExists)
	}

	if p == nil {
		var err error
		p, err = NewPreferences(nil)
		if err != nil {
			exists.Store(false)
			return nil, err
		}
	}

	if collab.Notify == nil {
		collab.Notify = notifications.Discard
	}

	s := &Session{
		collab: collab,
		prefs:  p,
		state:  govern.Stopped,
		sleep:  make(chan struct{}),
		keys:   &eventqueue.Queue[eventqueue.KeyEvent]{},
		pens:   eventqueue.NewPenQueue(),
	}
	s.cond = sync.NewCond(&s.crit)
	s.deferred = deferred.NewQueue(s.checkAfterCycle)

	return s, nil
}

// Destroy the session. The CPU thread is stopped and the collaborators are
// disposed of. A new session can be created once Destroy() has returned.
func (s *Session) Destroy() {
	s.DestroyThread()
	s.Dispose()
	exists.Store(false)
}

// SetHarness sets the fuzz harness used by the session. The harness usually
// needs the session for its own initialisation, so it cannot be one of the
// Collaborators.
func (s *Session) SetHarness(h horde.Harness) {
	s.harness = h
}

// SetDialogHost sets the host that shows the dialogs requested with
// BlockOnDialog(). Must not be called while the CPU thread is running.
func (s *Session) SetDialogHost(h dialog.Host) {
	s.crit.Lock()
	defer s.crit.Unlock()
	s.collab.Dialogs = h
}

// Preferences returns the preferences used by the session.
func (s *Session) Preferences() *Preferences {
	return s.prefs
}

// force the CPU engine to consult the scheduler at the end of the current
// cycle. safe to call before the CPU exists
func (s *Session) checkAfterCycle() {
	if s.cpu != nil {
		s.cpu.CheckAfterCycle()
	}
}

// the subsystems in initialisation order, excluding memory. nil subsystems
// are omitted
func (s *Session) subsystems() []emulation.Subsystem {
	var l []emulation.Subsystem
	for _, ss := range []emulation.Subsystem{
		s.collab.Platform,
		s.collab.Debug,
		s.collab.Host,
		s.collab.Screen,
		s.collab.Errors,
	} {
		if ss != nil {
			l = append(l, ss)
		}
	}
	if s.collab.OS != nil {
		l = append(l, s.collab.OS)
	}
	return l
}

// State returns the current state of the session.
func (s *Session) State() govern.State {
	s.crit.Lock()
	defer s.crit.Unlock()
	return s.state
}

// SuspendState returns a copy of the suspend ledger.
//
// When called from the CPU thread the session must be running. When called
// from the control thread the session must be halted, unless the control
// thread is making a nested call.
func (s *Session) SuspendState(ctx Context) ledger.Counters {
	s.crit.Lock()
	defer s.crit.Unlock()
	s.assertLedgerAccess(ctx)
	return s.ledger
}

// SetSuspendState replaces the suspend ledger. The preconditions are the same
// as for SuspendState().
func (s *Session) SetSuspendState(ctx Context, c ledger.Counters) {
	s.crit.Lock()
	defer s.crit.Unlock()
	s.assertLedgerAccess(ctx)
	s.ledger = c
	s.cond.Broadcast()
}

// BreakOnSysCall returns true if the CPU engine should suspend at the next
// system call.
func (s *Session) BreakOnSysCall() bool {
	s.crit.Lock()
	defer s.crit.Unlock()
	return s.breakOnSysCall
}

// IsNested returns true if a reentrant call into the emulated runtime is in
// progress.
func (s *Session) IsNested() bool {
	s.crit.Lock()
	defer s.crit.Unlock()
	return s.nestLevel > 0
}

// NestLevel returns the number of reentrant calls in progress.
func (s *Session) NestLevel() int {
	s.crit.Lock()
	defer s.crit.Unlock()
	return s.nestLevel
}

// NeedPostLoad returns true if a session state has been loaded and the
// emulated OS has not yet been told about it.
func (s *Session) NeedPostLoad() bool {
	s.crit.Lock()
	defer s.crit.Unlock()
	return s.needPostLoad
}

// SetNeedPostLoad sets or clears the post load flag.
func (s *Session) SetNeedPostLoad(v bool) {
	s.crit.Lock()
	defer s.crit.Unlock()
	s.needPostLoad = v
}

// Threaded returns true if the CPU runs in its own goroutine.
func (s *Session) Threaded() bool {
	s.crit.Lock()
	defer s.crit.Unlock()
	return s.threaded
}

// Configuration returns the configuration the session was created with.
func (s *Session) Configuration() emulation.Configuration {
	return s.cfg
}

// File returns the name of the file the session was loaded from or last
// saved to. Empty if there is no such file.
func (s *Session) File() string {
	return s.file
}

// Pending returns a summary of the deferred work waiting to be run.
func (s *Session) Pending() deferred.Pending {
	return s.deferred.Pending()
}
