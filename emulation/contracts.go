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

package emulation

import (
	"time"

	"github.com/emucore/emucore/eventqueue"
	"github.com/emucore/emucore/govern"
	"github.com/emucore/emucore/userinput"
)

// Configuration of the emulated device.
type Configuration struct {
	Device  string
	RAMSize int
	ROMFile string
}

// CPU is the instruction interpreter. Execute() runs until the scheduler's
// CheckForBreak() returns true at a cycle boundary, or until an Unwind is
// raised. The interpreter must never stop mid-instruction.
type CPU interface {
	Execute() error
	Reset(hard bool)
	Save(f SessionFile) error
	Load(f SessionFile) error

	// CheckAfterCycle forces the interpreter to consult the scheduler at the
	// end of the current cycle. It is called from any goroutine.
	CheckAfterCycle()
}

// CPUCreator creates the CPU for a configuration. The Scheduler is the
// session the CPU belongs to.
type CPUCreator func(cfg Configuration, sched Scheduler) (CPU, error)

// Subsystem is the lifecycle contract shared by the memory, platform,
// debug, host, screen, errors and OS collaborators.
type Subsystem interface {
	Initialize(cfg Configuration) error
	Dispose()
	Reset(reset govern.ResetType)
	Save(f SessionFile) error
	Load(f SessionFile) error
}

// Memory is the address space. It is always reset and loaded before the CPU
// because the CPU reads its reset vector from memory.
type Memory interface {
	Subsystem
	ResetBankHandlers()
}

// OS is the emulated operating system.
type OS interface {
	Subsystem

	// Wakeup makes a dozing operating system notice new input. It is called
	// while the session is stopped on a system call and is expected to
	// re-enter the runtime with Scheduler.ExecuteSubroutine().
	Wakeup() error
}

// ButtonEventer delivers button changes directly to the emulated hardware.
// Used for the keys held down during a Hard, Debug or NoExt reset.
type ButtonEventer interface {
	ButtonEvent(button userinput.Button, down bool)
}

// Playback reports whether recorded events are being replayed.
type Playback interface {
	Replaying() bool
}

// Minimizer is the event minimization tool. When it is on, user input is
// not posted to the emulation.
type Minimizer interface {
	IsOn() bool
	RealLoadInitialState() error
}

// Scheduler is the session as seen by the CPU engine and the emulated OS.
type Scheduler interface {
	// true if the session runs the CPU in its own goroutine
	Threaded() bool

	CheckForBreak() bool
	ExecuteSpecial(checkForResetOnly bool) error
	ExecuteSubroutine() error
	BreakOnSysCall() bool
	Sleep(d time.Duration)

	ScheduleReset(reset govern.ResetType)
	ScheduleSuspendException()
	ScheduleSuspendError()
	ScheduleSuspendExternal()
	ScheduleResumeExternal()
	ScheduleSuspendTimeout()
	ScheduleSuspendSysCall()
	ScheduleSuspendSubroutineReturn()

	HasKeyEvent() bool
	GetKeyEvent() (eventqueue.KeyEvent, bool)
	HasPenEvent() bool
	GetPenEvent() (eventqueue.PenEvent, bool)
	PollButtonChanges() userinput.Changes
	ReleaseBootKeys()

	HandleInstructionBreak()
	HandleDataBreak(address uint32, size int, forRead bool)
}
