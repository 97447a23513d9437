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

package idlecpu

import (
	"bytes"
	"encoding/gob"
	"sync/atomic"

	"github.com/emucore/emucore/dialog"
	"github.com/emucore/emucore/emulation"
	"github.com/emucore/emucore/eventqueue"
	"github.com/emucore/emucore/govern"
	"github.com/emucore/emucore/logger"
)

// Virtual key codes understood by the emulated OS.
const (
	// the OS raises a reset
	VirtualReset = 0x100 + iota

	// the OS shows an alert and acts on the button used to dismiss it
	VirtualAlert

	// the OS breaks into the debugger
	VirtualBreak
)

// chunk tag for the CPU in a session file
const cpuChunk = "idlecpu.cpu"

// Stats is a snapshot of the CPU's activity counters.
type Stats struct {
	Cycles        uint64
	SysCalls      uint64
	Keys          uint64
	Pens          uint64
	ButtonChanges uint64
	HordeEvents   uint64
	Dozes         uint64
	Wakeups       uint64
}

// CPU implements the emulation.CPU interface.
type CPU struct {
	cfg   Config
	sched emulation.Scheduler

	events atomic.Pointer[EventSource]

	// set by CheckAfterCycle() from any goroutine
	check atomic.Bool

	// set by the OS before a reentrant call into the CPU
	trap atomic.Bool

	// the instruction at which HandleInstructionBreak() is called. zero
	// means no breakpoint
	breakAt atomic.Uint64

	// the boot keys are released on the first system call after a reset
	booting atomic.Bool

	cycles        atomic.Uint64
	sysCalls      atomic.Uint64
	keys          atomic.Uint64
	pens          atomic.Uint64
	buttonChanges atomic.Uint64
	hordeEvents   atomic.Uint64
	dozes         atomic.Uint64
	wakeups       atomic.Uint64
}

// SetEventSource sets the source of synthetic input. Can be nil.
func (c *CPU) SetEventSource(src EventSource) {
	if src == nil {
		c.events.Store(nil)
		return
	}
	c.events.Store(&src)
}

// BreakAt sets an instruction breakpoint at the cycle count. A value of zero
// removes the breakpoint.
func (c *CPU) BreakAt(cycle uint64) {
	c.breakAt.Store(cycle)
}

// AllowLogging implements the logger.Permission interface. Logging is
// suppressed while synthetic input is being generated.
func (c *CPU) AllowLogging() bool {
	if src := c.events.Load(); src != nil {
		return !(*src).IsOn()
	}
	return true
}

// Stats returns the current activity counters.
func (c *CPU) Stats() Stats {
	return Stats{
		Cycles:        c.cycles.Load(),
		SysCalls:      c.sysCalls.Load(),
		Keys:          c.keys.Load(),
		Pens:          c.pens.Load(),
		ButtonChanges: c.buttonChanges.Load(),
		HordeEvents:   c.hordeEvents.Load(),
		Dozes:         c.dozes.Load(),
		Wakeups:       c.wakeups.Load(),
	}
}

// CheckAfterCycle implements the emulation.CPU interface.
func (c *CPU) CheckAfterCycle() {
	c.check.Store(true)
}

// Execute implements the emulation.CPU interface.
func (c *CPU) Execute() error {
	threaded := c.sched.Threaded()

	// a trapped call services the input queues and returns to the OS. the
	// deferred work must wait until the reentrant call has finished because
	// a reset cannot happen while nested
	nested := c.trap.Swap(false)
	if nested {
		defer c.check.Store(true)
		c.wakeups.Add(1)
		if _, err := c.service(); err != nil {
			return err
		}
		c.sched.ScheduleSuspendSubroutineReturn()
	}

	var slice int

	for {
		cycle := c.cycles.Add(1)
		slice++

		if b := c.breakAt.Load(); b != 0 && b == cycle {
			c.sched.HandleInstructionBreak()
		}

		check := nested

		if !nested && c.check.Swap(false) {
			check = true
			if err := c.sched.ExecuteSpecial(false); err != nil {
				return err
			}
		}

		if !nested && cycle%uint64(c.cfg.SysCallInterval) == 0 {
			check = true
			if err := c.sysCall(threaded); err != nil {
				return err
			}
		}

		if !threaded && slice >= c.cfg.TimeSlice {
			slice = 0
			check = true
			c.sched.ScheduleSuspendTimeout()
		}

		if check && c.sched.CheckForBreak() {
			return nil
		}
	}
}

func (c *CPU) sysCall(threaded bool) error {
	c.sysCalls.Add(1)

	if c.sched.BreakOnSysCall() {
		c.sched.ScheduleSuspendSysCall()
		return nil
	}

	if c.booting.Swap(false) {
		c.sched.ReleaseBootKeys()
	}

	busy, err := c.service()
	if err != nil {
		return err
	}

	if !busy {
		if threaded {
			c.dozes.Add(1)
			c.sched.Sleep(c.cfg.Doze())
		} else {
			c.sched.ScheduleSuspendTimeout()
		}
	}

	return nil
}

// service the input queues. returns true if there was any input
func (c *CPU) service() (bool, error) {
	var busy bool

	if ch := c.sched.PollButtonChanges(); !ch.Empty() {
		busy = true
		c.buttonChanges.Add(1)
		logger.Logf(c, "idlecpu", "buttons pressed %s released %s", ch.Pressed, ch.Released)
	}

	if ev, ok := c.sched.GetKeyEvent(); ok {
		busy = true
		if err := c.key(ev); err != nil {
			return busy, err
		}
	}

	if ev, ok := c.sched.GetPenEvent(); ok {
		busy = true
		c.pens.Add(1)
		logger.Logf(c, "idlecpu", "%s", ev)
	}

	if src := c.events.Load(); src != nil && (*src).IsOn() {
		if ev, ok := (*src).Next(); ok {
			busy = true
			c.hordeEvents.Add(1)
			if ev.Key != nil && ev.Key.Virtual != 0 {
				if err := c.key(*ev.Key); err != nil {
					return busy, err
				}
			}
		}
	}

	return busy, nil
}

// DialogBlocker is implemented by schedulers that can show dialogs on
// behalf of the CPU.
type DialogBlocker interface {
	BlockOnDialog(callback dialog.Callback, params any) dialog.ButtonID
}

func (c *CPU) key(ev eventqueue.KeyEvent) error {
	c.keys.Add(1)

	switch ev.Virtual {
	case VirtualReset:
		return c.resetUnwind("reset requested by device")

	case VirtualAlert:
		b, ok := c.sched.(DialogBlocker)
		if !ok {
			return nil
		}
		switch b.BlockOnDialog(c.cfg.Alert, "alert") {
		case dialog.ItemReset:
			return c.resetUnwind("reset from alert")
		case dialog.ItemDebug:
			c.sched.ScheduleSuspendException()
		}

	case VirtualBreak:
		c.sched.ScheduleSuspendException()

	default:
		logger.Logf(c, "idlecpu", "%s", ev)
	}

	return nil
}

func (c *CPU) resetUnwind(msg string) error {
	return &emulation.Unwind{
		Kind:    emulation.UnwindReset,
		Message: msg,
		Action: func() {
			c.sched.ScheduleReset(govern.ResetSoft)
		},
	}
}

// Reset implements the emulation.CPU interface.
func (c *CPU) Reset(hard bool) {
	if hard {
		c.cycles.Store(0)
	}
	c.booting.Store(true)
	c.trap.Store(false)
}

type cpuState struct {
	Cycles   uint64
	SysCalls uint64
}

// Save implements the emulation.CPU interface.
func (c *CPU) Save(f emulation.SessionFile) error {
	var b bytes.Buffer
	err := gob.NewEncoder(&b).Encode(cpuState{
		Cycles:   c.cycles.Load(),
		SysCalls: c.sysCalls.Load(),
	})
	if err != nil {
		return err
	}
	return f.WriteChunk(cpuChunk, b.Bytes())
}

// Load implements the emulation.CPU interface.
func (c *CPU) Load(f emulation.SessionFile) error {
	b, err := f.ReadChunk(cpuChunk)
	if err != nil {
		return err
	}

	var st cpuState
	if err := gob.NewDecoder(bytes.NewReader(b)).Decode(&st); err != nil {
		return err
	}

	c.cycles.Store(st.Cycles)
	c.sysCalls.Store(st.SysCalls)

	return nil
}
