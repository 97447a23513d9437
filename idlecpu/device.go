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
	"sync/atomic"
	"time"

	"github.com/emucore/emucore/dialog"
	"github.com/emucore/emucore/emulation"
	"github.com/emucore/emucore/horde"
	"github.com/emucore/emucore/userinput"
)

// Config for the device.
type Config struct {
	// number of cycles between system calls
	SysCallInterval int

	// number of cycles in an incremental step when the CPU is not threaded
	TimeSlice int

	// how long the OS dozes for when there is no input. consulted on every
	// doze so that it can follow a preference
	Doze func() time.Duration

	// shown when the OS receives VirtualAlert. if nil the alert is
	// dismissed with ItemOK
	Alert dialog.Callback
}

// EventSource provides synthetic input. The horde.Horde type satisfies this
// interface.
type EventSource interface {
	IsOn() bool
	Next() (horde.Event, bool)
}

// Device collects the parts of the emulated device.
type Device struct {
	cfg Config

	Memory   *Memory
	OS       *OS
	Hardware *Hardware

	cpu atomic.Pointer[CPU]
}

// NewDevice is the preferred method of initialisation for the Device type.
func NewDevice(cfg Config) *Device {
	if cfg.SysCallInterval <= 0 {
		cfg.SysCallInterval = 1000
	}
	if cfg.TimeSlice <= 0 {
		cfg.TimeSlice = 100000
	}
	if cfg.Doze == nil {
		cfg.Doze = func() time.Duration { return 10 * time.Millisecond }
	}
	if cfg.Alert == nil {
		cfg.Alert = func(_ any) dialog.ButtonID { return dialog.ItemOK }
	}

	d := &Device{
		cfg:      cfg,
		Memory:   &Memory{},
		Hardware: &Hardware{},
	}
	d.OS = &OS{dev: d}

	return d
}

// Creator is the emulation.CPUCreator for the device.
func (d *Device) Creator(cfg emulation.Configuration, sched emulation.Scheduler) (emulation.CPU, error) {
	c := &CPU{
		cfg:   d.cfg,
		sched: sched,
	}
	d.cpu.Store(c)
	return c, nil
}

// CPU returns the CPU created by Creator(). Returns nil if the CPU has not
// been created yet.
func (d *Device) CPU() *CPU {
	return d.cpu.Load()
}

// Hardware records the buttons held down directly on the hardware.
type Hardware struct {
	held atomic.Uint32
}

// ButtonEvent implements the emulation.ButtonEventer interface.
func (hw *Hardware) ButtonEvent(button userinput.Button, down bool) {
	m := uint32(userinput.MaskOf(button))
	if down {
		hw.held.Or(m)
	} else {
		hw.held.And(^m)
	}
}

// Held returns the buttons currently held down.
func (hw *Hardware) Held() userinput.Mask {
	return userinput.Mask(hw.held.Load())
}
