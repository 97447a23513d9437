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

	"github.com/emucore/emucore/curated"
	"github.com/emucore/emucore/emulation"
	"github.com/emucore/emucore/govern"
	"github.com/emucore/emucore/logger"
)

const osChunk = "idlecpu.os"

// NoCPU is the error pattern for a wakeup before the CPU has been created.
const NoCPU = "idlecpu: wakeup without a cpu"

// OS implements the emulation.OS interface.
type OS struct {
	dev *Device

	// incremented on every boot
	boots atomic.Int64
}

// Initialize implements the emulation.Subsystem interface.
func (o *OS) Initialize(cfg emulation.Configuration) error {
	o.boots.Store(0)
	logger.Logf(logger.Allow, "idlecpu", "os for %s", cfg.Device)
	return nil
}

// Dispose implements the emulation.Subsystem interface.
func (o *OS) Dispose() {
}

// Reset implements the emulation.Subsystem interface.
func (o *OS) Reset(reset govern.ResetType) {
	o.boots.Add(1)
}

// Boots returns the number of times the OS has booted.
func (o *OS) Boots() int {
	return int(o.boots.Load())
}

// Save implements the emulation.Subsystem interface.
func (o *OS) Save(f emulation.SessionFile) error {
	var b bytes.Buffer
	if err := gob.NewEncoder(&b).Encode(o.boots.Load()); err != nil {
		return err
	}
	return f.WriteChunk(osChunk, b.Bytes())
}

// Load implements the emulation.Subsystem interface.
func (o *OS) Load(f emulation.SessionFile) error {
	b, err := f.ReadChunk(osChunk)
	if err != nil {
		return err
	}

	var boots int64
	if err := gob.NewDecoder(bytes.NewReader(b)).Decode(&boots); err != nil {
		return err
	}
	o.boots.Store(boots)

	return nil
}

// Wakeup implements the emulation.OS interface. The CPU is trapped into the
// input service routine with a reentrant call.
func (o *OS) Wakeup() error {
	c := o.dev.CPU()
	if c == nil {
		return curated.Errorf(NoCPU)
	}
	c.trap.Store(true)
	return c.sched.ExecuteSubroutine()
}
