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
	"github.com/emucore/emucore/emulation"
	"github.com/emucore/emucore/govern"
)

const memoryChunk = "idlecpu.memory"

// Memory implements the emulation.Memory interface.
type Memory struct {
	RAM []byte

	// number of times the bank handlers have been reset
	Banks int
}

// Initialize implements the emulation.Subsystem interface.
func (m *Memory) Initialize(cfg emulation.Configuration) error {
	m.RAM = make([]byte, cfg.RAMSize)
	return nil
}

// Dispose implements the emulation.Subsystem interface.
func (m *Memory) Dispose() {
	m.RAM = nil
}

// Reset implements the emulation.Subsystem interface. RAM survives a system
// reset.
func (m *Memory) Reset(reset govern.ResetType) {
	if reset.Hardware() {
		clear(m.RAM)
	}
}

// ResetBankHandlers implements the emulation.Memory interface.
func (m *Memory) ResetBankHandlers() {
	m.Banks++
}

// Save implements the emulation.Subsystem interface.
func (m *Memory) Save(f emulation.SessionFile) error {
	return f.WriteChunk(memoryChunk, m.RAM)
}

// Load implements the emulation.Subsystem interface. A session file for a
// device with a different amount of RAM cannot be reloaded.
func (m *Memory) Load(f emulation.SessionFile) error {
	b, err := f.ReadChunk(memoryChunk)
	if err != nil {
		return err
	}
	if len(b) != len(m.RAM) {
		f.SetCanReload(false)
		return nil
	}
	copy(m.RAM, b)
	return nil
}
