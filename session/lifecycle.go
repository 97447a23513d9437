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
	"bytes"
	"encoding/gob"
	"os"

	"github.com/emucore/emucore/assert"
	"github.com/emucore/emucore/curated"
	"github.com/emucore/emucore/emulation"
	"github.com/emucore/emucore/govern"
	"github.com/emucore/emucore/logger"
	"github.com/emucore/emucore/notifications"
	"github.com/emucore/emucore/userinput"
)

// chunk tag for the configuration in a session file
const configurationChunk = "session.configuration"

// CreateNew initialises the session with a new configuration and performs a
// soft reset.
func (s *Session) CreateNew(cfg emulation.Configuration) error {
	if err := s.initialize(cfg); err != nil {
		return err
	}
	s.Reset(govern.ResetSoft)
	return nil
}

// CreateOld initialises the session from a session file previously written
// with SaveFile().
func (s *Session) CreateOld(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return curated.Errorf(InvalidFile, err)
	}
	defer f.Close()

	cf := emulation.NewChunkFile()
	if err := cf.Read(f); err != nil {
		return curated.Errorf(InvalidFile, err)
	}

	cfg, err := readConfiguration(cf)
	if err != nil {
		return curated.Errorf(InvalidFile, err)
	}

	if err := s.initialize(cfg); err != nil {
		return err
	}

	if err := s.Load(cf); err != nil {
		return err
	}

	s.file = filename

	return nil
}

func (s *Session) initialize(cfg emulation.Configuration) error {
	s.cfg = cfg

	if s.cpu == nil {
		cpu, err := s.collab.CPU(cfg, s)
		if err != nil {
			return err
		}
		s.cpu = cpu
	}

	if err := s.collab.Memory.Initialize(cfg); err != nil {
		return err
	}

	for _, ss := range s.subsystems() {
		if err := ss.Initialize(cfg); err != nil {
			return err
		}
	}

	logger.Logf(logger.Allow, "session", "initialised %s (%d bytes RAM)", cfg.Device, cfg.RAMSize)

	return nil
}

// Dispose of the collaborators, in the reverse order to which they were
// initialised. Breakpoint handlers are removed and forgotten and any deferred
// errors are discarded.
func (s *Session) Dispose() {
	subs := s.subsystems()
	for i := len(subs) - 1; i >= 0; i-- {
		subs[i].Dispose()
	}
	s.collab.Memory.Dispose()

	s.RemoveInstructionBreaks()
	s.RemoveDataBreaks()
	s.breaks.clear()

	s.deferred.ClearErrors()
}

// Reset the emulated device. Must not be called during a nested call.
func (s *Session) Reset(reset govern.ResetType) {
	assert.Assert(s.NestLevel() == 0, "reset during nested call")

	if s.cpu == nil {
		logger.Log(logger.Allow, "session", curated.Errorf(NotInitialised))
		return
	}

	logger.Logf(logger.Allow, "session", "reset (%s)", reset)

	if s.harness != nil && s.harness.IsOn() {
		if err := s.harness.SaveEvents(); err != nil {
			logger.Log(logger.Allow, "session", err)
		}
	}

	// the CPU reads its reset vector from memory so memory is reset first
	s.collab.Memory.Reset(reset)
	s.cpu.Reset(reset.Hardware())
	for _, ss := range s.subsystems() {
		ss.Reset(reset)
	}

	s.crit.Lock()
	s.ledger.ClearForReset()
	s.breakOnSysCall = false
	s.nestLevel = 0
	s.cond.Broadcast()
	s.crit.Unlock()

	s.deferred.Clear()

	// a system reset happens when switching between the small and big ROMs.
	// pending input must survive that
	if reset.Hardware() {
		s.keys.Clear()
		s.pens.Clear()
	}
	s.buttons.Clear()
	s.pens.Forget()

	s.InstallInstructionBreaks()
	s.InstallDataBreaks()

	s.pressBootKeys(reset)

	s.collab.Notify.Notify(notifications.NotifySessionReset, nil)
}

func (s *Session) pressBootKeys(reset govern.ResetType) {
	var keys userinput.Mask

	switch reset.Kind() {
	case govern.ResetHard:
		keys |= userinput.MaskOf(userinput.Power)
	case govern.ResetDebug:
		keys |= userinput.MaskOf(userinput.Down)
	}

	if reset.NoExt() {
		keys |= userinput.MaskOf(userinput.Up)
	}

	s.crit.Lock()
	s.bootKeys = keys
	s.crit.Unlock()

	if s.collab.Buttons != nil {
		for _, b := range keys.Buttons() {
			s.collab.Buttons.ButtonEvent(b, true)
		}
	}
}

// ReleaseBootKeys releases the buttons held down during the most recent
// reset. Called by the hardware emulation once the boot keys have been read.
func (s *Session) ReleaseBootKeys() {
	s.crit.Lock()
	keys := s.bootKeys
	s.bootKeys = 0
	s.crit.Unlock()

	if s.collab.Buttons != nil {
		for _, b := range keys.Buttons() {
			s.collab.Buttons.ButtonEvent(b, false)
		}
	}
}

// BootKeys returns the buttons held down during the most recent reset.
func (s *Session) BootKeys() userinput.Mask {
	s.crit.Lock()
	defer s.crit.Unlock()
	return s.bootKeys
}

// Save the session to the session file. The CPU is saved first, followed by
// memory and the other subsystems.
func (s *Session) Save(f emulation.SessionFile) error {
	if s.cpu == nil {
		return curated.Errorf(NotInitialised)
	}

	if err := writeConfiguration(f, s.cfg); err != nil {
		return err
	}

	if err := s.cpu.Save(f); err != nil {
		return err
	}

	if err := s.collab.Memory.Save(f); err != nil {
		return err
	}

	for _, ss := range s.subsystems() {
		if err := ss.Save(f); err != nil {
			return err
		}
	}

	return nil
}

// Load the session from the session file. Memory is loaded before the CPU.
//
// Any subsystem can veto the reload, in which case the device is reset.
// Otherwise, the post load flag is set.
func (s *Session) Load(f emulation.SessionFile) error {
	if s.cpu == nil {
		return curated.Errorf(NotInitialised)
	}

	f.SetCanReload(true)

	if err := s.collab.Memory.Load(f); err != nil {
		return err
	}

	if err := s.cpu.Load(f); err != nil {
		return err
	}

	for _, ss := range s.subsystems() {
		if err := ss.Load(f); err != nil {
			return err
		}
	}

	if !f.CanReload() {
		logger.Log(logger.Allow, "session", "session file incomplete. resetting")
		s.Reset(govern.ResetSoft)
		s.SetNeedPostLoad(false)
		return nil
	}

	s.SetNeedPostLoad(true)
	s.collab.Notify.Notify(notifications.NotifyPostLoad, nil)

	return nil
}

// SaveFile writes the session to the named file. If updateFile is true, the
// file becomes the session's file (see File()).
func (s *Session) SaveFile(filename string, updateFile bool) error {
	cf := emulation.NewChunkFile()
	if err := s.Save(cf); err != nil {
		return err
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}

	if err := cf.Write(f); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return err
	}

	if updateFile {
		s.file = filename
	}

	return nil
}

// LoadFile loads the session from the named file.
func (s *Session) LoadFile(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return curated.Errorf(InvalidFile, err)
	}
	defer f.Close()

	cf := emulation.NewChunkFile()
	if err := cf.Read(f); err != nil {
		return curated.Errorf(InvalidFile, err)
	}

	return s.Load(cf)
}

func writeConfiguration(f emulation.SessionFile, cfg emulation.Configuration) error {
	var b bytes.Buffer
	if err := gob.NewEncoder(&b).Encode(cfg); err != nil {
		return err
	}
	return f.WriteChunk(configurationChunk, b.Bytes())
}

func readConfiguration(f emulation.SessionFile) (emulation.Configuration, error) {
	var cfg emulation.Configuration

	b, err := f.ReadChunk(configurationChunk)
	if err != nil {
		return cfg, err
	}

	err = gob.NewDecoder(bytes.NewReader(b)).Decode(&cfg)
	return cfg, err
}
