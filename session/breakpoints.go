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

import "sync"

// InstructionBreakHandlers are called when instruction breakpoints are
// installed, removed and reached.
type InstructionBreakHandlers struct {
	Install func()
	Remove  func()
	Reached func()
}

// DataBreakHandlers are called when data breakpoints are installed, removed
// and reached. The Reached function is given the address and size of the
// access and whether it was a read.
type DataBreakHandlers struct {
	Install func()
	Remove  func()
	Reached func(address uint32, size int, forRead bool)
}

type breakpoints struct {
	crit        sync.Mutex
	instruction []InstructionBreakHandlers
	data        []DataBreakHandlers
}

func (b *breakpoints) clear() {
	b.crit.Lock()
	defer b.crit.Unlock()
	b.instruction = nil
	b.data = nil
}

// copies of the lists so that handlers can be called without the lock

func (b *breakpoints) instructionHandlers() []InstructionBreakHandlers {
	b.crit.Lock()
	defer b.crit.Unlock()
	return append([]InstructionBreakHandlers(nil), b.instruction...)
}

func (b *breakpoints) dataHandlers() []DataBreakHandlers {
	b.crit.Lock()
	defer b.crit.Unlock()
	return append([]DataBreakHandlers(nil), b.data...)
}

// AddInstructionBreakHandlers registers a set of instruction breakpoint
// handlers. Handlers are called in the order they were registered. Any of
// the functions can be nil.
func (s *Session) AddInstructionBreakHandlers(h InstructionBreakHandlers) {
	s.breaks.crit.Lock()
	defer s.breaks.crit.Unlock()
	s.breaks.instruction = append(s.breaks.instruction, h)
}

// AddDataBreakHandlers registers a set of data breakpoint handlers. Handlers
// are called in the order they were registered. Any of the functions can be
// nil.
func (s *Session) AddDataBreakHandlers(h DataBreakHandlers) {
	s.breaks.crit.Lock()
	defer s.breaks.crit.Unlock()
	s.breaks.data = append(s.breaks.data, h)
}

// InstallInstructionBreaks calls every registered install function. Reset
// calls this because a reset wipes out the breakpoints.
func (s *Session) InstallInstructionBreaks() {
	for _, h := range s.breaks.instructionHandlers() {
		if h.Install != nil {
			h.Install()
		}
	}
}

// RemoveInstructionBreaks calls every registered remove function.
func (s *Session) RemoveInstructionBreaks() {
	for _, h := range s.breaks.instructionHandlers() {
		if h.Remove != nil {
			h.Remove()
		}
	}
}

// HandleInstructionBreak is called by the CPU engine when an instruction
// breakpoint is reached.
func (s *Session) HandleInstructionBreak() {
	for _, h := range s.breaks.instructionHandlers() {
		if h.Reached != nil {
			h.Reached()
		}
	}
}

// InstallDataBreaks calls every registered install function.
func (s *Session) InstallDataBreaks() {
	for _, h := range s.breaks.dataHandlers() {
		if h.Install != nil {
			h.Install()
		}
	}
}

// RemoveDataBreaks calls every registered remove function.
func (s *Session) RemoveDataBreaks() {
	for _, h := range s.breaks.dataHandlers() {
		if h.Remove != nil {
			h.Remove()
		}
	}
}

// HandleDataBreak is called by the CPU engine when a data breakpoint is
// reached.
func (s *Session) HandleDataBreak(address uint32, size int, forRead bool) {
	for _, h := range s.breaks.dataHandlers() {
		if h.Reached != nil {
			h.Reached(address, size, forRead)
		}
	}
}
