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

package ledger

import (
	"fmt"
	"strings"
)

// Counters is the set of suspend reasons.
type Counters struct {
	// explicit suspend requests from the control thread. balanced exactly by
	// resume requests
	ByUIThread int

	// breaks raised by the debugger or by exceptions/errors in the emulated
	// runtime
	ByDebugger int

	// suspend requests from external agents. see External type
	ByExternal External

	// the CPU has stopped on a system call
	BySysCall bool

	// the CPU has run for its time slice. only used when there is no
	// dedicated CPU thread
	ByTimeout bool

	// a reentrant call into the emulated runtime has returned
	BySubroutineReturn bool
}

// AnyActive returns true if any reason to suspend is present.
func (c Counters) AnyActive() bool {
	return c.ByExternal.Value() > 0 || c.AnyActiveIgnoringExternal()
}

// AnyActiveIgnoringExternal is the same as AnyActive() except that the
// external count is not considered.
func (c Counters) AnyActiveIgnoringExternal() bool {
	return c.ByUIThread > 0 || c.ByDebugger > 0 || c.BySysCall || c.ByTimeout || c.BySubroutineReturn
}

// Clear all reasons.
func (c *Counters) Clear() {
	*c = Counters{}
}

// ClearForReset clears the reasons that do not survive a reset of the
// emulated device. Suspend requests from the control thread are owed a
// matching resume and are left alone, as is the timeout which belongs to the
// incremental step in progress.
func (c *Counters) ClearForReset() {
	c.ByDebugger = 0
	c.ByExternal = 0
	c.BySysCall = false
	c.BySubroutineReturn = false
}

// Fold moves the reasons that arrived in the live counters during a
// reentrant burst into the saved counters. Debugger breaks are counted into
// the saved counters but left in place in the live counters because they
// terminate the reentrant call. The syscall reason belongs to the burst and
// is discarded.
func (c *Counters) Fold(live *Counters) {
	c.ByDebugger += live.ByDebugger

	c.ByExternal += live.ByExternal
	live.ByExternal = 0

	live.BySysCall = false

	c.ByTimeout = c.ByTimeout || live.ByTimeout
	live.ByTimeout = false
}

// Terminal returns true if the reentrant call should end.
func (c Counters) Terminal() bool {
	return c.ByDebugger > 0 || c.BySubroutineReturn
}

func (c Counters) String() string {
	s := strings.Builder{}
	if c.ByUIThread > 0 {
		s.WriteString(fmt.Sprintf("ui=%d ", c.ByUIThread))
	}
	if c.ByDebugger > 0 {
		s.WriteString(fmt.Sprintf("debugger=%d ", c.ByDebugger))
	}
	if c.ByExternal != 0 {
		s.WriteString(fmt.Sprintf("external=%d ", c.ByExternal.Raw()))
	}
	if c.BySysCall {
		s.WriteString("syscall ")
	}
	if c.ByTimeout {
		s.WriteString("timeout ")
	}
	if c.BySubroutineReturn {
		s.WriteString("subreturn ")
	}
	if s.Len() == 0 {
		return "none"
	}
	return strings.TrimSpace(s.String())
}
