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
	"errors"
	"fmt"
)

// UnwindKind distinguishes the two kinds of non-local exit from the CPU.
type UnwindKind int

// List of valid UnwindKind values.
const (
	// the emulated device must be reset. the message is shown to the user
	// before the action is performed
	UnwindReset UnwindKind = iota

	// abandon the current execution and perform the action silently
	UnwindTopLevel
)

func (k UnwindKind) String() string {
	switch k {
	case UnwindReset:
		return "reset"
	case UnwindTopLevel:
		return "top level action"
	}
	return ""
}

// Unwind is returned by CPU.Execute() to abandon execution back to the
// nearest scheduler entry point.
type Unwind struct {
	Kind    UnwindKind
	Message string

	// Action is performed once the unwind reaches the entry point. It is
	// called without any session locks held and may be nil.
	Action func()
}

func (u *Unwind) Error() string {
	if u.Message == "" {
		return fmt.Sprintf("unwind: %s", u.Kind)
	}
	return fmt.Sprintf("unwind: %s: %s", u.Kind, u.Message)
}

// AsUnwind returns the Unwind in the error chain, if there is one.
func AsUnwind(err error) (*Unwind, bool) {
	var u *Unwind
	if errors.As(err, &u) {
		return u, true
	}
	return nil, false
}
