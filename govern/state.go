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

package govern

// State describes the high level state of the CPU thread.
type State int

// List of possible emulation states.
//
// Initial and terminal state is Stopped. A thread that has reached Stopped
// can not be resumed, a new thread must be created.
const (
	Stopped State = iota
	Running
	Suspended
	BlockedOnUI
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Running:
		return "Running"
	case Suspended:
		return "Suspended"
	case BlockedOnUI:
		return "BlockedOnUI"
	}
	return ""
}

// Halted returns true if the CPU thread is not executing instructions.
func (s State) Halted() bool {
	return s == Suspended || s == BlockedOnUI
}
