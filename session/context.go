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

// Context identifies the thread of execution making a call into the session.
// Functions that behave differently, or have different preconditions,
// depending on the calling thread take a Context argument.
type Context int

// List of valid Context values.
const (
	ControlThread Context = iota
	CPUThread
)

func (ctx Context) String() string {
	switch ctx {
	case ControlThread:
		return "control thread"
	case CPUThread:
		return "cpu thread"
	}
	return ""
}
