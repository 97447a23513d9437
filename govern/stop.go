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

// StopMethod specifies how the control thread would like the CPU thread to
// stop.
type StopMethod int

// List of valid StopMethod values.
const (
	// do not stop. a suspend request with this method does nothing
	StopNone StopMethod = iota

	// stop as soon as possible. either Suspended or BlockedOnUI satisfies
	// the request
	StopNow

	// stop at the next cycle boundary. only Suspended satisfies the request
	StopOnCycle

	// stop at the next system call. only Suspended with the syscall reason
	// set satisfies the request
	StopOnSysCall
)

func (m StopMethod) String() string {
	switch m {
	case StopNone:
		return "None"
	case StopNow:
		return "Now"
	case StopOnCycle:
		return "OnCycle"
	case StopOnSysCall:
		return "OnSysCall"
	}
	return ""
}
