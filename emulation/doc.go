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

// Package emulation defines the contracts between the session coordinator
// and the collaborators it drives: the CPU engine, the memory and platform
// subsystems, the persistence container and the emulated operating system.
//
// None of the collaborators know about the session type itself. They are
// handed a Scheduler, which is the session as seen from the CPU side, when
// they are created.
//
// Non-local control flow out of the CPU engine is expressed with the Unwind
// type. An Unwind is returned as an error from CPU.Execute() and is only
// acted upon at the three scheduler entry points.
package emulation
