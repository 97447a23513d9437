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

// Package idlecpu is a device emulation with no program of its own. The CPU
// counts cycles and makes a system call at regular intervals. The system
// call services the input queues and dozes when there is nothing to do.
//
// It is used by the command line tool to drive a session and by tests that
// need a CPU engine that behaves like a real one.
//
// A small number of virtual keys are understood by the emulated OS. See the
// Virtual constants.
package idlecpu
