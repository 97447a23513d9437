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

// Package deferred is the queue of actions that must not be performed in the
// middle of a CPU burst. Actions are scheduled from either thread and are run
// by the CPU thread between bursts, in a fixed order:
//
//  1. reset of the emulated device
//  2. reset of the memory bank handlers
//  3. deferred errors, in the order they were scheduled
//  4. (return here if only the reset phases were requested)
//  5. the pending fuzz harness transition
//  6. restoration of the minimized state
//
// Every scheduling function forces the CPU to consult the scheduler at the
// end of the current cycle so that scheduled work is observed before the next
// full burst.
package deferred
