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

// Package userinput holds the state of the device's hardware buttons as
// seen by the emulation.
//
// The control thread records presses, releases and taps with the Press(),
// Release() and Tap() functions. These only use atomic operations so the
// control thread never waits on the CPU thread, even during a long
// execution burst.
//
// The CPU thread calls Poll() once every coarse CPU cycle to discover the
// button edges it should deliver to the emulated hardware. Poll() debounces
// the edges. After any edge is reported no further edges are reported for a
// number of polls (the cooldown), which gives the emulated interrupt handler
// time to read the button registers before they change again. A press is
// always reported by at least one poll before its release.
package userinput
