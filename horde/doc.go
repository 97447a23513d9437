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

// Package horde is the gremlin horde: an automated fuzz-testing harness
// that drives synthetic input into the emulation and takes periodic
// snapshots of the emulated state.
//
// A horde run begins by saving a root state. Each gremlin starts from the
// root state and generates a fixed number of synthetic events, seeded by
// the gremlin number so that any failing gremlin can be replayed exactly.
// When a gremlin has generated all its events the horde schedules the next
// gremlin from the root state. When all gremlins have run the horde turns
// itself off.
//
// State transitions (saving and loading states, starting gremlins) are
// never performed directly. They are scheduled with the session and run by
// the session's deferred action queue at a safe point between CPU bursts.
package horde
