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

// Package ledger records the reasons the CPU thread has been asked to
// suspend. There are six independent reasons, each with its own counting
// rules, so that a suspend requested by one party is never cancelled by a
// resume belonging to another. For example, an explicit stop from the user
// interface and a break from the debugger must not cancel each other.
//
// The Counters type is not safe for concurrent use. The session protects it
// with its shared lock.
package ledger
