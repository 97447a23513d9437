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

// Package assert checks invariants of the emulation core. How a failed
// assertion is handled depends on the "assertions" build tag. With the tag
// a failed assertion panics, which is what developers want when working on
// the scheduler. Without the tag the failure is logged and execution
// continues on a best-effort basis.
package assert
