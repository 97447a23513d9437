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

package ledger

// External counts suspend requests made by external agents through the
// host control interface.
//
// The count is allowed to go negative. A resume can race ahead of its
// matching suspend when the pair straddles a reentrant call into the
// emulated runtime. A negative count is never an error and readers see it as
// zero.
type External int

// Value returns the count clamped to zero.
func (e External) Value() int {
	if e < 0 {
		return 0
	}
	return int(e)
}

// Raw returns the unclamped count. Only needed when merging counts across a
// reentrant call.
func (e External) Raw() int {
	return int(e)
}

// Clamp sets a negative count to zero.
func (e *External) Clamp() {
	if *e < 0 {
		*e = 0
	}
}
