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

// ResetType is the kind of reset to perform. The lower bits are the kind
// (see ResetTypeMask) and the ResetNoExt bit may be combined with any kind.
type ResetType int

// List of reset kinds.
const (
	// reset internal state only. hardware registers are not reset and the
	// input queues survive
	ResetSys ResetType = 0x01

	// as ResetSys but the hardware registers are reset too
	ResetSoft ResetType = 0x02

	// as ResetSoft and the power key is held during boot
	ResetHard ResetType = 0x03

	// as ResetSoft and the down key is held during boot
	ResetDebug ResetType = 0x04

	ResetTypeMask ResetType = 0x07

	// reset modifier. the up key is held during boot, which prevents
	// extensions from loading
	ResetNoExt ResetType = 0x10

	ResetExtMask ResetType = 0x10
)

// Kind returns the reset kind without any modifiers.
func (r ResetType) Kind() ResetType {
	return r & ResetTypeMask
}

// NoExt returns true if the ResetNoExt modifier is set.
func (r ResetType) NoExt() bool {
	return r&ResetExtMask == ResetNoExt
}

// Hardware returns true if the reset should reset hardware registers.
func (r ResetType) Hardware() bool {
	return r.Kind() != ResetSys
}

func (r ResetType) String() string {
	var s string
	switch r.Kind() {
	case ResetSys:
		s = "Sys"
	case ResetSoft:
		s = "Soft"
	case ResetHard:
		s = "Hard"
	case ResetDebug:
		s = "Debug"
	default:
		s = "Unknown"
	}
	if r.NoExt() {
		s += "+NoExt"
	}
	return s
}
