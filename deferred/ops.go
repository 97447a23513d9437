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

package deferred

// HarnessOp is a fuzz harness state transition.
type HarnessOp int

// List of valid HarnessOp values. At most one transition can be pending.
const (
	NoHarnessOp HarnessOp = iota
	AutoSaveState
	SaveRootState
	SaveSuspendedState
	LoadRootState
	LoadSuspendedState
	NextGremlinFromRootState
	NextGremlinFromSuspendedState
)

func (op HarnessOp) String() string {
	switch op {
	case NoHarnessOp:
		return "none"
	case AutoSaveState:
		return "auto save state"
	case SaveRootState:
		return "save root state"
	case SaveSuspendedState:
		return "save suspended state"
	case LoadRootState:
		return "load root state"
	case LoadSuspendedState:
		return "load suspended state"
	case NextGremlinFromRootState:
		return "next gremlin from root state"
	case NextGremlinFromSuspendedState:
		return "next gremlin from suspended state"
	}
	return "unknown harness op"
}
