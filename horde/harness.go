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

package horde

import "github.com/emucore/emucore/emulation"

// Harness is the fuzz harness as seen by the session.
type Harness interface {
	IsOn() bool
	TurnOn(on bool)

	SaveEvents() error
	AutoSaveState() error
	SaveRootState() error
	SaveSuspendedState() error
	LoadRootState() error
	LoadSuspendedState() error
	StartGremlinFromLoadedRootState() error
	StartGremlinFromLoadedSuspendedState() error
}

// Session is the part of the session the horde needs. The schedule
// functions cause the corresponding Harness function to be called at the
// next safe point.
type Session interface {
	Save(f emulation.SessionFile) error
	Load(f emulation.SessionFile) error

	ScheduleAutoSaveState()
	ScheduleSaveRootState()
	ScheduleNextGremlinFromRootState()
}
