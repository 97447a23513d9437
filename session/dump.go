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

package session

import (
	"io"

	"github.com/bradleyjkemp/memviz"
	"github.com/emucore/emucore/deferred"
	"github.com/emucore/emucore/govern"
	"github.com/emucore/emucore/ledger"
)

type snapshot struct {
	State          govern.State
	Ledger         ledger.Counters
	NestLevel      int
	BreakOnSysCall bool
	Threaded       bool
	NeedPostLoad   bool
	Pending        deferred.Pending
	Keys           int
	Pens           int
}

// DumpState writes a graphviz description of the scheduler state to w.
func (s *Session) DumpState(w io.Writer) {
	s.crit.Lock()
	snap := &snapshot{
		State:          s.state,
		Ledger:         s.ledger,
		NestLevel:      s.nestLevel,
		BreakOnSysCall: s.breakOnSysCall,
		Threaded:       s.threaded,
		NeedPostLoad:   s.needPostLoad,
	}
	s.crit.Unlock()

	snap.Pending = s.deferred.Pending()
	snap.Keys = s.keys.Len()
	snap.Pens = s.pens.Len()

	memviz.Map(w, snap)
}
