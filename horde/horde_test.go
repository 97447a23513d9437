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

package horde_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/emucore/emucore/curated"
	"github.com/emucore/emucore/emulation"
	"github.com/emucore/emucore/horde"
	"github.com/emucore/emucore/test"
)

// a session that records state in a single chunk
type session struct {
	state     string
	saves     int
	loads     int
	scheduled []string
}

func (s *session) Save(f emulation.SessionFile) error {
	s.saves++
	return f.WriteChunk("state", []byte(s.state))
}

func (s *session) Load(f emulation.SessionFile) error {
	s.loads++
	b, err := f.ReadChunk("state")
	if err != nil {
		return err
	}
	s.state = string(b)
	return nil
}

func (s *session) ScheduleAutoSaveState()            { s.scheduled = append(s.scheduled, "autosave") }
func (s *session) ScheduleSaveRootState()            { s.scheduled = append(s.scheduled, "saveroot") }
func (s *session) ScheduleNextGremlinFromRootState() { s.scheduled = append(s.scheduled, "next") }

func TestHordeRun(t *testing.T) {
	sess := &session{state: "root"}
	h := horde.NewHorde(sess, horde.Config{Depth: 4, MaxGremlins: 2, SaveFrequency: 2})

	_, ok := h.Next()
	test.ExpectFailure(t, ok)

	h.Start()
	test.ExpectSuccess(t, h.IsOn())
	test.DemandEquality(t, len(sess.scheduled), 1)
	test.ExpectEquality(t, sess.scheduled[0], "saveroot")

	test.ExpectSuccess(t, h.SaveRootState())
	test.ExpectEquality(t, h.Gremlin(), 0)

	sess.state = "changed"

	for range 4 {
		_, ok := h.Next()
		test.ExpectSuccess(t, ok)
	}
	_, ok = h.Next()
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, h.Counter(), 4)

	// the autosave at event 2 and the next gremlin at event 4
	test.DemandEquality(t, len(sess.scheduled), 3)
	test.ExpectEquality(t, sess.scheduled[1], "autosave")
	test.ExpectEquality(t, sess.scheduled[2], "next")

	test.ExpectSuccess(t, h.AutoSaveState())
	test.ExpectEquality(t, h.AutoSaves(), 1)

	test.ExpectSuccess(t, h.LoadRootState())
	test.ExpectEquality(t, sess.state, "root")
	test.ExpectSuccess(t, h.StartGremlinFromLoadedRootState())
	test.ExpectEquality(t, h.Gremlin(), 1)
	test.ExpectEquality(t, h.Counter(), 0)
	test.ExpectSuccess(t, h.IsOn())

	// last gremlin finishing turns the horde off
	test.ExpectSuccess(t, h.StartGremlinFromLoadedRootState())
	test.ExpectFailure(t, h.IsOn())
}

func TestGremlinsAreRepeatable(t *testing.T) {
	run := func() []string {
		sess := &session{}
		h := horde.NewHorde(sess, horde.Config{Depth: 10, MaxGremlins: 1})
		h.Start()
		test.ExpectSuccess(t, h.SaveRootState())
		var evs []string
		for {
			ev, ok := h.Next()
			if !ok {
				break
			}
			evs = append(evs, ev.String())
		}
		return evs
	}

	a := run()
	b := run()
	test.DemandEquality(t, len(a), 10)
	test.DemandEquality(t, len(b), 10)
	for i := range a {
		test.ExpectEquality(t, a[i], b[i], i)
	}
}

func TestMissingStates(t *testing.T) {
	h := horde.NewHorde(&session{}, horde.Config{Depth: 1, MaxGremlins: 1})
	test.ExpectSuccess(t, curated.Is(h.LoadRootState(), horde.NoRootState))
	test.ExpectSuccess(t, curated.Is(h.LoadSuspendedState(), horde.NoSuspendedState))

	test.ExpectSuccess(t, h.SaveSuspendedState())
	test.ExpectSuccess(t, h.LoadSuspendedState())
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	sess := &session{state: "root"}
	h := horde.NewHorde(sess, horde.Config{Depth: 2, MaxGremlins: 1, Dir: dir})
	h.Start()
	test.ExpectSuccess(t, h.SaveRootState())
	h.Next()
	h.Next()

	test.ExpectSuccess(t, h.SaveEvents())
	test.ExpectSuccess(t, h.AutoSaveState())

	events, err := filepath.Glob(filepath.Join(dir, "*.events"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(events), 1)

	states, err := filepath.Glob(filepath.Join(dir, "*.state"))
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(states), 1)

	f, err := os.Open(states[0])
	test.DemandSuccess(t, err)
	defer f.Close()

	cf := emulation.NewChunkFile()
	test.DemandSuccess(t, cf.Read(f))
	test.ExpectSuccess(t, sess.Load(cf))
	test.ExpectEquality(t, sess.state, "root")
}
