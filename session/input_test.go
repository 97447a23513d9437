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

package session_test

import (
	"testing"

	"github.com/emucore/emucore/eventqueue"
	"github.com/emucore/emucore/session"
	"github.com/emucore/emucore/test"
	"github.com/emucore/emucore/userinput"
)

var keyA = eventqueue.KeyEvent{Char: 'a'}

func TestKeyQueue(t *testing.T) {
	f := newFixture(t, false)

	f.s.PostKeyEvent(keyA)
	f.s.PostKeyEvent(eventqueue.KeyEvent{Virtual: 0x10})

	ev, ok := f.s.PeekKeyEvent()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ev, keyA)

	ev, _ = f.s.GetKeyEvent()
	test.ExpectEquality(t, ev, keyA)
	ev, _ = f.s.GetKeyEvent()
	test.ExpectEquality(t, ev.Virtual, 0x10)

	_, ok = f.s.GetKeyEvent()
	test.ExpectFailure(t, ok)
}

func TestPenCoalescing(t *testing.T) {
	f := newFixture(t, false)

	down := eventqueue.PenEvent{X: 5, Y: 5, Down: true}
	f.s.PostPenEvent(down)
	f.s.PostPenEvent(down)
	f.s.PostPenEvent(eventqueue.PenEvent{X: 5, Y: 5})

	ev, ok := f.s.PeekPenEvent()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ev, down)

	f.s.GetPenEvent()
	ev, _ = f.s.GetPenEvent()
	test.ExpectFailure(t, ev.Down)
	test.ExpectFailure(t, f.s.HasPenEvent())
}

func TestInputBlockedDuringPlayback(t *testing.T) {
	f := newFixture(t, false)
	f.playback.replaying.Store(true)

	f.s.PostKeyEvent(keyA)
	f.s.PostPenEvent(eventqueue.PenEvent{X: 1, Y: 1, Down: true})
	f.s.SetButtonDown(userinput.App1)
	f.s.SetButtonTap(userinput.App2)
	test.ExpectFailure(t, f.s.HasKeyEvent())
	test.ExpectFailure(t, f.s.HasPenEvent())
	test.ExpectFailure(t, f.s.HasButtonActivity())

	// releases are never blocked
	f.s.SetButtonUp(userinput.App1)
	test.ExpectSuccess(t, f.s.HasButtonActivity())
}

func TestButtons(t *testing.T) {
	f := newFixture(t, false)
	test.ExpectSuccess(t, f.s.Preferences().Speed.Set(100))

	f.s.SetButtonDown(userinput.App1)
	test.ExpectSuccess(t, f.s.HasButtonActivity())

	c := f.s.PollButtonChanges()
	test.ExpectEquality(t, c.Pressed, userinput.MaskOf(userinput.App1))

	// the release waits for the cooldown to pass
	f.s.SetButtonUp(userinput.App1)
	for range userinput.Cooldown(100) {
		test.ExpectSuccess(t, f.s.PollButtonChanges().Empty())
	}
	c = f.s.PollButtonChanges()
	test.ExpectEquality(t, c.Released, userinput.MaskOf(userinput.App1))
}

func TestSpeedMigration(t *testing.T) {
	p, err := session.NewPreferences(nil)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, p.Speed.Set(2))
	test.ExpectEquality(t, p.Speed.Get().(int), 200)

	test.ExpectSuccess(t, p.Speed.Set(75))
	test.ExpectEquality(t, p.Speed.Get().(int), 75)
}
