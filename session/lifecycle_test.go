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
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/emucore/emucore/curated"
	"github.com/emucore/emucore/emulation"
	"github.com/emucore/emucore/eventqueue"
	"github.com/emucore/emucore/govern"
	"github.com/emucore/emucore/ledger"
	"github.com/emucore/emucore/notifications"
	"github.com/emucore/emucore/session"
	"github.com/emucore/emucore/test"
	"github.com/emucore/emucore/userinput"
	"github.com/stretchr/testify/require"
)

func TestSingleton(t *testing.T) {
	f := newFixture(t, false)

	_, err := session.NewSession(session.Collaborators{
		CPU:    func(emulation.Configuration, emulation.Scheduler) (emulation.CPU, error) { return nil, nil },
		Memory: &fakeMemory{},
	}, nil)
	test.ExpectSuccess(t, curated.Is(err, session.AlreadyExists))

	f.s.Destroy()

	g := newFixture(t, false)
	test.ExpectInequality(t, g.s, f.s)
}

func TestMissingCollaborators(t *testing.T) {
	_, err := session.NewSession(session.Collaborators{}, nil)
	test.ExpectSuccess(t, curated.Is(err, session.NoCPU))
}

func TestResetOrder(t *testing.T) {
	f := newFixture(t, false)

	f.s.Reset(govern.ResetSoft)

	// memory before the CPU because the CPU reads its reset vector from
	// memory
	require.Equal(t, []string{
		"memory", "cpu", "platform", "debug", "host", "screen", "errors", "os",
		string(notifications.NotifySessionReset),
	}, f.rec.entries())
}

func TestResetLedger(t *testing.T) {
	f := newFixture(t, false)
	f.s.CreateThread(false)

	f.s.SetSuspendState(session.ControlThread, ledger.Counters{
		ByUIThread: 2,
		ByDebugger: 1,
		ByExternal: 3,
		BySysCall:  true,
		ByTimeout:  true,
	})

	f.s.Reset(govern.ResetSoft)

	test.ExpectEquality(t, f.s.SuspendState(session.ControlThread), ledger.Counters{
		ByUIThread: 2,
		ByTimeout:  true,
	})
}

func TestResetQueues(t *testing.T) {
	f := newFixture(t, false)

	f.s.PostKeyEvent(eventqueue.KeyEvent{Char: 'a'})
	f.s.PostPenEvent(eventqueue.PenEvent{X: 10, Y: 20, Down: true})

	// pending input survives a system reset
	f.s.Reset(govern.ResetSys)
	test.ExpectSuccess(t, f.s.HasKeyEvent())
	test.ExpectSuccess(t, f.s.HasPenEvent())

	// the pen queue has forgotten the last event so the same pen-down event
	// is not discarded
	f.s.PostPenEvent(eventqueue.PenEvent{X: 10, Y: 20, Down: true})
	f.s.GetPenEvent()
	_, ok := f.s.GetPenEvent()
	test.ExpectSuccess(t, ok)

	f.s.Reset(govern.ResetSoft)
	test.ExpectFailure(t, f.s.HasKeyEvent())
	test.ExpectFailure(t, f.s.HasPenEvent())
}

func TestBootKeys(t *testing.T) {
	f := newFixture(t, false)

	f.s.Reset(govern.ResetHard | govern.ResetNoExt)
	test.ExpectEquality(t, f.s.BootKeys(), userinput.MaskOf(userinput.Power, userinput.Up))
	test.ExpectSuccess(t, f.rec.has("Power.down"))
	test.ExpectSuccess(t, f.rec.has("Up.down"))

	f.s.ReleaseBootKeys()
	test.ExpectEquality(t, f.s.BootKeys(), userinput.Mask(0))
	test.ExpectSuccess(t, f.rec.has("Power.up"))
	test.ExpectSuccess(t, f.rec.has("Up.up"))

	f.rec.clear()
	f.s.Reset(govern.ResetDebug)
	test.ExpectEquality(t, f.s.BootKeys(), userinput.MaskOf(userinput.Down))

	f.s.Reset(govern.ResetSoft)
	test.ExpectEquality(t, f.s.BootKeys(), userinput.Mask(0))
}

func TestBreakpointsReinstalled(t *testing.T) {
	f := newFixture(t, false)

	f.s.AddInstructionBreakHandlers(session.InstructionBreakHandlers{
		Install: func() { f.rec.add("install.1") },
		Reached: func() { f.rec.add("reached.1") },
	})
	f.s.AddInstructionBreakHandlers(session.InstructionBreakHandlers{
		Install: func() { f.rec.add("install.2") },
	})
	f.s.AddDataBreakHandlers(session.DataBreakHandlers{
		Install: func() { f.rec.add("install.data") },
		Reached: func(address uint32, size int, forRead bool) {
			test.ExpectEquality(t, address, uint32(0x100))
			test.ExpectEquality(t, size, 4)
			test.ExpectSuccess(t, forRead)
			f.rec.add("reached.data")
		},
	})

	f.s.Reset(govern.ResetSys)
	l := f.rec.entries()
	i1 := slices.Index(l, "install.1")
	i2 := slices.Index(l, "install.2")
	test.DemandSuccess(t, i1 >= 0 && i2 >= 0)
	test.ExpectSuccess(t, i1 < i2)
	test.ExpectSuccess(t, f.rec.has("install.data"))

	f.s.HandleInstructionBreak()
	f.s.HandleDataBreak(0x100, 4, true)
	test.ExpectSuccess(t, f.rec.has("reached.1"))
	test.ExpectSuccess(t, f.rec.has("reached.data"))
}

func TestSaveLoad(t *testing.T) {
	f := newFixture(t, false)
	fn := filepath.Join(t.TempDir(), "test.session")

	require.NoError(t, f.s.SaveFile(fn, true))
	test.ExpectEquality(t, f.s.File(), fn)
	require.Equal(t, []string{
		"cpu.save", "memory.save", "platform.save", "debug.save",
		"host.save", "screen.save", "errors.save", "os.save",
	}, f.rec.entries())

	f.rec.clear()
	require.NoError(t, f.s.LoadFile(fn))
	test.ExpectSuccess(t, f.s.NeedPostLoad())
	require.Equal(t, []string{
		"memory.load", "cpu.load", "platform.load", "debug.load",
		"host.load", "screen.load", "errors.load", "os.load",
		string(notifications.NotifyPostLoad),
	}, f.rec.entries())

	// a veto from any subsystem resets the device instead
	f.s.SetNeedPostLoad(false)
	f.platform.veto = true
	f.rec.clear()
	require.NoError(t, f.s.LoadFile(fn))
	test.ExpectFailure(t, f.s.NeedPostLoad())
	test.ExpectSuccess(t, f.rec.has(string(notifications.NotifySessionReset)))
	test.ExpectFailure(t, f.rec.has(string(notifications.NotifyPostLoad)))
}

func TestCreateOld(t *testing.T) {
	f := newFixture(t, false)
	fn := filepath.Join(t.TempDir(), "test.session")
	require.NoError(t, f.s.SaveFile(fn, false))
	test.ExpectEquality(t, f.s.File(), "")
	f.s.Destroy()

	g := newFixture(t, false)
	require.NoError(t, g.s.CreateOld(fn))
	test.ExpectEquality(t, g.s.Configuration(), testConfig)
	test.ExpectEquality(t, g.s.File(), fn)
	test.ExpectSuccess(t, g.s.NeedPostLoad())

	err := g.s.LoadFile(filepath.Join(t.TempDir(), "missing"))
	test.ExpectSuccess(t, curated.Is(err, session.InvalidFile))
}

func TestDispose(t *testing.T) {
	f := newFixture(t, false)
	f.s.Dispose()
	require.Equal(t, []string{
		"os.dispose", "errors.dispose", "screen.dispose", "host.dispose",
		"debug.dispose", "platform.dispose", "memory.dispose",
	}, f.rec.entries())
}

func TestDeferredReset(t *testing.T) {
	f := newFixture(t, false)

	f.s.ScheduleReset(govern.ResetSoft)
	f.s.ScheduleResetBanks()
	test.ExpectSuccess(t, f.s.Pending().Reset)

	// the reset takes care of the memory banks
	require.NoError(t, f.s.ExecuteSpecial(false))
	test.ExpectFailure(t, f.s.Pending().Reset)
	test.ExpectSuccess(t, f.rec.has("cpu"))
	test.ExpectFailure(t, f.rec.has("banks"))

	f.s.ScheduleResetBanks()
	require.NoError(t, f.s.ExecuteSpecial(true))
	test.ExpectSuccess(t, f.rec.has("banks"))
}

func TestDumpState(t *testing.T) {
	f := newFixture(t, false)
	f.s.CreateThread(true)

	w := &strings.Builder{}
	f.s.DumpState(w)
	test.ExpectSuccess(t, strings.Contains(w.String(), "digraph"))
}
