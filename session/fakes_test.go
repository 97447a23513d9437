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
	"slices"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/emucore/emucore/emulation"
	"github.com/emucore/emucore/govern"
	"github.com/emucore/emucore/notifications"
	"github.com/emucore/emucore/session"
	"github.com/emucore/emucore/userinput"
	"github.com/stretchr/testify/require"
)

// recorder is a goroutine safe log of the calls made into the fakes
type recorder struct {
	crit sync.Mutex
	log  []string
}

func (r *recorder) add(s string) {
	r.crit.Lock()
	defer r.crit.Unlock()
	r.log = append(r.log, s)
}

func (r *recorder) entries() []string {
	r.crit.Lock()
	defer r.crit.Unlock()
	return slices.Clone(r.log)
}

func (r *recorder) has(s string) bool {
	return slices.Contains(r.entries(), s)
}

func (r *recorder) clear() {
	r.crit.Lock()
	defer r.crit.Unlock()
	r.log = r.log[:0]
}

type fakeSubsystem struct {
	name string
	rec  *recorder

	// the subsystem vetoes the reloading of a session file
	veto bool
}

func (ss *fakeSubsystem) Initialize(_ emulation.Configuration) error {
	ss.rec.add(ss.name + ".init")
	return nil
}

func (ss *fakeSubsystem) Dispose() {
	ss.rec.add(ss.name + ".dispose")
}

func (ss *fakeSubsystem) Reset(_ govern.ResetType) {
	ss.rec.add(ss.name)
}

func (ss *fakeSubsystem) Save(f emulation.SessionFile) error {
	ss.rec.add(ss.name + ".save")
	return f.WriteChunk(ss.name, []byte(ss.name))
}

func (ss *fakeSubsystem) Load(f emulation.SessionFile) error {
	ss.rec.add(ss.name + ".load")
	if _, err := f.ReadChunk(ss.name); err != nil {
		return err
	}
	if ss.veto {
		f.SetCanReload(false)
	}
	return nil
}

type fakeMemory struct {
	fakeSubsystem
}

func (m *fakeMemory) ResetBankHandlers() {
	m.rec.add("banks")
}

type fakeOS struct {
	fakeSubsystem
	s       *session.Session
	wakeups atomic.Int32
}

func (o *fakeOS) Wakeup() error {
	o.wakeups.Add(1)
	return o.s.ExecuteSubroutine()
}

type fakeButtons struct {
	rec *recorder
}

func (b *fakeButtons) ButtonEvent(button userinput.Button, down bool) {
	if down {
		b.rec.add(button.String() + ".down")
	} else {
		b.rec.add(button.String() + ".up")
	}
}

type fakePlayback struct {
	replaying atomic.Bool
}

func (p *fakePlayback) Replaying() bool {
	return p.replaying.Load()
}

type fakeNotify struct {
	rec *recorder
}

func (n *fakeNotify) Notify(notice notifications.Notice, data any) error {
	if msg, ok := data.(string); ok {
		n.rec.add(string(notice) + ":" + msg)
	} else {
		n.rec.add(string(notice))
	}
	return nil
}

// fakeCPU runs the exec function if it is set. otherwise it behaves like a
// device that spins until told to break, makes system calls and returns
// from subroutines immediately
type fakeCPU struct {
	rec  *recorder
	s    *session.Session
	exec func(n int) error

	executes atomic.Int32
	check    atomic.Bool
}

func (c *fakeCPU) Execute() error {
	n := int(c.executes.Add(1))
	if c.exec != nil {
		return c.exec(n)
	}
	return c.spin()
}

func (c *fakeCPU) spin() error {
	for {
		if c.s.IsNested() {
			c.s.ScheduleSuspendSubroutineReturn()
		}
		if c.check.Swap(false) {
			if err := c.s.ExecuteSpecial(false); err != nil {
				return err
			}
		}
		if c.s.BreakOnSysCall() {
			c.s.ScheduleSuspendSysCall()
		}
		if c.s.CheckForBreak() {
			return nil
		}
		time.Sleep(50 * time.Microsecond)
	}
}

func (c *fakeCPU) Reset(hard bool) {
	c.rec.add("cpu")
}

func (c *fakeCPU) Save(f emulation.SessionFile) error {
	c.rec.add("cpu.save")
	return f.WriteChunk("cpu", []byte("cpu"))
}

func (c *fakeCPU) Load(f emulation.SessionFile) error {
	c.rec.add("cpu.load")
	_, err := f.ReadChunk("cpu")
	return err
}

func (c *fakeCPU) CheckAfterCycle() {
	c.check.Store(true)
}

type fixture struct {
	s        *session.Session
	cpu      *fakeCPU
	rec      *recorder
	os       *fakeOS
	platform *fakeSubsystem
	playback *fakePlayback
}

var testConfig = emulation.Configuration{
	Device:  "test",
	RAMSize: 0x1000,
	ROMFile: "test.rom",
}

// create a session with a full set of fake collaborators. the session is
// destroyed when the test ends
func newFixture(t *testing.T, threaded bool) *fixture {
	t.Helper()

	f := &fixture{
		rec:      &recorder{},
		playback: &fakePlayback{},
	}
	f.cpu = &fakeCPU{rec: f.rec}
	f.platform = &fakeSubsystem{name: "platform", rec: f.rec}
	f.os = &fakeOS{fakeSubsystem: fakeSubsystem{name: "os", rec: f.rec}}

	collab := session.Collaborators{
		CPU: func(_ emulation.Configuration, sched emulation.Scheduler) (emulation.CPU, error) {
			f.cpu.s = sched.(*session.Session)
			return f.cpu, nil
		},
		Memory:   &fakeMemory{fakeSubsystem{name: "memory", rec: f.rec}},
		Platform: f.platform,
		Debug:    &fakeSubsystem{name: "debug", rec: f.rec},
		Host:     &fakeSubsystem{name: "host", rec: f.rec},
		Screen:   &fakeSubsystem{name: "screen", rec: f.rec},
		Errors:   &fakeSubsystem{name: "errors", rec: f.rec},
		OS:       f.os,
		Buttons:  &fakeButtons{rec: f.rec},
		Playback: f.playback,
		Notify:   &fakeNotify{rec: f.rec},
	}

	p, err := session.NewPreferences(nil)
	require.NoError(t, err)
	require.NoError(t, p.Threaded.Set(threaded))

	f.s, err = session.NewSession(collab, p)
	require.NoError(t, err)
	t.Cleanup(f.s.Destroy)

	f.os.s = f.s

	require.NoError(t, f.s.CreateNew(testConfig))
	f.rec.clear()

	return f
}

// wait for the session to reach the state
func (f *fixture) eventually(t *testing.T, state govern.State) {
	t.Helper()
	require.Eventually(t, func() bool {
		return f.s.State() == state
	}, time.Second, time.Millisecond, "waiting for %s", state)
}
