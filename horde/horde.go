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

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/emucore/emucore/curated"
	"github.com/emucore/emucore/emulation"
	"github.com/emucore/emucore/eventqueue"
	"github.com/emucore/emucore/logger"
	"github.com/emucore/emucore/random"
)

// Error patterns.
const (
	NoRootState      = "horde: no root state"
	NoSuspendedState = "horde: no suspended state"
	StateFile        = "horde: state file: %v"
)

// Config for a horde run.
type Config struct {
	// number of events each gremlin generates
	Depth int

	// number of gremlins in the horde
	MaxGremlins int

	// an automatic snapshot of the state is taken every SaveFrequency events.
	// zero means never
	SaveFrequency int

	// directory to write automatic snapshots and event logs to. if empty
	// snapshots are kept in memory only
	Dir string

	// if true the events generated differ between invocations of the
	// program. by default a run is reproducible
	RandomSeed bool

	// dimensions of the emulated screen. used to generate pen events
	ScreenWidth, ScreenHeight int
}

// Event is a synthetic event generated by a gremlin. Exactly one of Key or
// Pen is set.
type Event struct {
	Key *eventqueue.KeyEvent
	Pen *eventqueue.PenEvent
}

func (ev Event) String() string {
	if ev.Key != nil {
		return ev.Key.String()
	}
	if ev.Pen != nil {
		return ev.Pen.String()
	}
	return "no event"
}

// Horde is the reference implementation of the Harness interface.
type Horde struct {
	sess Session
	cfg  Config

	on atomic.Bool

	// protects all fields below
	crit sync.Mutex

	// identifies the horde run. used to name files
	run uuid.UUID

	gremlin int
	counter int
	rnd     *random.Random
	events  []Event

	root      *emulation.ChunkFile
	suspended *emulation.ChunkFile
	autoSaves int
}

// NewHorde is the preferred method of initialisation for the Horde type.
func NewHorde(sess Session, cfg Config) *Horde {
	if cfg.ScreenWidth <= 0 {
		cfg.ScreenWidth = 160
	}
	if cfg.ScreenHeight <= 0 {
		cfg.ScreenHeight = 160
	}
	return &Horde{
		sess: sess,
		cfg:  cfg,
	}
}

// Start a new horde run. The root state is saved at the next safe point and
// the first gremlin starts from it.
func (h *Horde) Start() {
	h.crit.Lock()
	h.run = uuid.New()
	h.gremlin = 0
	h.counter = 0
	h.events = h.events[:0]
	h.autoSaves = 0
	h.rnd = random.NewRandom(gremlinPosition{h: h})
	h.rnd.ZeroSeed = !h.cfg.RandomSeed
	h.crit.Unlock()

	logger.Logf(logger.Allow, "horde", "starting run %s", h.run)

	h.on.Store(true)
	h.sess.ScheduleSaveRootState()
}

// IsOn implements the Harness interface.
func (h *Horde) IsOn() bool {
	return h.on.Load()
}

// TurnOn implements the Harness interface.
func (h *Horde) TurnOn(on bool) {
	if h.on.Swap(on) != on {
		if on {
			logger.Log(logger.Allow, "horde", "on")
		} else {
			logger.Log(logger.Allow, "horde", "off")
		}
	}
}

// Gremlin returns the number of the current gremlin.
func (h *Horde) Gremlin() int {
	h.crit.Lock()
	defer h.crit.Unlock()
	return h.gremlin
}

// Counter returns the number of events generated by the current gremlin.
func (h *Horde) Counter() int {
	h.crit.Lock()
	defer h.crit.Unlock()
	return h.counter
}

// AutoSaves returns the number of automatic snapshots taken in the run.
func (h *Horde) AutoSaves() int {
	h.crit.Lock()
	defer h.crit.Unlock()
	return h.autoSaves
}

// Next returns the next synthetic event. Should be called by the CPU engine
// whenever the emulated OS asks for an event while the horde is on.
//
// Returns false if the horde is off or the current gremlin has finished.
func (h *Horde) Next() (Event, bool) {
	if !h.IsOn() {
		return Event{}, false
	}

	h.crit.Lock()
	defer h.crit.Unlock()

	if h.rnd == nil || h.counter >= h.cfg.Depth {
		return Event{}, false
	}

	rnd := h.rnd.Rand()

	var ev Event
	if rnd.IntN(3) == 0 {
		k := eventqueue.KeyEvent{Char: rune('a' + rnd.IntN(26))}
		ev.Key = &k
	} else {
		p := eventqueue.PenEvent{
			X:    rnd.IntN(h.cfg.ScreenWidth),
			Y:    rnd.IntN(h.cfg.ScreenHeight),
			Down: rnd.IntN(2) == 0,
		}
		ev.Pen = &p
	}

	h.events = append(h.events, ev)
	h.counter++

	// only one state transition can be pending at a time. starting the next
	// gremlin takes precedence over an automatic snapshot
	if h.counter >= h.cfg.Depth {
		h.sess.ScheduleNextGremlinFromRootState()
	} else if h.cfg.SaveFrequency > 0 && h.counter%h.cfg.SaveFrequency == 0 {
		h.sess.ScheduleAutoSaveState()
	}

	return ev, true
}

// SaveEvents implements the Harness interface.
func (h *Horde) SaveEvents() error {
	h.crit.Lock()
	defer h.crit.Unlock()

	if h.cfg.Dir == "" {
		return nil
	}

	fn := filepath.Join(h.cfg.Dir, fmt.Sprintf("%s_%03d.events", h.run, h.gremlin))
	f, err := os.Create(fn)
	if err != nil {
		return curated.Errorf(StateFile, err)
	}
	defer f.Close()

	for _, ev := range h.events {
		fmt.Fprintln(f, ev.String())
	}

	return nil
}

// AutoSaveState implements the Harness interface.
func (h *Horde) AutoSaveState() error {
	f := emulation.NewChunkFile()
	if err := h.sess.Save(f); err != nil {
		return err
	}

	h.crit.Lock()
	defer h.crit.Unlock()

	h.autoSaves++

	if h.cfg.Dir == "" {
		return nil
	}

	fn := filepath.Join(h.cfg.Dir, fmt.Sprintf("%s_%03d_%06d.state", h.run, h.gremlin, h.counter))
	o, err := os.Create(fn)
	if err != nil {
		return curated.Errorf(StateFile, err)
	}
	defer o.Close()

	return f.Write(o)
}

// SaveRootState implements the Harness interface.
func (h *Horde) SaveRootState() error {
	f := emulation.NewChunkFile()
	if err := h.sess.Save(f); err != nil {
		return err
	}

	h.crit.Lock()
	h.root = f
	h.crit.Unlock()

	return h.startGremlin(0)
}

// SaveSuspendedState implements the Harness interface.
func (h *Horde) SaveSuspendedState() error {
	f := emulation.NewChunkFile()
	if err := h.sess.Save(f); err != nil {
		return err
	}

	h.crit.Lock()
	h.suspended = f
	h.crit.Unlock()

	return nil
}

// LoadRootState implements the Harness interface.
func (h *Horde) LoadRootState() error {
	h.crit.Lock()
	f := h.root
	h.crit.Unlock()

	if f == nil {
		return curated.Errorf(NoRootState)
	}
	return h.sess.Load(f)
}

// LoadSuspendedState implements the Harness interface.
func (h *Horde) LoadSuspendedState() error {
	h.crit.Lock()
	f := h.suspended
	h.crit.Unlock()

	if f == nil {
		return curated.Errorf(NoSuspendedState)
	}
	return h.sess.Load(f)
}

// StartGremlinFromLoadedRootState implements the Harness interface.
func (h *Horde) StartGremlinFromLoadedRootState() error {
	h.crit.Lock()
	next := h.gremlin + 1
	h.crit.Unlock()

	if next >= h.cfg.MaxGremlins {
		h.TurnOn(false)
		return nil
	}

	return h.startGremlin(next)
}

// StartGremlinFromLoadedSuspendedState implements the Harness interface.
// The current gremlin continues from where it was suspended.
func (h *Horde) StartGremlinFromLoadedSuspendedState() error {
	h.TurnOn(true)
	return nil
}

// the position of the horde for the random number generator. the gremlin
// and counter fields are only read when crit is held
type gremlinPosition struct {
	h *Horde
}

func (p gremlinPosition) Position() (uint64, uint64) {
	return uint64(p.h.gremlin), uint64(p.h.counter)
}

func (h *Horde) startGremlin(n int) error {
	h.crit.Lock()
	defer h.crit.Unlock()

	h.gremlin = n
	h.counter = 0
	h.events = h.events[:0]

	logger.Logf(logger.Allow, "horde", "gremlin #%d", n)

	return nil
}
