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

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/emucore/emucore/easyterm"
	"github.com/emucore/emucore/eventqueue"
	"github.com/emucore/emucore/govern"
	"github.com/emucore/emucore/idlecpu"
	"github.com/emucore/emucore/logger"
	"github.com/emucore/emucore/paths"
	"github.com/emucore/emucore/session"
	"github.com/emucore/emucore/userinput"
)

type actionType int

const (
	actNone actionType = iota
	actQuit
	actTap
	actPen
	actSuspend
	actContinue
	actReset
	actVirtual
	actDump
	actSave
	actKey
)

// action is the result of mapping a key press
type action struct {
	typ     actionType
	button  userinput.Button
	reset   govern.ResetType
	virtual int
	char    rune
}

func mapKey(b byte) action {
	switch b {
	case '1', '2', '3', '4':
		return action{typ: actTap, button: userinput.App1 + userinput.Button(b-'1')}
	case 'p':
		return action{typ: actPen}
	case 's':
		return action{typ: actSuspend}
	case 'c':
		return action{typ: actContinue}
	case 'r':
		return action{typ: actReset, reset: govern.ResetSoft}
	case 'R':
		return action{typ: actReset, reset: govern.ResetHard}
	case 'a':
		return action{typ: actVirtual, virtual: idlecpu.VirtualAlert}
	case 'b':
		return action{typ: actVirtual, virtual: idlecpu.VirtualBreak}
	case 'd':
		return action{typ: actDump}
	case 'w':
		return action{typ: actSave}
	case 'q', easyterm.KeyCtrlC, easyterm.KeyCtrlD:
		return action{typ: actQuit}
	}

	if b >= ' ' && b < easyterm.KeyBackspace {
		return action{typ: actKey, char: rune(b)}
	}

	return action{typ: actNone}
}

// keySource returns a function that waits for the next key press. If input
// is a terminal it is put into cbreak mode until the cleanup function is
// called
func keySource(input io.Reader) (func() (byte, error), func(), error) {
	if f, ok := input.(*os.File); ok && easyterm.IsTerminal(f) {
		var term easyterm.Terminal
		if err := term.Initialise(f, os.Stdout); err != nil {
			return nil, nil, err
		}
		if err := term.CBreakMode(); err != nil {
			term.CleanUp()
			return nil, nil, err
		}
		return term.ReadKey, func() {
			_ = term.CanonicalMode()
			term.CleanUp()
		}, nil
	}

	r := bufio.NewReader(input)
	return r.ReadByte, func() {}, nil
}

// readKeys sends every key press to the keys channel. The channel is closed
// when the input is exhausted or the context is done
func readKeys(ctx context.Context, next func() (byte, error), keys chan<- byte) {
	defer close(keys)
	for {
		b, err := next()
		if err != nil {
			if err != io.EOF {
				logger.Log(logger.Allow, "emucore", err)
			}
			return
		}

		select {
		case keys <- b:
		case <-ctx.Done():
			return
		}
	}
}

// control is the control thread
type control struct {
	r    *rig
	held *session.Stopper
	pen  int
}

// loop services dialogs, key presses and, if the session is not threaded,
// runs the CPU in small increments. returns when the context is done or the
// quit key is pressed
func (c *control) loop(ctx context.Context, keys <-chan byte) error {
	defer c.releaseHeld()

	tck := time.NewTicker(time.Millisecond)
	defer tck.Stop()

	s := c.r.s

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-c.r.mb.Signal:
			c.r.mb.Service(s.UnblockDialog)

		case b, ok := <-keys:
			if !ok {
				return nil
			}
			if quit, err := c.perform(mapKey(b)); err != nil || quit {
				return err
			}

		case <-tck.C:
			if !s.Threaded() && c.held == nil {
				s.ExecuteIncremental()
			}
		}
	}
}

func (c *control) releaseHeld() {
	if c.held != nil {
		c.held.Release()
		c.held = nil
	}
}

func (c *control) perform(act action) (bool, error) {
	s := c.r.s

	switch act.typ {
	case actQuit:
		return true, nil

	case actTap:
		s.SetButtonTap(act.button)

	case actPen:
		c.pen = (c.pen + 16) % 160
		s.PostPenEvent(eventqueue.PenEvent{X: c.pen, Y: c.pen, Down: true})
		s.PostPenEvent(eventqueue.PenEvent{X: c.pen, Y: c.pen})

	case actSuspend:
		if c.held != nil {
			c.releaseHeld()
			fmt.Fprintln(c.r.output, "resumed")
		} else {
			c.held = session.NewStopper(s, govern.StopOnCycle)
			fmt.Fprintf(c.r.output, "suspended (%s)\n", s.State())
		}

	case actContinue:
		st := session.NewStopper(s, govern.StopNow)
		if st.Stopped() {
			l := s.SuspendState(session.ControlThread)
			l.ByDebugger = 0
			s.SetSuspendState(session.ControlThread, l)
		}
		st.Release()

	case actReset:
		s.ScheduleReset(act.reset)

	case actVirtual:
		s.PostKeyEvent(eventqueue.KeyEvent{Virtual: act.virtual})

	case actKey:
		s.PostKeyEvent(eventqueue.KeyEvent{Char: act.char})

	case actDump:
		fn, err := paths.ResourcePath("dumps", paths.UniqueFilename("scheduler", "")+".dot")
		if err != nil {
			return false, err
		}
		f, err := os.Create(fn)
		if err != nil {
			return false, err
		}
		s.DumpState(f)
		if err := f.Close(); err != nil {
			return false, err
		}
		fmt.Fprintf(c.r.output, "scheduler state written to %s\n", fn)

	case actSave:
		fn := s.File()
		if fn == "" {
			var err error
			fn, err = paths.ResourcePath("sessions", paths.UniqueFilename("session", s.Configuration().Device))
			if err != nil {
				return false, err
			}
		}

		st := session.NewStopper(s, govern.StopOnCycle)
		err := s.SaveFile(fn, true)
		st.Release()
		if err != nil {
			logger.Log(logger.Allow, "emucore", err)
		} else {
			fmt.Fprintf(c.r.output, "session saved to %s\n", fn)
		}
	}

	return false, nil
}
