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
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/emucore/emucore/horde"
	"github.com/emucore/emucore/modalflag"
	"github.com/emucore/emucore/performance"
	"github.com/emucore/emucore/session"
	"github.com/emucore/emucore/version"
	"golang.org/x/sync/errgroup"
)

func run(md *modalflag.Modes, input io.Reader, output io.Writer) error {
	md.NewMode()

	o, err := addOptions(md)
	if err != nil {
		return err
	}
	md.AdditionalHelp("keys: 1-4 buttons, p pen, s suspend, c continue, r reset, R hard reset,\n" +
		"      a alert, b break, d dump scheduler state, w save session, q quit")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	defer o.apply(md, output, nil)()

	r, err := newRig(o, output)
	if err != nil {
		return err
	}
	defer r.destroy()

	next, cleanup, err := keySource(input)
	if err != nil {
		return err
	}
	defer cleanup()

	return drive(r, next, nil)
}

func hordeRun(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	o, err := addOptions(md)
	if err != nil {
		return err
	}
	depth := md.AddInt("depth", 1000, "number of events generated by each gremlin")
	gremlins := md.AddInt("gremlins", 10, "number of gremlins in the horde")
	saveFreq := md.AddInt("savefreq", 0, "take a snapshot every n events (0 to disable)")
	dir := md.AddString("dir", "", "directory for snapshots and event logs")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	defer o.apply(md, output, map[string]string{
		"depth":    fmt.Sprintf("%s::%d", session.PrefHordeDepth, *depth),
		"gremlins": fmt.Sprintf("%s::%d", session.PrefHordeMaxGremlins, *gremlins),
	})()

	r, err := newRig(o, output)
	if err != nil {
		return err
	}
	defer r.destroy()

	h := horde.NewHorde(r.s, horde.Config{
		Depth:         r.prefs.HordeDepth.Get().(int),
		MaxGremlins:   r.prefs.HordeMaxGremlins.Get().(int),
		SaveFrequency: *saveFreq,
		Dir:           *dir,
	})
	r.s.SetHarness(h)
	r.dev.CPU().SetEventSource(h)

	h.Start()

	err = drive(r, nil, r.notes.hordeOff)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "horde finished: %d gremlins, %d snapshots\n", h.Gremlin()+1, h.AutoSaves())

	return nil
}

func perform(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	o, err := addOptions(md)
	if err != nil {
		return err
	}
	duration := md.AddDuration("duration", 5*time.Second, "length of the measurement")
	leadtime := md.AddDuration("leadtime", 2*time.Second, "time to run before measuring")
	profile := md.AddString("profile", "none", "profiling to perform: NONE, CPU, MEM, TRACE or ALL (comma separated)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	defer o.apply(md, output, nil)()

	r, err := newRig(o, output)
	if err != nil {
		return err
	}
	defer r.destroy()

	return performance.Check(output, prf, r.s, func() uint64 {
		return r.dev.CPU().Stats().Cycles
	}, *leadtime, *duration)
}

func showVersion(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *revision {
		fmt.Fprintln(output, version.String())
	} else {
		v, _, _ := version.Version()
		fmt.Fprintln(output, v)
	}

	return nil
}

// drive the session until the quit key is pressed, the input is exhausted,
// the process is interrupted or the done channel receives. if next is nil
// there is no keyboard input
func drive(r *rig, next func() (byte, error), done <-chan struct{}) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	var keys chan byte
	if next != nil {
		keys = make(chan byte)
		go readKeys(ctx, next, keys)
	}

	r.s.CreateThread(false)
	defer r.s.DestroyThread()

	c := &control{r: r}

	g.Go(func() error {
		defer cancel()
		return c.loop(ctx, keys)
	})

	g.Go(func() error {
		select {
		case <-ctx.Done():
		case <-done:
			cancel()
		}
		return nil
	})

	return g.Wait()
}
