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
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/emucore/emucore/logger"
	"github.com/emucore/emucore/modalflag"
	"github.com/emucore/emucore/paths"
	"github.com/emucore/emucore/prefs"
	"github.com/emucore/emucore/session"
	"github.com/emucore/emucore/statsview"
)

const defaultPrefsFile = "emucore.hcl"

func main() {
	os.Exit(launch(os.Args[1:], os.Stdin, os.Stdout))
}

// launch returns the exit status of the program
func launch(args []string, input io.Reader, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "HORDE", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, input, output)

	case "HORDE":
		err = hordeRun(md, output)

	case "PERFORMANCE":
		err = perform(md, output)

	case "VERSION":
		err = showVersion(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return 20
	}

	return 0
}

// options common to all modes
type options struct {
	threaded  *bool
	speed     *int
	prefsFile *string
	statsview *bool
	statsAddr *string
	log       *bool
	device    *string
	ram       *int
	load      *string
}

func addOptions(md *modalflag.Modes) (*options, error) {
	defPrefs, err := paths.ResourcePath("", defaultPrefsFile)
	if err != nil {
		return nil, err
	}

	return &options{
		threaded:  md.AddBool("threaded", true, "run the CPU in its own goroutine"),
		speed:     md.AddInt("speed", 100, "emulation speed as a percentage"),
		prefsFile: md.AddString("prefs", defPrefs, "preferences file"),
		statsview: md.AddBool("statsview", false, fmt.Sprintf("launch the statistics server (available: %v)", statsview.Available())),
		statsAddr: md.AddString("statsaddr", statsview.DefaultAddr, "address of the statistics server"),
		log:       md.AddBool("log", false, "echo the log to stdout"),
		device:    md.AddString("device", "idle", "name of the emulated device"),
		ram:       md.AddInt("ram", 0x10000, "amount of RAM in bytes"),
		load:      md.AddString("load", "", "session file to load"),
	}, nil
}

// preference values given on the command line. flags that were not used
// do not override the preferences file
func (o *options) commandLinePrefs(md *modalflag.Modes, extra map[string]string) string {
	var s []string
	md.Visit(func(flag string) {
		switch flag {
		case "threaded":
			s = append(s, fmt.Sprintf("%s::%v", session.PrefThreaded, *o.threaded))
		case "speed":
			s = append(s, fmt.Sprintf("%s::%d", session.PrefSpeed, *o.speed))
		default:
			if k, ok := extra[flag]; ok {
				s = append(s, k)
			}
		}
	})
	return strings.Join(s, "; ")
}

// apply the options that take effect before the session is created. the
// returned function should be called when the mode ends
func (o *options) apply(md *modalflag.Modes, output io.Writer, extra map[string]string) func() {
	prefs.PushCommandLineStack(o.commandLinePrefs(md, extra))

	if *o.log {
		logger.SetEcho(output, false)
	} else {
		logger.SetEcho(nil, false)
	}

	stopStats := func() {}
	if *o.statsview {
		if statsview.Available() {
			stopStats = statsview.Launch(output, statsview.Config{Addr: *o.statsAddr})
		} else {
			fmt.Fprintln(output, "! statistics server not available in this build")
		}
	}

	return func() {
		stopStats()
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "emucore", "unused command line preferences: %s", unused)
		}
		logger.SetEcho(nil, false)
	}
}
