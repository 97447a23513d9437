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

//go:build statsview

package statsview

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// only one server can run in the process
var running struct {
	crit sync.Mutex
	mgr  *statsview.ViewManager
}

// Launch the statistics server in its own goroutine. The returned function
// stops the server. Launching a second server while one is running returns
// the stop function of the running server.
func Launch(output io.Writer, cfg Config) func() {
	running.crit.Lock()
	defer running.crit.Unlock()

	if running.mgr != nil {
		fmt.Fprintf(output, "stats server already running\n")
		return stop
	}

	cfg = cfg.normalise()

	viewer.SetConfiguration(
		viewer.WithAddr(cfg.Addr),
		viewer.WithInterval(int(cfg.Interval/time.Millisecond)),
		viewer.WithMaxPoints(cfg.MaxPoints),
	)

	mgr := statsview.New()
	running.mgr = mgr
	go mgr.Start()

	fmt.Fprintf(output, "stats server available at %s%s\n", cfg.Addr, url)

	return stop
}

func stop() {
	running.crit.Lock()
	defer running.crit.Unlock()
	if running.mgr != nil {
		running.mgr.Stop()
		running.mgr = nil
	}
}

// Available returns true if the statistics server can be launched.
func Available() bool {
	return true
}
