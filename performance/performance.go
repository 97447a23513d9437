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

package performance

import (
	"fmt"
	"io"
	"time"
)

// Emulation is the part of the session that Check() drives.
type Emulation interface {
	CreateThread(suspended bool)
	DestroyThread()
	Threaded() bool
	ExecuteIncremental()
}

// Check the performance of the emulation. The emulation runs for the
// leadtime, to allow the rate to settle, and then for the specified
// duration. The cycles function returns the number of cycles executed by the
// CPU so far.
//
// The result is written to output as cycles per second.
func Check(output io.Writer, profile Profile, emu Emulation, cycles func() uint64, leadtime time.Duration, duration time.Duration) error {
	var startCycles uint64
	var endCycles uint64

	runner := func() error {
		emu.CreateThread(false)
		defer emu.DestroyThread()

		lead := time.After(leadtime)
		var done <-chan time.Time

		for {
			select {
			case <-lead:
				startCycles = cycles()
				done = time.After(duration)
				lead = nil
			case <-done:
				endCycles = cycles()
				return nil
			default:
				if emu.Threaded() {
					time.Sleep(time.Millisecond)
				} else {
					emu.ExecuteIncremental()
				}
			}
		}
	}

	if err := RunProfiler(profile, "performance", runner); err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	n := endCycles - startCycles
	rate := CalcRate(n, duration.Seconds())
	fmt.Fprintf(output, "%.0f cycles per second (%d cycles in %.2f seconds)\n", rate, n, duration.Seconds())

	return nil
}

// CalcRate returns the number of cycles per second.
func CalcRate(cycles uint64, seconds float64) float64 {
	if seconds <= 0 {
		return 0
	}
	return float64(cycles) / seconds
}
