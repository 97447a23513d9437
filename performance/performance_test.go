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

package performance_test

import (
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/emucore/emucore/curated"
	"github.com/emucore/emucore/performance"
	"github.com/emucore/emucore/test"
)

type emulation struct {
	cycles  atomic.Uint64
	created bool
	stopped bool
}

func (e *emulation) CreateThread(_ bool) {
	e.created = true
}

func (e *emulation) DestroyThread() {
	e.stopped = true
}

func (e *emulation) Threaded() bool {
	return false
}

func (e *emulation) ExecuteIncremental() {
	e.cycles.Add(100)
}

func TestParseProfileString(t *testing.T) {
	p, err := performance.ParseProfileString("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)

	p, err = performance.ParseProfileString("cpu, trace")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileTrace)

	p, err = performance.ParseProfileString("ALL")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileAll)

	_, err = performance.ParseProfileString("cpu,disk")
	test.ExpectSuccess(t, curated.Is(err, performance.UnknownProfile))
}

func TestCalcRate(t *testing.T) {
	test.ExpectEquality(t, performance.CalcRate(1000, 2), 500.0)
	test.ExpectEquality(t, performance.CalcRate(1000, 0), 0.0)
}

func TestCheck(t *testing.T) {
	emu := &emulation{}

	var out strings.Builder
	err := performance.Check(&out, performance.ProfileNone, emu, emu.cycles.Load, 5*time.Millisecond, 20*time.Millisecond)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, emu.created)
	test.ExpectSuccess(t, emu.stopped)
	test.ExpectSuccess(t, strings.Contains(out.String(), "cycles per second"))
}
