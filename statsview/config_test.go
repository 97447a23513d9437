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

package statsview

import (
	"testing"
	"time"

	"github.com/emucore/emucore/test"
)

func TestNormalise(t *testing.T) {
	cfg := Config{}.normalise()
	test.ExpectEquality(t, cfg.Addr, DefaultAddr)
	test.ExpectEquality(t, cfg.Interval, 2*time.Second)
	test.ExpectEquality(t, cfg.MaxPoints, 30)

	cfg = Config{Addr: "localhost:9000", Interval: time.Millisecond, MaxPoints: 10}.normalise()
	test.ExpectEquality(t, cfg.Addr, "localhost:9000")
	test.ExpectEquality(t, cfg.Interval, 2*time.Second)
	test.ExpectEquality(t, cfg.MaxPoints, 10)
}
