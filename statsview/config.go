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

import "time"

// DefaultAddr is the address of the statistics server if none is given.
const DefaultAddr = "localhost:12700"

const url = "/debug/statsview"

// Config for the statistics server.
type Config struct {
	// address to listen on
	Addr string

	// how often the statistics are sampled. the CPU thread of a threaded
	// session runs continuously so a short interval is useful
	Interval time.Duration

	// number of samples shown on each graph
	MaxPoints int
}

// fill in zero fields with defaults
func (cfg Config) normalise() Config {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.Interval < 100*time.Millisecond {
		cfg.Interval = 2 * time.Second
	}
	if cfg.MaxPoints <= 0 {
		cfg.MaxPoints = 30
	}
	return cfg
}
