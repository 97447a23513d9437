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

package random

import (
	"math/rand/v2"
	"time"
)

// the base seed for all random numbers
var baseSeed uint64

func init() {
	baseSeed = uint64(time.Now().UnixNano())
}

// Position is implemented by types that know where in a run they are. The two
// values are combined to seed the random number generator.
type Position interface {
	Position() (uint64, uint64)
}

// Random is a random number generator that is sensitive to the position
// within a run.
type Random struct {
	pos Position

	// use zero seed rather than the random base seed
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(pos Position) *Random {
	return &Random{
		pos: pos,
	}
}

// Rand returns a generator seeded for the current position. Successive calls
// at the same position return generators that produce the same sequence.
func (rnd *Random) Rand() *rand.Rand {
	a, b := rnd.pos.Position()
	if rnd.ZeroSeed {
		return rand.New(rand.NewPCG(a, b))
	}
	return rand.New(rand.NewPCG(baseSeed^a, b))
}

// IntN returns a number in the range [0,n) for the current position.
func (rnd *Random) IntN(n int) int {
	return rnd.Rand().IntN(n)
}
