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

// Package random provides random numbers that are a function of the position
// within a run.
//
// A run that is restarted from a snapshot will see the same random numbers
// as the original run, provided the position is part of the snapshot. This
// is what makes a horde run reproducible from its automatic snapshots.
//
// By default the numbers also depend on a base seed chosen when the program
// starts. Setting the ZeroSeed field removes that dependency, making the
// numbers identical between separate invocations of the program.
package random
