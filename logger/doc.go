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

// Package logger is the central log for the emulation core. Entries are
// tagged with the component that created them and consecutive duplicate
// entries are collapsed into a single entry with a repeat count.
//
// Logging is gated by the Permission interface. Components that can be
// excessively noisy (the CPU engine during a gremlin run, for example) can
// supply a Permission implementation that suppresses logging at those times.
// The logger.Allow value always permits logging.
//
// The package level functions operate on the central logger. Instances
// created with NewLogger() are independent of the central logger and are
// mostly useful for testing.
package logger
