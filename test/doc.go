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

// Package test contains helper functions to remove common boilerplate from
// the core's tests.
//
// The Expect functions report a failure with t.Errorf() and testing
// continues. The Demand functions report with t.Fatalf() and should be used
// when later parts of a test depend on the value being correct. For example,
// testing that the length of a slice is correct before indexing it.
//
// Success and failure are interpreted according to type:
//
//	bool -> true is success
//	error -> nil is success
//	nil -> success
//
// The CompareWriter type implements io.Writer and captures output so that it
// can be compared against an expected string.
package test
