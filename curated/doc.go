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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and remember the pattern
// they were created with. This allows errors to be compared by pattern
// rather than by the formatted message:
//
//	const NoThread = "session: no cpu thread"
//
//	e := curated.Errorf(NoThread)
//	if curated.Is(e, NoThread) {
//		fmt.Println("true")
//	}
//
// Curated errors can wrap other curated errors. The Has() function searches
// the chain of wrapped errors for a pattern:
//
//	e := curated.Errorf("deferred: %v", curated.Errorf(NoThread))
//	if curated.Has(e, NoThread) {
//		fmt.Println("true")
//	}
//
// Repeated message prefixes are removed when the error is formatted so that
// code does not need to worry about the context in which the error was
// created. The following prints "session: reset failed" and not "session:
// session: reset failed":
//
//	e := curated.Errorf("session: %v", curated.Errorf("session: reset failed"))
//	fmt.Println(e)
//
// Curated errors also support the Unwrap() convention of the standard
// library's errors package. Any error value passed as a formatting argument
// is returned by Unwrap().
package curated
