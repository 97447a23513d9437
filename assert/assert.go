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

package assert

import (
	"fmt"
	"runtime"
)

// location of the failed assertion, in the form "file:line"
func caller() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "unknown"
	}
	return fmt.Sprintf("%s:%d", file, line)
}

// Assert that the condition is true. The optional msg arguments are
// formatted with fmt.Sprint() and help to identify the assertion.
func Assert(cond bool, msg ...any) {
	if cond {
		return
	}
	fail(caller(), fmt.Sprint(msg...))
}
