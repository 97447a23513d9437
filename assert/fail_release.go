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

//go:build !assertions

package assert

import "github.com/emucore/emucore/logger"

// Enabled is true if the assertions build tag is in use.
const Enabled = false

func fail(location string, msg string) {
	logger.Logf(logger.Allow, "assert", "failed at %s: %s", location, msg)
}
