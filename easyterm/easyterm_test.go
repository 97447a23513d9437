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

package easyterm_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/emucore/emucore/curated"
	"github.com/emucore/emucore/easyterm"
	"github.com/emucore/emucore/test"
)

func TestInitialise(t *testing.T) {
	var pt easyterm.Terminal

	err := pt.Initialise(nil, os.Stdout)
	test.ExpectSuccess(t, curated.Is(err, easyterm.NoInput))

	err = pt.Initialise(os.Stdin, nil)
	test.ExpectSuccess(t, curated.Is(err, easyterm.NoOutput))

	// a regular file is never a terminal
	f, err := os.Create(filepath.Join(t.TempDir(), "input"))
	test.DemandSuccess(t, err)
	defer f.Close()

	test.ExpectFailure(t, easyterm.IsTerminal(f))
	err = pt.Initialise(f, os.Stdout)
	test.ExpectSuccess(t, curated.Is(err, easyterm.NotTerminal))
}
