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

package paths_test

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/emucore/emucore/paths"
	"github.com/emucore/emucore/test"
)

func TestResourcePath(t *testing.T) {
	// a .emucore directory in the current directory takes precedence
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { os.Chdir(wd) })

	test.DemandSuccess(t, os.Mkdir(".emucore", 0o700))

	pth, err := paths.ResourcePath("horde", "state")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".emucore", "horde", "state"))

	fi, err := os.Stat(filepath.Join(".emucore", "horde"))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, fi.IsDir())

	pth, err = paths.ResourcePath("", "emucore.hcl")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".emucore", "emucore.hcl"))

	pth, err = paths.ResourcePath("", "")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, pth, ".emucore")
}

func TestUniqueFilename(t *testing.T) {
	re := regexp.MustCompile(`^log_[0-9]{8}_[0-9]{6}$`)
	test.ExpectSuccess(t, re.MatchString(paths.UniqueFilename("log", "")))

	re = regexp.MustCompile(`^horde_gremlin_[0-9]{8}_[0-9]{6}$`)
	test.ExpectSuccess(t, re.MatchString(paths.UniqueFilename("horde", " gremlin ")))
}
