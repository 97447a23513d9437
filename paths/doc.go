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

// Package paths contains functions to prepare paths to emucore resources.
//
// The ResourcePath() function prepends the resource with the base resource
// path. For example, the following returns the path to the preferences file:
//
//	pth, err := paths.ResourcePath("", "emucore.hcl")
//
// If a directory named ".emucore" is present in the program's current
// directory then that is the base path. Otherwise the base path is the
// "emucore" directory in the user's config directory, as returned by
// os.UserConfigDir(). On a modern Linux system, the path returned by the
// example above is:
//
//	/home/user/.config/emucore/emucore.hcl
//
// The directory part of the resource path is created if it does not exist.
package paths
