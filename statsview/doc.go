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

// Package statsview serves runtime statistics over HTTP. The server is only
// available when the statsview build tag is present. Without the tag,
// Launch() does nothing and Available() returns false.
//
// The address, sampling interval and graph length are set with Config. With
// the default address the graphs are at:
//
//	localhost:12700/debug/statsview
//
// And the standard pprof pages are at:
//
//	localhost:12700/debug/pprof/
package statsview
