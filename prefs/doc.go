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

// Package prefs holds typed preference values. Each value is stored
// atomically so that it can be read by the CPU thread while being changed
// by the control thread.
//
// Values are registered with a Collection under a dotted key, for example
// "emulation.speed". A Collection can be set from an HCL file, in which
// blocks name the components of the key:
//
//	emulation {
//	    speed = 200
//	}
//
//	session {
//	    threaded = true
//	    sleepms  = 10
//	}
//
// Values given on the command line take precedence over those in the file.
// The command line is parsed into a stack of groups (see
// PushCommandLineStack()) and a Collection consumes the values for its keys
// from the top group.
package prefs
