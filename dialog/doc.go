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

// Package dialog supports modal dialogs requested by the CPU thread and
// presented by the control thread.
//
// The CPU thread creates a Request and hands it to a Host. The control
// thread runs the request's callback, which presents the dialog, and the
// result is stored in the request. The CPU thread waits for the result
// using the session's shared condition. See session.BlockOnDialog().
package dialog
