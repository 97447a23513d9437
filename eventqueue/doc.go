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

// Package eventqueue implements the input queues between the control
// thread, which posts events, and the CPU thread, which consumes them.
//
// Queue is an ordered FIFO safe for one producer and one consumer (or
// more). PenQueue is a Queue of pen events that discards a pen-down event
// identical to the previously posted pen event.
package eventqueue
