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

package eventqueue

import "sync"

// Queue is a FIFO of events. Insertion order is preserved.
type Queue[T any] struct {
	crit  sync.Mutex
	items []T
}

// Put adds an event to the back of the queue.
func (q *Queue[T]) Put(ev T) {
	q.crit.Lock()
	defer q.crit.Unlock()
	q.items = append(q.items, ev)
}

// Len returns the number of events in the queue.
func (q *Queue[T]) Len() int {
	q.crit.Lock()
	defer q.crit.Unlock()
	return len(q.items)
}

// Has returns true if there is at least one event in the queue.
func (q *Queue[T]) Has() bool {
	return q.Len() > 0
}

// Peek returns the event at the front of the queue without removing it.
// Returns false if the queue is empty.
func (q *Queue[T]) Peek() (T, bool) {
	q.crit.Lock()
	defer q.crit.Unlock()
	if len(q.items) == 0 {
		var z T
		return z, false
	}
	return q.items[0], true
}

// Get removes and returns the event at the front of the queue. Returns false
// if the queue is empty.
func (q *Queue[T]) Get() (T, bool) {
	q.crit.Lock()
	defer q.crit.Unlock()
	if len(q.items) == 0 {
		var z T
		return z, false
	}
	ev := q.items[0]

	// zero the vacated slot so that it doesn't hold a reference
	var z T
	q.items[0] = z
	q.items = q.items[1:]

	return ev, true
}

// Clear removes all events from the queue.
func (q *Queue[T]) Clear() {
	q.crit.Lock()
	defer q.crit.Unlock()
	q.items = nil
}
