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

// PenQueue is a queue of pen events that coalesces repeated pen-down
// events.
type PenQueue struct {
	Queue[PenEvent]

	crit sync.Mutex
	last PenEvent
}

// NewPenQueue is the preferred method of initialisation for the PenQueue
// type.
func NewPenQueue() *PenQueue {
	return &PenQueue{last: NoPen}
}

// Post adds the event to the queue. A pen-down event identical in position
// and state to the previously posted event is discarded and Post() returns
// false.
func (q *PenQueue) Post(ev PenEvent) bool {
	q.crit.Lock()
	defer q.crit.Unlock()

	if ev.Down && ev == q.last {
		return false
	}

	q.Put(ev)
	q.last = ev

	return true
}

// Forget the previously posted event. The next event will never be
// discarded.
func (q *PenQueue) Forget() {
	q.crit.Lock()
	defer q.crit.Unlock()
	q.last = NoPen
}
