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

package dialog

import "sync"

// Mailbox is a Host that queues requests until the control thread services
// them.
type Mailbox struct {
	crit    sync.Mutex
	pending []*Request

	// signalled when a request is added. buffered so that ScheduleDialog()
	// never blocks
	Signal chan struct{}
}

// NewMailbox is the preferred method of initialisation for the Mailbox type.
func NewMailbox() *Mailbox {
	return &Mailbox{
		Signal: make(chan struct{}, 1),
	}
}

// ScheduleDialog implements the Host interface.
func (mb *Mailbox) ScheduleDialog(r *Request) {
	mb.crit.Lock()
	mb.pending = append(mb.pending, r)
	mb.crit.Unlock()

	select {
	case mb.Signal <- struct{}{}:
	default:
	}
}

// Pending returns the number of requests waiting to be serviced.
func (mb *Mailbox) Pending() int {
	mb.crit.Lock()
	defer mb.crit.Unlock()
	return len(mb.pending)
}

// Service runs all pending requests in the order they were scheduled. The
// unblock function is called after each request has completed and should
// wake the waiting CPU thread.
func (mb *Mailbox) Service(unblock func()) int {
	mb.crit.Lock()
	pending := mb.pending
	mb.pending = nil
	mb.crit.Unlock()

	for _, r := range pending {
		r.Run()
		if unblock != nil {
			unblock()
		}
	}

	return len(pending)
}
