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

import (
	"sync/atomic"
)

// ButtonID identifies the button used to dismiss a dialog.
type ButtonID int

// List of common ButtonID values. Dialogs may use their own values greater
// than or equal to zero.
const (
	// no button has been pressed. the dialog is still open or was abandoned
	ItemNone ButtonID = -1

	ItemOK     ButtonID = 0
	ItemCancel ButtonID = 1
	ItemDebug  ButtonID = 2
	ItemReset  ButtonID = 3
)

func (id ButtonID) String() string {
	switch id {
	case ItemNone:
		return "none"
	case ItemOK:
		return "ok"
	case ItemCancel:
		return "cancel"
	case ItemDebug:
		return "debug"
	case ItemReset:
		return "reset"
	}
	return "custom"
}

// Callback presents the dialog and returns the button used to dismiss it.
// The parameters are opaque to everything except the callback.
type Callback func(params any) ButtonID

// Request is a single blocking dialog call.
type Request struct {
	callback Callback
	params   any
	result   atomic.Int64
}

// NewRequest is the preferred method of initialisation for the Request type.
func NewRequest(callback Callback, params any) *Request {
	r := &Request{
		callback: callback,
		params:   params,
	}
	r.result.Store(int64(ItemNone))
	return r
}

// Run the dialog callback and store the result. Should be called on the
// control thread. A callback that returns ItemNone is treated as having
// been cancelled.
func (r *Request) Run() ButtonID {
	id := r.callback(r.params)
	if id == ItemNone {
		id = ItemCancel
	}
	r.Complete(id)
	return id
}

// Complete the request with the specified result without running the
// callback.
func (r *Request) Complete(id ButtonID) {
	r.result.Store(int64(id))
}

// Result of the dialog. ItemNone if the dialog has not been completed.
func (r *Request) Result() ButtonID {
	return ButtonID(r.result.Load())
}

// Done returns true if the request has been completed.
func (r *Request) Done() bool {
	return r.Result() != ItemNone
}

// Host accepts dialog requests from the CPU thread. ScheduleDialog() must
// not block.
type Host interface {
	ScheduleDialog(r *Request)
}
