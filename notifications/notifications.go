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

package notifications

// Notice describes events that happen to the session that the environment
// might want to know about.
type Notice string

// List of defined notifications.
const (
	// the emulated runtime raised a reset. the notification is sent with the
	// message that should be shown to the user, before the reset happens
	NotifyResetException Notice = "NotifyResetException"

	// the emulated device has been reset
	NotifySessionReset Notice = "NotifySessionReset"

	// a session state has been loaded. the emulated OS may need to be told
	// about the new state
	NotifyPostLoad Notice = "NotifyPostLoad"

	// the fuzz harness has finished or been stopped
	NotifyHordeOff Notice = "NotifyHordeOff"

	// the CPU thread has stopped
	NotifyThreadStopped Notice = "NotifyThreadStopped"
)

// Notify is implemented by the environment hosting the session. The data
// argument depends on the notice. For NotifyResetException it is the message
// string. For the other notices it is nil.
//
// Notify() is called without any session locks held and can be called from
// either the CPU thread or the control thread.
type Notify interface {
	Notify(notice Notice, data any) error
}

// Discard is a Notify implementation that ignores all notifications.
var Discard Notify = discard{}

type discard struct{}

func (discard) Notify(Notice, any) error {
	return nil
}
