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

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/emucore/emucore/dialog"
	"github.com/emucore/emucore/emulation"
	"github.com/emucore/emucore/idlecpu"
	"github.com/emucore/emucore/notifications"
	"github.com/emucore/emucore/prefs"
	"github.com/emucore/emucore/session"
)

// rig is the emulated device and the session that drives it
type rig struct {
	output io.Writer
	prefs  *session.Preferences
	dev    *idlecpu.Device
	mb     *dialog.Mailbox
	notes  *notifier
	s      *session.Session
}

func newRig(o *options, output io.Writer) (*rig, error) {
	collection := prefs.NewCollection()

	sp, err := session.NewPreferences(collection)
	if err != nil {
		return nil, err
	}

	if err := collection.LoadHCL(*o.prefsFile); err != nil {
		return nil, err
	}

	r := &rig{
		output: output,
		prefs:  sp,
		mb:     dialog.NewMailbox(),
		notes: &notifier{
			output:   output,
			hordeOff: make(chan struct{}, 1),
		},
	}

	r.dev = idlecpu.NewDevice(idlecpu.Config{
		Doze: func() time.Duration {
			return time.Duration(sp.SleepMS.Get().(int)) * time.Millisecond
		},
		Alert: func(params any) dialog.ButtonID {
			fmt.Fprintf(output, "! %v\n", params)
			return dialog.ItemOK
		},
	})

	r.s, err = session.NewSession(session.Collaborators{
		CPU:     r.dev.Creator,
		Memory:  r.dev.Memory,
		OS:      r.dev.OS,
		Buttons: r.dev.Hardware,
		Dialogs: r.mb,
		Notify:  r.notes,
	}, sp)
	if err != nil {
		return nil, err
	}

	if *o.load != "" {
		err = r.s.CreateOld(*o.load)
	} else {
		err = r.s.CreateNew(emulation.Configuration{
			Device:  *o.device,
			RAMSize: *o.ram,
		})
	}
	if err != nil {
		r.s.Destroy()
		return nil, err
	}

	return r, nil
}

func (r *rig) destroy() {
	r.s.Destroy()

	st := r.dev.CPU().Stats()
	fmt.Fprintf(r.output, "cycles: %d  syscalls: %d  dozes: %d  wakeups: %d\n",
		st.Cycles, st.SysCalls, st.Dozes, st.Wakeups)
	fmt.Fprintf(r.output, "keys: %d  pens: %d  buttons: %d  horde events: %d\n",
		st.Keys, st.Pens, st.ButtonChanges, st.HordeEvents)
}

// notifier implements the notifications.Notify interface
type notifier struct {
	output   io.Writer
	hordeOff chan struct{}
}

func (n *notifier) Notify(notice notifications.Notice, data any) error {
	switch notice {
	case notifications.NotifyResetException:
		fmt.Fprintf(n.output, "! %v\n", data)
	case notifications.NotifyPostLoad:
		fmt.Fprintln(n.output, "! session loaded")
	case notifications.NotifyHordeOff:
		select {
		case n.hordeOff <- struct{}{}:
		default:
		}
	}
	return nil
}
