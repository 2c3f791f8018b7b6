package driver

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/brainwave/render"
)

// observe polls terminal events into the single-slot cells until quit
func (d *Driver) observe() {
	for {
		ev := d.screen.PollEvent()
		select {
		case <-d.quit:
			return
		default:
		}
		// nil after the screen is finalized
		if ev == nil {
			return
		}
		d.handle(ev)
	}
}

// handle applies one event, never touches simulation state
func (d *Driver) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		cols, rows := ev.Size()
		d.size.Store(size{cols, rows})
		d.screen.Sync()

	case *tcell.EventMouse:
		x, y := ev.Position()
		d.pointer.Store(pointerCell{X: x, Y: y, Present: true})

	case *tcell.EventFocus:
		// Losing focus is the closest terminal analogue of the pointer leaving the surface
		if !ev.Focused {
			d.pointer.Store(pointerCell{})
		}

	case *tcell.EventKey:
		d.handleKey(ev)
	}
}

func (d *Driver) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		d.quitReq.Store(true)
		return
	case tcell.KeyRune:
	default:
		return
	}

	switch ev.Rune() {
	case 'q', 'Q':
		d.quitReq.Store(true)
	case 't', 'T':
		d.theme.Update(render.Theme.Toggle)
	case 'h', 'H':
		d.hudOn.Update(func(v bool) bool { return !v })
	case ' ':
		d.paused.Update(func(v bool) bool { return !v })
	}
}
