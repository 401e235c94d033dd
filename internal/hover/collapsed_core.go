package hover

import (
	"time"

	"github.com/google-admin/hover/internal/anim"
	"github.com/google-admin/hover/internal/drag"
	"github.com/google-admin/hover/internal/logger"
	"github.com/google-admin/hover/internal/menu"
)

// idleFadeDuration paces the alpha tween when idle dimming kicks in or a
// press wakes the tab back up.
const idleFadeDuration = 200 * time.Millisecond

// collapsedCore is the docked-tab behavior shared by the Collapsed and
// Previewed states: tab lifecycle and docking, selected-section fallback,
// the menu subscription, and idle dimming. The owning state holds it by
// value and forwards enter/exit.
type collapsedCore struct {
	env   *Env
	owner string

	// dragListener, when set before enter, is activated on the tab once
	// docking completes. Previewed leaves it nil and drives the dragger
	// itself.
	dragListener drag.Listener

	menuSub   *menu.Subscription
	idleDim   *anim.Handle
	idleClose *anim.Handle
	fade      *anim.Handle
	dimmed    bool
}

func (c *collapsedCore) enter(env *Env, ready func()) {
	c.env = env
	m := env.Menu()
	if m == nil || m.Len() == 0 {
		env.RequestTransition(StateClosed)
		return
	}
	ensureSelection(env)
	c.menuSub = m.Subscribe(c)

	alive := env.Guard()
	if env.Tab() == nil {
		env.WhenLayoutReady(func() {
			if !alive() {
				return
			}
			c.spawnTab(ready)
		})
		return
	}

	// Reused tab handed over by the previous state: restore the full
	// variant, sync the dock it may have drifted from and the section
	// descriptor the menu may have swapped, wake it, and glide it back.
	tab := env.Tab()
	tab.Expand()
	tab.SetDock(env.Dock())
	c.refreshTab()
	c.wake()
	tab.Appear(func() {
		if !alive() {
			return
		}
		env.WhenLayoutReady(func() {
			if !alive() {
				return
			}
			env.Tab().Dock(func() {
				if !alive() {
					return
				}
				c.settled(ready)
			})
		})
	})
}

func (c *collapsedCore) spawnTab(ready func()) {
	env := c.env
	sec, _ := env.Menu().SectionByID(env.SelectedSection())
	tab := newFloatingTab(env.Sched(), env.Options(), sec, env.Screen(), env.Dock())
	env.SetTab(tab)
	tab.DockImmediate()
	logger.Debug("hover: %s spawned tab at %v", c.owner, tab.Center())
	alive := env.Guard()
	tab.Appear(func() {
		if !alive() {
			return
		}
		c.settled(ready)
	})
}

// settled runs once the tab rests at its dock. The dragger becomes live
// only now, and the idle clock starts.
func (c *collapsedCore) settled(ready func()) {
	if c.dragListener != nil {
		c.env.Dragger().Activate(c.dragListener, c.env.Tab())
	}
	c.armIdle()
	ready()
}

// ensureSelection resolves the persisted selection against the live menu,
// falling back to the first section when it no longer exists.
func ensureSelection(env *Env) {
	m := env.Menu()
	if _, ok := m.SectionByID(env.SelectedSection()); ok {
		return
	}
	if sec, ok := m.SectionAt(0); ok {
		env.SetSelectedSection(sec.ID)
	}
}

func (c *collapsedCore) OnInserted(index, count int) {}

func (c *collapsedCore) OnRemoved(index, count int) {
	env := c.env
	m := env.Menu()
	if m.Len() == 0 {
		env.RequestTransition(StateClosed)
		return
	}
	if _, ok := m.SectionByID(env.SelectedSection()); !ok {
		// Selection was removed: fall to the neighbor above the gap.
		idx := index - 1
		if idx < 0 {
			idx = 0
		}
		if sec, ok := m.SectionAt(idx); ok {
			env.SetSelectedSection(sec.ID)
		}
	}
	c.refreshTab()
}

func (c *collapsedCore) OnMoved(from, to int) {}

func (c *collapsedCore) OnChanged(index, count int) {
	c.refreshTab()
}

// refreshTab re-points the tab at the selected section after the menu
// changed under it.
func (c *collapsedCore) refreshTab() {
	tab := c.env.Tab()
	if tab == nil {
		return
	}
	if sec, ok := c.env.Menu().SectionByID(c.env.SelectedSection()); ok {
		tab.SetSection(sec)
	}
}

func (c *collapsedCore) armIdle() {
	c.cancelIdle()
	env := c.env
	opts := env.Options()
	if opts.IdleDimAfter > 0 {
		alive := env.Guard()
		c.idleDim = env.Sched().After(opts.IdleDimAfter, func() {
			if alive() {
				c.dim()
			}
		})
	}
	if opts.IdleCloseAfter > 0 {
		alive := env.Guard()
		c.idleClose = env.Sched().After(opts.IdleCloseAfter, func() {
			if !alive() {
				return
			}
			logger.Debug("hover: %s idle close", c.owner)
			env.RequestTransition(StateClosed)
		})
	}
}

func (c *collapsedCore) cancelIdle() {
	if c.idleDim != nil {
		c.idleDim.Cancel()
		c.idleDim = nil
	}
	if c.idleClose != nil {
		c.idleClose.Cancel()
		c.idleClose = nil
	}
}

func (c *collapsedCore) dim() {
	if c.dimmed || c.env.Tab() == nil {
		return
	}
	c.dimmed = true
	c.fadeTo(c.env.Options().DimAlpha)
	logger.Debug("hover: %s dimmed after idle", c.owner)
}

// interact restores full opacity and restarts the idle clock. Any press
// counts.
func (c *collapsedCore) interact() {
	if c.dimmed {
		c.dimmed = false
		c.fadeTo(1)
	}
	c.armIdle()
}

// wake is the instant form used on state entry.
func (c *collapsedCore) wake() {
	c.cancelFade()
	c.dimmed = false
	if tab := c.env.Tab(); tab != nil {
		tab.SetAlpha(1)
	}
}

func (c *collapsedCore) fadeTo(target float64) {
	c.cancelFade()
	tab := c.env.Tab()
	if tab == nil {
		return
	}
	alive := c.env.Guard()
	c.fade = c.env.Sched().Tween(anim.TweenConfig{
		From:     tab.Alpha(),
		To:       target,
		Duration: idleFadeDuration,
		OnUpdate: func(v float64) {
			if alive() {
				tab.SetAlpha(v)
			}
		},
	})
}

func (c *collapsedCore) cancelFade() {
	if c.fade != nil {
		c.fade.Cancel()
		c.fade = nil
	}
}

// exit releases everything enter acquired. Deactivating the dragger is the
// owning state's job.
func (c *collapsedCore) exit() {
	c.cancelIdle()
	c.cancelFade()
	if c.menuSub != nil {
		c.menuSub.Cancel()
		c.menuSub = nil
	}
}
