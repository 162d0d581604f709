// internal/tableview/indicator.go
package tableview

import (
	"time"

	"golang.org/x/time/rate"
)

// CardModeThreshold is the viewport width, in CSS pixels, below which a
// table is reclassified into the stacked card presentation.
const CardModeThreshold = 768

// ThrottleInterval bounds how often scroll and resize events are acted
// on under rapid event streams.
const ThrottleInterval = 50 * time.Millisecond

// Geometry is a container's scroll measurements at one instant.
type Geometry struct {
	ScrollWidth float64
	ClientWidth float64
	ScrollLeft  float64
}

// Overflows reports whether the content is wider than the container.
func (g Geometry) Overflows() bool {
	return g.ScrollWidth > g.ClientWidth
}

// Scale is the horizontal scale factor of the indicator bar,
// 1 - scrollLeft/(scrollWidth-clientWidth). It is 0 when fully scrolled
// and 1 at the left edge.
func (g Geometry) Scale() float64 {
	track := g.ScrollWidth - g.ClientWidth
	if track <= 0 {
		return 0
	}
	return 1 - g.ScrollLeft/track
}

// IndicatorState is what the presentation layer renders: a visible flag
// (zero opacity when hidden, the bar is never removed) and the scale.
type IndicatorState struct {
	Visible bool
	Scale   float64
}

// IndicatorFor derives the indicator state from the measurements.
func IndicatorFor(g Geometry) IndicatorState {
	if !g.Overflows() {
		return IndicatorState{Visible: false}
	}
	return IndicatorState{Visible: true, Scale: g.Scale()}
}

// Container abstracts the scrollable element hosting a table. Geometry
// reports ok=false when the table has been removed between attachment and
// a later event; updates then silently become no-ops.
type Container interface {
	ID() string
	Geometry() (g Geometry, ok bool)
	ViewportWidth() int
	SetIndicator(state IndicatorState)
	SetCardMode(on bool)
}

// EventSource delivers viewport scroll and resize events. The returned
// remove functions unregister the handler.
type EventSource interface {
	OnScroll(fn func()) (remove func())
	OnResize(fn func()) (remove func())
}

type attachment struct {
	removeScroll func()
	removeResize func()
}

// AttachScrollIndicator registers throttled scroll and resize handlers
// for the container, at most once per container id; a second call for the
// same container is a no-op. The resize handler also reclassifies card
// mode on every throttled event, since mode toggling is viewport-driven
// and not covered by the one-time attach idempotence.
func (a *Annotator) AttachScrollIndicator(c Container, events EventSource) {
	a.mu.Lock()
	if a.attachments == nil {
		a.attachments = make(map[string]*attachment)
	}
	if _, ok := a.attachments[c.ID()]; ok {
		a.mu.Unlock()
		return
	}
	att := &attachment{}
	a.attachments[c.ID()] = att
	a.mu.Unlock()

	scrollLimiter := rate.NewLimiter(rate.Every(ThrottleInterval), 1)
	resizeLimiter := rate.NewLimiter(rate.Every(ThrottleInterval), 1)

	update := func() {
		g, ok := c.Geometry()
		if !ok {
			return
		}
		c.SetIndicator(IndicatorFor(g))
	}

	att.removeScroll = events.OnScroll(func() {
		if !scrollLimiter.Allow() {
			return
		}
		update()
	})
	att.removeResize = events.OnResize(func() {
		if !resizeLimiter.Allow() {
			return
		}
		update()
		c.SetCardMode(c.ViewportWidth() < CardModeThreshold)
	})

	// Initial paint so the indicator does not wait for the first event.
	update()
	c.SetCardMode(c.ViewportWidth() < CardModeThreshold)
}

// Teardown removes the scroll and resize handlers registered for the
// container. Safe to call when attachment never happened.
func (a *Annotator) Teardown(c Container) {
	a.mu.Lock()
	att, ok := a.attachments[c.ID()]
	if ok {
		delete(a.attachments, c.ID())
	}
	a.mu.Unlock()
	if !ok {
		return
	}
	if att.removeScroll != nil {
		att.removeScroll()
	}
	if att.removeResize != nil {
		att.removeResize()
	}
}
