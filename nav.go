package main

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// NavState models the two independent bits of navigation UI state: the
// mobile menu (collapsed or expanded) and the bar itself (hidden while
// scrolling down, shown otherwise).
type NavState struct {
	Expanded  bool
	BarHidden bool
}

// ToggleMenu flips the mobile menu open or closed.
func (n *NavState) ToggleMenu() {
	n.Expanded = !n.Expanded
}

// SelectItem is called when a navigation item is chosen; an expanded
// menu always closes.
func (n *NavState) SelectItem() {
	n.Expanded = false
}

// Scroll updates bar visibility from the most recent scroll delta.
// Any downward movement hides the bar immediately; upward or zero
// shows it. No deadzone.
func (n *NavState) Scroll(delta int) {
	n.BarHidden = delta > 0
}

// navFromQuery reconstructs the client's nav state from the HTMX
// request parameters.
func navFromQuery(c *gin.Context) NavState {
	return NavState{
		Expanded:  c.Query("expanded") == "1",
		BarHidden: c.Query("hidden") == "1",
	}
}

func renderNav(c *gin.Context, n NavState) {
	c.HTML(http.StatusOK, "nav.html", gin.H{
		"expanded":  n.Expanded,
		"barHidden": n.BarHidden,
	})
}

// HTMX navigation endpoints. Each one applies a single transition and
// returns the nav fragment for swapping in place.
func registerNavRoutes(r *gin.Engine) {
	r.GET("/nav", func(c *gin.Context) {
		renderNav(c, navFromQuery(c))
	})

	r.GET("/nav/toggle", func(c *gin.Context) {
		n := navFromQuery(c)
		n.ToggleMenu()
		renderNav(c, n)
	})

	r.GET("/nav/select", func(c *gin.Context) {
		n := navFromQuery(c)
		n.SelectItem()
		renderNav(c, n)
	})

	r.GET("/nav/scroll", func(c *gin.Context) {
		n := navFromQuery(c)
		delta, err := strconv.Atoi(c.Query("delta"))
		if err != nil {
			delta = 0
		}
		n.Scroll(delta)
		renderNav(c, n)
	})
}
