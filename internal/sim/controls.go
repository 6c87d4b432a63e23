package sim

import "github.com/san-kum/lorenz/internal/config"

// Params lists the coefficients the controls can select, in tab order.
var Params = []string{"sigma", "rho", "beta"}

// Controls turns key names into events. Key names follow bubbletea's
// spelling ("esc", "tab", "shift+up", "w"); the raylib window translates its
// key codes into the same names.
type Controls struct {
	Selected int
}

// Param is the currently selected coefficient.
func (c *Controls) Param() string {
	return Params[c.Selected%len(Params)]
}

// Key maps one key press to an event. Tab and shift+tab only move the
// selection and report false. In animate mode q quits; in explore mode it
// rolls the view, and only esc quits.
func (c *Controls) Key(name, mode string) (Event, bool) {
	switch name {
	case "esc", "ctrl+c":
		return Quit{}, true
	case "q":
		if mode == config.ModeAnimate {
			return Quit{}, true
		}
		return Turn{Axis: Roll, Dir: -1}, true
	case "e":
		return Turn{Axis: Roll, Dir: 1}, true
	case "w":
		return Turn{Axis: Yaw, Dir: -1}, true
	case "s":
		return Turn{Axis: Yaw, Dir: 1}, true
	case "a":
		return Turn{Axis: Pitch, Dir: -1}, true
	case "d":
		return Turn{Axis: Pitch, Dir: 1}, true
	case "tab":
		c.Selected = (c.Selected + 1) % len(Params)
	case "shift+tab":
		c.Selected = (c.Selected + len(Params) - 1) % len(Params)
	case "up", "right", "]":
		return Nudge{Param: c.Param(), Steps: 1}, true
	case "down", "left", "[":
		return Nudge{Param: c.Param(), Steps: -1}, true
	case "shift+up", "shift+right", "}":
		return Nudge{Param: c.Param(), Steps: 10}, true
	case "shift+down", "shift+left", "{":
		return Nudge{Param: c.Param(), Steps: -10}, true
	case " ", "space", "p":
		return TogglePause{}, true
	case "r":
		return Reset{}, true
	}
	return nil, false
}
