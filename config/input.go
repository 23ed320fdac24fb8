package config

// ActionID represents a logical input action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionScrollUp
	ActionScrollDown
	ActionPageUp
	ActionPageDown
	ActionHome
	ActionEnd
	ActionToggleFullscreen
	ActionToggleDebug
	ActionQuit
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:             "none",
	ActionScrollUp:         "scroll_up",
	ActionScrollDown:       "scroll_down",
	ActionPageUp:           "page_up",
	ActionPageDown:         "page_down",
	ActionHome:             "home",
	ActionEnd:              "end",
	ActionToggleFullscreen: "toggle_fullscreen",
	ActionToggleDebug:      "toggle_debug",
	ActionQuit:             "quit",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}
