package config

// ActionID represents a logical game action. Frontends map their own keys
// onto these; the key tables live with each frontend.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionFire
	ActionRestart
	ActionAutopilot
	ActionDebug
	ActionCount // Must be last - used for array sizing
)
