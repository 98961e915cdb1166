package styles

// Plain unicode icons, no Nerd Font required.
const (
	IconSuccess = "✓"
	IconError   = "✗"
	IconWarning = "!"
	IconInfo    = "i"
)
