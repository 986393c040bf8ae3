package editor

// focusArea names the pane receiving key input.
type focusArea int

const (
	focusSidebar focusArea = iota
	focusForm
)

// copyAckExpiredMsg fires once the copy acknowledgment should disappear.
type copyAckExpiredMsg struct{}
