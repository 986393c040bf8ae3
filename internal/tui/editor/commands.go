package editor

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// copyAckExpiryCmd schedules the re-render that hides the acknowledgment.
func copyAckExpiryCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return copyAckExpiredMsg{}
	})
}
