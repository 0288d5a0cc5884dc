// SPDX-License-Identifier: MPL-2.0

package diag

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"jarrun/internal/console"
)

// Color palette for console-rendered diagnostics, tuned for dark terminal
// backgrounds.
const (
	colorError = lipgloss.Color("#EF4444")
	colorInfo  = lipgloss.Color("#3B82F6")
)

var (
	errorTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorError)
	infoTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorInfo)
)

type (
	// Messenger renders fatal or informational launcher conditions to the
	// user through the channel matching the execution context. It is the
	// last-resort surface: anything shown here means the child runtime was
	// not (or could not be) spawned normally.
	Messenger struct {
		ctx console.Context
		out io.Writer // informational output, pipeable
		err io.Writer // error output
	}
)

// NewMessenger builds a Messenger for the given execution context.
func NewMessenger(ctx console.Context) *Messenger {
	return &Messenger{ctx: ctx, out: os.Stdout, err: os.Stderr}
}

// Errorf renders an error condition: styled text on the attached console in
// interactive mode, a modal-style message otherwise.
func (m *Messenger) Errorf(title, format string, args ...any) {
	body := fmt.Sprintf(format, args...)
	if m.ctx.HasConsole {
		fmt.Fprintf(m.err, "\n%s\n%s\n\n", errorTitleStyle.Render("[ERROR] "+title), body)
		return
	}
	showModal(title, body, modalError)
}

// Infof renders an informational message, such as the no-target diagnostic
// block. It goes to stdout so a shell capturing the launcher's output sees
// it; errors stay on stderr.
func (m *Messenger) Infof(title, format string, args ...any) {
	body := fmt.Sprintf(format, args...)
	if m.ctx.HasConsole {
		fmt.Fprintf(m.out, "\n%s\n%s\n\n", infoTitleStyle.Render("[INFO] "+title), body)
		return
	}
	showModal(title, body, modalInfo)
}
