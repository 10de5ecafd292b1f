// Package notify sends user-facing status alerts for CLI commands.
package notify

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/agentstation/bibliotheque/internal/cmd/alerts"
	"github.com/agentstation/bibliotheque/internal/cmd/globals"
	"github.com/agentstation/bibliotheque/internal/cmd/output"
)

// Notifier writes alerts. Quiet notifiers only write errors and warnings.
type Notifier struct {
	writer alerts.Writer
	quiet  bool
}

// Config controls notification behavior.
type Config struct {
	Format   output.Format
	Writer   io.Writer
	Quiet    bool
	UseColor bool
}

// New creates a Notifier.
func New(config Config) *Notifier {
	if config.Writer == nil {
		return &Notifier{writer: alerts.DiscardWriter, quiet: config.Quiet}
	}
	fw := alerts.NewFormatWriter(config.Writer, config.Format).WithConfig(alerts.WriterConfig{
		ShowDetails: true,
		UseColor:    config.UseColor,
	})
	return &Notifier{writer: fw, quiet: config.Quiet}
}

// FromCommand builds a Notifier that writes to the command's error stream
// in the format selected by the global flags.
func FromCommand(cmd *cobra.Command, format string) *Notifier {
	flags := globals.Parse(cmd)
	return New(Config{
		Format:   output.Format(format),
		Writer:   cmd.ErrOrStderr(),
		Quiet:    flags.Quiet,
		UseColor: !flags.NoColor && alerts.IsTerminal(cmd.ErrOrStderr()),
	})
}

// Send writes a, subject to quiet mode.
func (n *Notifier) Send(a *alerts.Alert) error {
	if n.quiet && a.Level != alerts.LevelError && a.Level != alerts.LevelWarning {
		return nil
	}
	return n.writer.WriteAlert(a)
}

// Success reports a completed operation.
func (n *Notifier) Success(message string, details ...string) error {
	return n.Send(alerts.NewSuccess(message).WithDetails(details...))
}

// Info reports something the user may want to know.
func (n *Notifier) Info(message string, details ...string) error {
	return n.Send(alerts.NewInfo(message).WithDetails(details...))
}

// Warning reports a problem that did not stop the command.
func (n *Notifier) Warning(message string, err error) error {
	return n.Send(alerts.NewWarning(message).WithError(err))
}
