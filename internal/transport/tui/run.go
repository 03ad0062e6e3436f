package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
)

// Run shows the game in the terminal until the player quits or ctx is cancelled.
func Run(ctx context.Context, logger *slog.Logger, game game, opts Options) error {
	log := logger.With("component", "tui", "method", "Run")

	output := termenv.NewOutput(os.Stdout)
	output.SetWindowTitle(WindowTitle)

	model := NewModel(logger, game, NewRenderer(os.Stdout, opts.NoColor), opts)

	programOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	}
	if !opts.NoMouse {
		programOpts = append(programOpts, tea.WithMouseAllMotion())
	}

	if _, err := tea.NewProgram(model, programOpts...).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			log.Info("terminal ui stopped by context")
			return nil
		}

		return fmt.Errorf("terminal ui failed: %w", err)
	}

	log.Info("terminal ui closed")

	return nil
}
