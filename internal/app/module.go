package app

import (
	"log/slog"
	"os"

	"github.com/golddranks/pencil/internal/notes"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.notes.enabled") {
		if err := notes.New(notes.Dependency{
			Router: a.router,
			ID:     a.snowflake,
		}); err != nil {
			slog.Error("failed to init module notes", "error", err)
			os.Exit(1)
		}
	}
}
