package postgres

import (
	"database/sql"
	"log/slog"
)

// closeRows closes a result set, logging rather than returning any close
// error since the scan error (if any) is what matters to the caller.
func closeRows(rows *sql.Rows, log *slog.Logger) {
	if err := rows.Close(); err != nil {
		log.Error("failed to close rows", slog.String("error", err.Error()))
	}
}
