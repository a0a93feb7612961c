package httpapi

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/fpl-proxy/internal/usecase"
)

// GetTable serves the latest computed league table. The table itself is the
// whole response body, without the envelope, so consumers can decode it as a
// plain league table document.
func (h *Handler) GetTable(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTable")
	defer span.End()

	leagueTable, ok := h.tables.Current()
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: league table has not been computed yet", usecase.ErrNotReady))
		return
	}

	writeJSON(ctx, w, http.StatusOK, leagueTable)
}
