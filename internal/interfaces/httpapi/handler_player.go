package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/fpl-proxy/internal/usecase"
)

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	raw := strings.TrimSpace(r.PathValue("playerID"))
	playerID, err := strconv.Atoi(raw)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: player id %q is not a number", usecase.ErrInvalidInput, raw))
		return
	}

	player, err := h.snapshotService.Player(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "player lookup failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, player)
}
