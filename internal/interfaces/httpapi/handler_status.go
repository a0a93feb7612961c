package httpapi

import "net/http"

func (h *Handler) GetSnapshotStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSnapshotStatus")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, h.snapshotService.Status(ctx))
}
