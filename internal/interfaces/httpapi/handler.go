package httpapi

import (
	"net/http"

	"github.com/riskibarqy/fpl-proxy/internal/platform/logging"
	"github.com/riskibarqy/fpl-proxy/internal/platform/store"
	"github.com/riskibarqy/fpl-proxy/internal/usecase"
)

type Handler struct {
	tables          *store.TableStore
	snapshotService *usecase.SnapshotService
	logger          *logging.Logger
}

func NewHandler(tables *store.TableStore, snapshotService *usecase.SnapshotService, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		tables:          tables,
		snapshotService: snapshotService,
		logger:          logger,
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}
