package hc

import (
	"blend/core"
	"blend/handler/render"
	"net/http"
	"time"

	"github.com/fox-one/pkg/logger"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
)

// Handle handle hc request
func Handle(ver string, snapshots core.ISnapshotStore, modifiers core.IRateModifierStore) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.NoCache)
	r.Handle("/", handle(ver, snapshots, modifiers))
	return r
}

func handle(version string, snapshots core.ISnapshotStore, modifiers core.IRateModifierStore) http.HandlerFunc {
	b := time.Now()
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		uptime := time.Since(b).Truncate(time.Millisecond)

		resp := render.H{
			"uptime":    uptime.String(),
			"version":   version,
			"status":    "ok",
			"modifiers": len(modifiers.List(ctx)),
		}

		// a failing snapshot source degrades the check
		if pools, err := snapshots.All(ctx); err != nil {
			logger.FromContext(ctx).WithError(err).Warnln("hc: list pools")
			resp["status"] = "degraded"
		} else {
			resp["pools"] = len(pools)
		}

		render.JSON(w, resp)
	}
}
