package rest

import (
	"blend/core"
	"blend/handler/param"
	"blend/handler/render"
	"blend/handler/views"
	"net/http"
	"time"
)

func poolsHandler(snapshots core.ISnapshotStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pools, err := snapshots.All(r.Context())
		if err != nil {
			render.CoreError(w, err)
			return
		}

		poolViews := make([]views.Pool, 0, len(pools))
		for _, p := range pools {
			poolViews = append(poolViews, views.PoolView(p))
		}

		render.JSON(w, poolViews)
	}
}

func poolHandler(snapshots core.ISnapshotStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pool, err := findPool(r, snapshots)
		if err != nil {
			render.CoreError(w, err)
			return
		}

		render.JSON(w, views.PoolView(pool))
	}
}

func ratesHandler(snapshots core.ISnapshotStore, marketSrv core.IMarketService, clock Clock) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			At string `json:"at"`
		}
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		at, err := param.Time(params.At, time.Time{})
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		pool, err := findPool(r, snapshots)
		if err != nil {
			render.CoreError(w, err)
			return
		}

		// only the server clock advances the modifiers, any other time is a preview
		var rates []*core.ReserveRates
		if at.IsZero() {
			rates, err = marketSrv.PoolRates(r.Context(), pool, clock())
		} else {
			rates, err = marketSrv.PreviewPoolRates(r.Context(), pool, at)
		}
		if err != nil {
			render.CoreError(w, err)
			return
		}

		rateViews := make([]views.ReserveRates, 0, len(rates))
		for _, rate := range rates {
			rateViews = append(rateViews, views.ReserveRatesView(rate))
		}

		render.JSON(w, rateViews)
	}
}

func modifiersHandler(snapshots core.ISnapshotStore, modifiers core.IRateModifierStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		pool, err := findPool(r, snapshots)
		if err != nil {
			render.CoreError(w, err)
			return
		}

		modifierViews := make([]views.Modifier, 0, len(pool.Reserves))
		for _, reserve := range pool.Reserves {
			key := core.ModifierKey(pool.PoolID, reserve.AssetID)
			state, _ := modifiers.Find(ctx, key)
			modifierViews = append(modifierViews, views.ModifierView(key, reserve, state))
		}

		render.JSON(w, modifierViews)
	}
}
