package rest

import (
	"blend/core"
	"blend/handler/param"
	"blend/handler/render"
	"blend/handler/views"
	"blend/pkg/fixed"
	"net/http"

	"github.com/go-chi/chi"
)

func backstopHandler(snapshots core.ISnapshotStore, backstopSrv core.IBackstopService, clock Clock) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pool, err := findPool(r, snapshots)
		if err != nil {
			render.CoreError(w, err)
			return
		}

		summary, err := backstopSrv.Summary(r.Context(), pool, clock())
		if err != nil {
			render.CoreError(w, err)
			return
		}

		render.JSON(w, views.BackstopView(summary))
	}
}

func withdrawalImpactHandler(snapshots core.ISnapshotStore, backstopSrv core.IBackstopService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pool, err := findPool(r, snapshots)
		if err != nil {
			render.CoreError(w, err)
			return
		}

		impact, err := backstopSrv.WithdrawalImpact(r.Context(), pool, chi.URLParam(r, "withdrawal_id"))
		if err != nil {
			render.CoreError(w, err)
			return
		}

		render.JSON(w, views.WithdrawalImpactView(impact))
	}
}

func emissionsAccrualHandler(snapshots core.ISnapshotStore, backstopSrv core.IBackstopService, clock Clock) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			UserAddress string `json:"user_address" valid:"required"`
			Balance     string `json:"balance" valid:"required,float"`
			Accrued     string `json:"accrued" valid:"float"`
			LastClaim   string `json:"last_claim" valid:"required"`
			At          string `json:"at"`
		}
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		balance, err := param.Decimal("balance", params.Balance)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		user := &core.UserEmissionsState{
			UserAddress:          params.UserAddress,
			BackstopTokenBalance: fixed.FromDecimal(balance, fixed.Decimals7),
		}

		if params.Accrued != "" {
			accrued, err := param.Decimal("accrued", params.Accrued)
			if err != nil {
				render.BadRequest(w, err)
				return
			}
			user.AccruedEmissions = fixed.FromDecimal(accrued, fixed.Decimals7)
		}

		if user.LastClaimTime, err = param.Time(params.LastClaim, clock()); err != nil {
			render.BadRequest(w, err)
			return
		}

		now, err := param.Time(params.At, clock())
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		pool, err := findPool(r, snapshots)
		if err != nil {
			render.CoreError(w, err)
			return
		}

		accrual, err := backstopSrv.EmissionsAccrual(r.Context(), pool, user, now)
		if err != nil {
			render.CoreError(w, err)
			return
		}

		render.JSON(w, views.EmissionsAccrualView(accrual))
	}
}
