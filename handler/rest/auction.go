package rest

import (
	"blend/core"
	"blend/handler/param"
	"blend/handler/render"
	"blend/handler/views"
	"net/http"

	"github.com/go-chi/chi"
)

func auctionHandler(snapshots core.ISnapshotStore, clock Clock) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pool, err := findPool(r, snapshots)
		if err != nil {
			render.CoreError(w, err)
			return
		}

		auction, ok := pool.Auction(chi.URLParam(r, "auction_id"))
		if !ok {
			render.CoreError(w, core.ErrAuctionNotFound)
			return
		}

		render.JSON(w, views.AuctionView(auction, clock()))
	}
}

func validateBidHandler(snapshots core.ISnapshotStore, backstopSrv core.IBackstopService, clock Clock) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			Bidder string `json:"bidder"`
			Amount string `json:"amount" valid:"required"`
		}
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		amount, err := param.Decimal("amount", params.Amount)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		pool, err := findPool(r, snapshots)
		if err != nil {
			render.CoreError(w, err)
			return
		}

		v, err := backstopSrv.ValidateBid(r.Context(), pool, chi.URLParam(r, "auction_id"), params.Bidder, amount, clock())
		if err != nil {
			render.CoreError(w, err)
			return
		}

		render.JSON(w, v)
	}
}

func auctionParametersHandler(backstopSrv core.IBackstopService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			Type       string `json:"type" valid:"required"`
			Urgency    string `json:"urgency"`
			AssetValue string `json:"asset_value" valid:"required"`
		}
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		auctionType, err := core.ParseAuctionType(params.Type)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		urgency := core.UrgencyMedium
		if params.Urgency != "" {
			if urgency, err = core.ParseUrgency(params.Urgency); err != nil {
				render.BadRequest(w, err)
				return
			}
		}

		value, err := param.Decimal("asset_value", params.AssetValue)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		p, err := backstopSrv.AuctionParameters(r.Context(), auctionType, urgency, value)
		if err != nil {
			render.CoreError(w, err)
			return
		}

		render.JSON(w, p)
	}
}
