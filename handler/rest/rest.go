package rest

import (
	"blend/core"
	"blend/handler/render"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi"
)

// Clock returns the evaluation time of a request
type Clock func() time.Time

// Handle handle rest api request
func Handle(
	snapshots core.ISnapshotStore,
	modifiers core.IRateModifierStore,
	marketSrv core.IMarketService,
	backstopSrv core.IBackstopService,
	clock Clock,
) http.Handler {
	if clock == nil {
		clock = time.Now
	}

	router := chi.NewRouter()

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.NotFoundRequest(w, errors.New("not found"))
	})

	router.Get("/pools", poolsHandler(snapshots))
	router.Get("/auctions/parameters", auctionParametersHandler(backstopSrv))

	router.Route("/pools/{pool_id}", func(r chi.Router) {
		r.Get("/", poolHandler(snapshots))
		r.Get("/rates", ratesHandler(snapshots, marketSrv, clock))
		r.Get("/modifiers", modifiersHandler(snapshots, modifiers))
		r.Get("/backstop", backstopHandler(snapshots, backstopSrv, clock))
		r.Post("/emissions/accrual", emissionsAccrualHandler(snapshots, backstopSrv, clock))
		r.Get("/withdrawals/{withdrawal_id}/impact", withdrawalImpactHandler(snapshots, backstopSrv))
		r.Get("/auctions/{auction_id}", auctionHandler(snapshots, clock))
		r.Post("/auctions/{auction_id}/bids/validate", validateBidHandler(snapshots, backstopSrv, clock))
	})

	return router
}

func findPool(r *http.Request, snapshots core.ISnapshotStore) (*core.PoolSnapshot, error) {
	return snapshots.Find(r.Context(), chi.URLParam(r, "pool_id"))
}
