package handler

import (
	"blend/core"
	"blend/handler/render"
	"blend/handler/rest"
	"errors"
	"net/http"

	"github.com/go-chi/chi"
)

// Server server
type Server struct {
	snapshots   core.ISnapshotStore
	modifiers   core.IRateModifierStore
	marketSrv   core.IMarketService
	backstopSrv core.IBackstopService
	clock       rest.Clock
}

// New new server function
func New(
	snapshots core.ISnapshotStore,
	modifiers core.IRateModifierStore,
	marketSrv core.IMarketService,
	backstopSrv core.IBackstopService,
	clock rest.Clock,
) Server {
	return Server{
		snapshots:   snapshots,
		modifiers:   modifiers,
		marketSrv:   marketSrv,
		backstopSrv: backstopSrv,
		clock:       clock,
	}
}

// HandleRestAPI handle restful apis, responses are wrapped as {"data": ...}
func (s Server) HandleRestAPI() http.Handler {
	r := chi.NewRouter()
	r.Use(render.WrapResponse(false))
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.NotFoundRequest(w, errors.New("not found"))
	})

	r.Mount("/", rest.Handle(s.snapshots, s.modifiers, s.marketSrv, s.backstopSrv, s.clock))

	return r
}
