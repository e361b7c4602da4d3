package cmd

import (
	"blend/handler"
	"blend/handler/hc"
	"blend/worker/modifier"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/drone/signal"
	"github.com/fox-one/pkg/logger"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "run blend api server",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		snapshots := provideSnapshotStore()
		modifiers := provideModifierStore()
		marketSrv := provideMarketService(modifiers)
		backstopSrv := provideBackstopService(marketSrv, providePriceService())

		mux := chi.NewMux()
		mux.Use(middleware.Recoverer)
		mux.Use(middleware.StripSlashes)
		mux.Use(cors.AllowAll().Handler)
		mux.Use(logger.WithRequestID)
		mux.Use(middleware.Logger)
		mux.Use(middleware.NewCompressor(5).Handler)

		{
			//hc
			mux.Mount("/hc", hc.Handle(rootCmd.Version, snapshots, modifiers))
		}

		{
			//restful api
			svr := handler.New(snapshots, modifiers, marketSrv, backstopSrv, time.Now)
			mux.Mount("/api", svr.HandleRestAPI())
		}

		port, _ := cmd.Flags().GetInt("port")
		addr := fmt.Sprintf(":%d", port)

		server := &http.Server{
			Addr:    addr,
			Handler: mux,
		}

		ctx, quit := context.WithCancel(ctx)
		done := make(chan struct{}, 1)
		signal.WithContextFunc(ctx, func() {
			quit()

			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()

			if err := server.Shutdown(ctx); err != nil {
				logrus.WithError(err).Error("graceful shutdown server failed")
			}

			close(done)
		})

		// the modifier worker runs in process, it shares the store with the api
		if withWorker, _ := cmd.Flags().GetBool("worker"); withWorker {
			w, err := modifier.New(provideConfig(), snapshots, marketSrv)
			if err != nil {
				logrus.WithError(err).Fatal("init modifier worker")
			}

			go func() {
				if err := w.Run(ctx); err != nil {
					logrus.WithError(err).Error("modifier worker stopped")
				}
			}()
		}

		logrus.Infoln("serve at", addr)
		err := server.ListenAndServe()
		if err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("server aborted")
		}

		<-done
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
	serverCmd.Flags().IntP("port", "p", 9000, "server port")
	serverCmd.Flags().Bool("worker", true, "advance rate modifiers in process")
}
