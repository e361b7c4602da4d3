package cmd

import (
	"blend/worker"
	"blend/worker/modifier"
	"sync"

	"github.com/drone/signal"
	"github.com/fox-one/pkg/logger"
	"github.com/spf13/cobra"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "blend job worker",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := signal.WithContext(cmd.Context())
		log := logger.FromContext(ctx)
		ctx = logger.WithContext(ctx, log)

		snapshots := provideSnapshotStore()
		modifiers := provideModifierStore()
		marketSrv := provideMarketService(modifiers)

		modifierWorker, err := modifier.New(provideConfig(), snapshots, marketSrv)
		if err != nil {
			log.WithError(err).Fatal("init modifier worker")
		}

		workers := []worker.Worker{
			modifierWorker,
		}

		wg := sync.WaitGroup{}
		for _, w := range workers {
			wg.Add(1)

			go func(w worker.Worker) {
				defer wg.Done()
				if err := w.Run(ctx); err != nil {
					log.WithError(err).Errorln("worker stopped")
				}
			}(w)
		}

		wg.Wait()
	},
}

func init() {
	rootCmd.AddCommand(workerCmd)
}
