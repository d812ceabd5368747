package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tutils/xxrand/logger"
	"github.com/tutils/xxrand/stream"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start sequence stream server",
	Long: `Serve lazy sequences over websocket, one per connection, For example:
  xxrand serve --listen=ws://0.0.0.0:8080/stream --max-batch=1024`,
	PreRun: func(cmd *cobra.Command, args []string) {
		flags := cmd.Flags()
		viper.BindPFlag("listen", flags.Lookup("listen"))
		viper.BindPFlag("max-batch", flags.Lookup("max-batch"))
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := stream.NewServer(
			stream.WithListenAddress(viper.GetString("listen")),
			stream.WithMaxBatch(viper.GetInt("max-batch")),
		)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		errc := make(chan error, 1)
		go func() {
			errc <- s.ListenAndServe()
		}()

		select {
		case err := <-errc:
			return err
		case <-ctx.Done():
		}

		logger.Log().Info().Int64("served", s.Served()).Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	flags := serveCmd.Flags()
	flags.StringP("listen", "l", stream.DefaultListenAddress, "server listen address")
	flags.Int("max-batch", stream.DefaultMaxBatch, "largest number of values per request")
}
