package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tutils/xxrand/logger"
	"github.com/tutils/xxrand/stream"
)

const dialTimeout = 10 * time.Second

// pullCmd represents the pull command
var pullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Pull values from a stream server",
	Long: `Pull values from a remote sequence, For example:
  xxrand pull --connect=ws://127.0.0.1:8080/stream --seed=foo -n 5
  xxrand pull --connect=ws://127.0.0.1:8080/stream --seed=foo --kind=bits --reset`,
	PreRun: func(cmd *cobra.Command, args []string) {
		bindDrawFlags(cmd)
		flags := cmd.Flags()
		viper.BindPFlag("connect", flags.Lookup("connect"))
		viper.BindPFlag("kind", flags.Lookup("kind"))
		viper.BindPFlag("reset", flags.Lookup("reset"))
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, offset, n, err := drawParams()
		if err != nil {
			return err
		}
		kind, err := stream.ParseKind(viper.GetString("kind"))
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
		defer cancel()
		c, err := stream.Dial(ctx, viper.GetString("connect"), seed, offset, kind)
		if err != nil {
			return err
		}
		defer c.Close()

		resp, err := c.Pull(n, viper.GetBool("reset"))
		if err != nil {
			return err
		}
		logger.Log().Debug().Str("session", c.Session()).Msg("pulled")

		out := newPrinter(cmd.OutOrStdout())
		for _, v := range resp.Bits {
			out.bits(v)
		}
		for _, v := range resp.Floats {
			out.float(v)
		}
		return out.err
	},
}

func init() {
	rootCmd.AddCommand(pullCmd)
	addDrawFlags(pullCmd)

	flags := pullCmd.Flags()
	flags.StringP("connect", "c", "ws://127.0.0.1:8080/stream", "server address")
	flags.String("kind", string(stream.KindFloat), "sequence kind: float or bits")
	flags.Bool("reset", false, "rewind the sequence before pulling")
}
