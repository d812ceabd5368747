package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tutils/xxrand"
	"github.com/tutils/xxrand/logger"
)

// randomCmd represents the random command
var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Draw floats in [0, 1]",
	Long: `Draw floats from the sequence selected by seed and offset, For example:
  xxrand random --seed=foo -n 5`,
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, offset, n, err := drawParams()
		if err != nil {
			return err
		}
		out := newPrinter(cmd.OutOrStdout())
		for _, v := range xxrand.RandomN(seed, offset, n) {
			out.float(v)
		}
		return out.err
	},
}

// bitsCmd represents the bits command
var bitsCmd = &cobra.Command{
	Use:   "bits",
	Short: "Draw raw signed 32-bit values",
	Long: `Draw raw 32-bit values from the sequence selected by seed and offset, For example:
  xxrand bits --seed=foo --offset=1 -n 5`,
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, offset, n, err := drawParams()
		if err != nil {
			return err
		}
		out := newPrinter(cmd.OutOrStdout())
		for _, v := range xxrand.RandomBitsN(seed, offset, n) {
			out.bits(v)
		}
		return out.err
	},
}

// drawParams reads the shared seed, offset and count settings.
// A missing seed is replaced by a fresh one, logged so the run can be repeated.
func drawParams() (seed string, offset int64, n int, err error) {
	seed = viper.GetString("seed")
	offset = viper.GetInt64("offset")
	n = viper.GetInt("count")
	if n < 0 {
		return "", 0, 0, fmt.Errorf("count must not be negative: %d", n)
	}
	if seed == "" {
		seed = uuid.New().String()
		logger.Log().Info().Str("seed", seed).Int64("offset", offset).Msg("generated seed")
	}
	return seed, offset, n, nil
}

func addDrawFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringP("seed", "s", "", "seed text (default is a random uuid)")
	flags.Int64P("offset", "o", 0, "sequence offset")
	flags.IntP("count", "n", 1, "number of values")
}

func bindDrawFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	viper.BindPFlag("seed", flags.Lookup("seed"))
	viper.BindPFlag("offset", flags.Lookup("offset"))
	viper.BindPFlag("count", flags.Lookup("count"))
}

func init() {
	for _, c := range []*cobra.Command{randomCmd, bitsCmd} {
		rootCmd.AddCommand(c)
		addDrawFlags(c)
		c.PreRun = func(cmd *cobra.Command, args []string) {
			bindDrawFlags(cmd)
		}
	}
}
