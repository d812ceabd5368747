package cmd

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"github.com/tutils/xxrand"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	viper.Reset()
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetArgs(append(args, "--log-format=json", "--config="))
	require.NoError(t, rootCmd.Execute())
	return buf.String()
}

func TestRandomCommand(t *testing.T) {
	out := run(t, "random", "--seed=foo", "-n", "5")
	require.Equal(t, []string{
		"0.8830422074261686",
		"0.389555073899579",
		"0.08511425323903427",
		"0.04387996672742999",
		"0.6582458847337975",
	}, strings.Fields(out))
}

func TestBitsCommand(t *testing.T) {
	out := run(t, "bits", "--seed=foo", "--offset=1", "-n", "3")
	var want []string
	for _, v := range xxrand.RandomBitsN("foo", 1, 3) {
		want = append(want, strconv.FormatInt(int64(v), 10))
	}
	require.Equal(t, want, strings.Fields(out))
}

func TestPrinterPlainOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	p := newPrinter(buf)
	p.float(1)
	p.bits(-1)
	require.NoError(t, p.err)
	require.Equal(t, "1\n-1\n", buf.String())
}
