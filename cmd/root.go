// Package cmd is for command line interactions with the refgenome application
package cmd

import (
	"log"
	"net/http"
	"os"
	"time"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/shaikhalvee/jvarkit/config"
	"github.com/shaikhalvee/jvarkit/internal/refgenome"
)

// stderr is for logging to Stderr (without an annoying timestamp)
var stderr = log.New(os.Stderr, "", 0)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "refgenome",
	Short: `Random access to reference genomes.
Read contigs and subsequences from an indexed FASTA file or a DAS server`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

// openGenome opens a genome source, local FASTA path or DAS URL, with
// the app wide settings applied
func openGenome(source string) (refgenome.Genome, error) {
	c := config.New()

	logger := kitlog.Logger(kitlog.NewNopLogger())
	if c.Verbose {
		logger = level.NewFilter(
			kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr)),
			level.AllowDebug(),
		)
	}

	return refgenome.Open(
		source,
		refgenome.WithHalfWindow(c.HalfWindow),
		refgenome.WithHTTPClient(&http.Client{Timeout: c.Timeout}),
		refgenome.WithLogger(logger),
	)
}

// set flags
func init() {
	config.SetDefaults()
	refgenome.RegisterMetrics(prometheus.DefaultRegisterer)

	RootCmd.PersistentFlags().Int("half-window", 1000000, "bases buffered on either side of a requested offset")
	RootCmd.PersistentFlags().Duration("timeout", time.Minute, "timeout on DAS server requests")
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "log window refills to stderr")

	// Bind the parameters to viper
	viper.BindPFlag("half-window", RootCmd.PersistentFlags().Lookup("half-window"))
	viper.BindPFlag("timeout", RootCmd.PersistentFlags().Lookup("timeout"))
	viper.BindPFlag("verbose", RootCmd.PersistentFlags().Lookup("verbose"))
}
