package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// dictCmd represents the dict command
var dictCmd = &cobra.Command{
	Use:   "dict [genome]",
	Short: "Print the sequence dictionary of a genome",
	Long: `Print one line per contig, "name<TAB>length", in genome order.

The genome is either the path to an indexed FASTA file (a ".fai" file
must exist next to it) or the base URL of a DAS server, eg
http://genome.cse.ucsc.edu/cgi-bin/das/hg19`,
	Args: cobra.ExactArgs(1),
	Run:  runDict,
}

// runDict opens the genome and writes its dictionary to stdout
func runDict(cmd *cobra.Command, args []string) {
	g, err := openGenome(args[0])
	if err != nil {
		stderr.Fatalf("failed to open %s: %v", args[0], err)
	}
	defer g.Close()

	for _, rec := range g.Dictionary().Records() {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", rec.Name, rec.Length)
	}
}

func init() {
	RootCmd.AddCommand(dictCmd)
}
