package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestGenome writes a tiny indexed FASTA for command tests
func writeTestGenome(t *testing.T) string {
	t.Helper()

	seq := "ACGTACGTACGTACGTACGT" // 20 bases
	path := filepath.Join(t.TempDir(), "tiny.fa")
	require.NoError(t, os.WriteFile(path, []byte(">chr1\n"+seq+"\n"), 0644))
	require.NoError(t, os.WriteFile(path+".fai", []byte("chr1\t20\t6\t20\t21\n"), 0644))
	return path
}

func Test_dict(t *testing.T) {
	path := writeTestGenome(t)

	out := &bytes.Buffer{}
	RootCmd.SetOut(out)
	RootCmd.SetArgs([]string{"dict", path})

	require.NoError(t, RootCmd.Execute())
	assert.Equal(t, "chr1\t20\n", out.String())
}

func Test_seq(t *testing.T) {
	path := writeTestGenome(t)
	outPath := filepath.Join(t.TempDir(), "out.fa")

	RootCmd.SetOut(&bytes.Buffer{})
	RootCmd.SetArgs([]string{"seq", path, "chr1:1-10", "-o", outPath})

	require.NoError(t, RootCmd.Execute())

	got, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, ">chr1:1-10\nACGTACGTAC\n", string(got))
}
