package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patscan/patscan/pkg/match"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetIn(strings.NewReader(""))
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestSearchCmd_LiteralText(t *testing.T) {
	out, err := runCommand(t, "search", "ABC", "--text", "XABCXABC", "--algorithm", "kmp")

	require.NoError(t, err)
	assert.Contains(t, out, "kmp")
	assert.Contains(t, out, "2 match(es)")
	assert.Contains(t, out, "1, 5")
}

func TestSearchCmd_AllAlgorithms(t *testing.T) {
	out, err := runCommand(t, "search", "AA", "--text", "AAAA")

	require.NoError(t, err)
	assert.Contains(t, out, "kmp")
	assert.Contains(t, out, "boyer-moore")
	assert.Contains(t, out, "aho-corasick")
}

func TestSearchCmd_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "text.txt")
	require.NoError(t, os.WriteFile(path, []byte("needle in a haystack with a needle"), 0o644))

	out, err := runCommand(t, "search", "needle", "--file", path, "--algorithm", "boyer-moore")

	require.NoError(t, err)
	assert.Contains(t, out, "2 match(es)")
}

func TestSearchCmd_MissingFile(t *testing.T) {
	_, err := runCommand(t, "search", "x", "--file", filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
}

func TestSearchCmd_JSONOutput(t *testing.T) {
	out, err := runCommand(t, "search", "ABAB", "--text", "ABABAB", "--algorithm", "kmp",
		"--format", "json", "--sequential")

	require.NoError(t, err)
	var results []match.Result
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "kmp", results[0].Algorithm)
	assert.Equal(t, []int{0, 2}, results[0].Positions)
	assert.False(t, results[0].Parallel)
}

func TestSearchCmd_FormatFromConfigFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), ".patscan.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("output:\n  format: json\n"), 0o644))

	out, err := runCommand(t, "--config", cfgPath,
		"search", "ABAB", "--text", "ABABAB", "--algorithm", "kmp")

	require.NoError(t, err)
	var results []match.Result
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.Equal(t, []int{0, 2}, results[0].Positions)
}

func TestSearchCmd_FormatFlagOverridesConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), ".patscan.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("output:\n  format: json\n"), 0o644))

	out, err := runCommand(t, "--config", cfgPath,
		"search", "ABAB", "--text", "ABABAB", "--algorithm", "kmp", "--format", "text")

	require.NoError(t, err)
	assert.Contains(t, out, "2 match(es)")
}

func TestSearchCmd_MultiPattern(t *testing.T) {
	out, err := runCommand(t, "search", "ABC", "BC", "--text", "XABCX",
		"--algorithm", "aho-corasick", "--format", "json")

	require.NoError(t, err)
	var results []match.Result
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.Equal(t, []int{1, 2}, results[0].Positions)
}

func TestSearchCmd_UnknownAlgorithm(t *testing.T) {
	_, err := runCommand(t, "search", "x", "--text", "xyz", "--algorithm", "rabin-karp")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown algorithm")
}

func TestSearchCmd_SequentialAndParallelAgree(t *testing.T) {
	text := strings.Repeat("AB", 500)

	seqOut, err := runCommand(t, "search", "ABAB", "--text", text, "--algorithm", "kmp",
		"--format", "json", "--sequential")
	require.NoError(t, err)
	parOut, err := runCommand(t, "search", "ABAB", "--text", text, "--algorithm", "kmp",
		"--format", "json", "--workers", "7")
	require.NoError(t, err)

	var seq, par []match.Result
	require.NoError(t, json.Unmarshal([]byte(seqOut), &seq))
	require.NoError(t, json.Unmarshal([]byte(parOut), &par))
	assert.Equal(t, seq[0].Positions, par[0].Positions)
}

func TestSearchCmd_NoArgs(t *testing.T) {
	_, err := runCommand(t, "search")
	require.Error(t, err, "pattern argument is required")
}
