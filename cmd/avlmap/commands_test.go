package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func execCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestLookupSample(t *testing.T) {
	for _, kind := range []string{"int", "string", "bytes"} {
		t.Run(kind, func(t *testing.T) {
			out, err := execCmd(t, "lookup", "--keys", kind, "10", "3", "99")
			require.NoError(t, err)
			require.Equal(t, "10\ta\n3\tb\n99\tnot found\n", out)
		})
	}
}

func TestLookupLaterPairsWin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pairs.yaml")
	data := strings.Join([]string{
		"pairs:",
		`  - {key: "1", value: one}`,
		`  - {key: "2", value: two}`,
		`  - {key: "1", value: uno}`,
		"",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	out, err := execCmd(t, "lookup", "--pairs", path, "1", "2")
	require.NoError(t, err)
	require.Equal(t, "1\tuno\n2\ttwo\n", out)
}

func TestLookupBadIntKey(t *testing.T) {
	_, err := execCmd(t, "lookup", "ten")
	require.ErrorContains(t, err, `key "ten"`)
}

func TestUnknownKeyOrder(t *testing.T) {
	_, err := execCmd(t, "lookup", "--keys", "float", "1")
	require.ErrorContains(t, err, `unknown key order "float"`)
}

func TestMissingPairsFile(t *testing.T) {
	_, err := execCmd(t, "dump", "--pairs", filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDump(t *testing.T) {
	out, err := execCmd(t, "dump")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "length: 4\nheight: 3\n"), out)
	require.Contains(t, out, "7: c")
}

func TestBadPairsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pairs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pairs: [\n"), 0o644))
	_, err := execCmd(t, "dump", "--pairs", path)
	require.ErrorContains(t, err, "parsing pairs "+path)
}

func TestParseFixtureNamesSample(t *testing.T) {
	_, err := parseFixture([]byte("pairs: [\n"), "")
	require.ErrorContains(t, err, "parsing built in sample")

	f, err := parseFixture(defaultFixture, "")
	require.NoError(t, err)
	require.Len(t, f.Pairs, 4)
}
