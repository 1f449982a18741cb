package main

import (
	"bytes"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	output = &buf
	app := CLI()
	require.NoError(t, app.Run(append([]string{"epir"}, args...)))
	return buf.String()
}

func TestCLIKeygenWritesKeyFiles(t *testing.T) {
	dir := t.TempDir()
	prefix := filepath.Join(dir, "node")

	runCLI(t, "keygen", "--out", prefix)

	priv, err := os.ReadFile(prefix + ".private")
	require.NoError(t, err)
	_, err = hex.DecodeString(string(priv))
	require.NoError(t, err)

	pub, err := os.ReadFile(prefix + ".public")
	require.NoError(t, err)
	_, err = hex.DecodeString(string(pub))
	require.NoError(t, err)
}

func TestCLIEndToEndSelectorAndTableGenerate(t *testing.T) {
	dir := t.TempDir()
	keyPrefix := filepath.Join(dir, "node")
	runCLI(t, "keygen", "--out", keyPrefix)

	tablePath := filepath.Join(dir, "mg.table")
	runCLI(t, "mg-generate", "--mmax", "64", "--table", tablePath)

	info, err := os.Stat(tablePath)
	require.NoError(t, err)
	require.Equal(t, int64(64*36), info.Size())

	selectorPath := filepath.Join(dir, "sel.bin")
	runCLI(t, "selector", "--counts", "2,2", "--idx", "1", "--priv", keyPrefix+".private", "--out", selectorPath)

	data, err := os.ReadFile(selectorPath)
	require.NoError(t, err)
	require.Len(t, data, 4*64)

	replyPath := filepath.Join(dir, "reply.bin")
	require.NoError(t, os.WriteFile(replyPath, data, 0o644))

	resultPath := filepath.Join(dir, "result.bin")
	runCLI(t, "reply-decrypt", "--in", replyPath, "--priv", keyPrefix+".private",
		"--table", tablePath, "--mmax", "64", "--dimension", "1", "--packing", "1", "--out", resultPath)

	result, err := os.ReadFile(resultPath)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 0, 0, 1}, result)
}
