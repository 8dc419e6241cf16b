package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestReadWorkloads(t *testing.T) {
	path := writeFile(t, "workloads.yaml", `
workloads:
  - id: deep-work
    complexity: 0.9
    priority: 1.0
    energy: hyperfocus
  - id: email
    complexity: 0.2
    priority: 0.3
`)
	workloads, err := readWorkloads(path)
	require.NoError(t, err)
	require.Len(t, workloads, 2)
	require.Equal(t, "deep-work", workloads[0].ID)
	require.Equal(t, 0.9, workloads[0].Complexity)
	require.Equal(t, "email", workloads[1].ID)
	require.Equal(t, 0.3, workloads[1].Priority)
}

func TestReadWorkloadsMalformedYAML(t *testing.T) {
	path := writeFile(t, "workloads.yaml", "workloads: [\n")
	_, err := readWorkloads(path)
	require.Error(t, err)
	require.ErrorContains(t, err, "parsing workloads file")
}

func TestReadWorkloadsMissingFile(t *testing.T) {
	_, err := readWorkloads(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	require.ErrorContains(t, err, "reading workloads file")
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestDistributeCommand(t *testing.T) {
	cfgPath := writeFile(t, "allocator.yaml", `
strategy: monod
gamma: 1.0
total_tokens: 1000
`)
	wlPath := writeFile(t, "workloads.yaml", `
workloads:
  - id: hard
    complexity: 0.9
    priority: 1.0
  - id: easy
    complexity: 0.2
    priority: 1.0
`)

	out, err := runCommand(t, "distribute", "-c", cfgPath, "-w", wlPath)
	require.NoError(t, err)
	require.Contains(t, out, "hard")
	require.Contains(t, out, "easy")
	require.Contains(t, out, "allocated 1000/1000 tokens across 2 workloads")
}

func TestDistributeCommandRejectsBadWorkloads(t *testing.T) {
	wlPath := writeFile(t, "workloads.yaml", `
workloads:
  - id: same
    complexity: 0.5
    priority: 0.5
  - id: same
    complexity: 0.5
    priority: 0.5
`)
	_, err := runCommand(t, "distribute", "-w", wlPath)
	require.Error(t, err)
}

func TestOptimizeGammaCommand(t *testing.T) {
	cfgPath := writeFile(t, "allocator.yaml", "total_tokens: 1000\n")
	wlPath := writeFile(t, "workloads.yaml", `
workloads:
  - id: a
    complexity: 0.8
    priority: 1.0
  - id: b
    complexity: 0.3
    priority: 0.6
`)

	out, err := runCommand(t, "optimize-gamma", "-c", cfgPath, "-w", wlPath, "-t", "0")
	require.NoError(t, err)
	require.Contains(t, out, "gamma=")
	require.Contains(t, out, "iterations=")
}
