package kubectl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeKubectl writes a shell script standing in for kubectl and returns a
// client pointed at it.
func fakeKubectl(t *testing.T, script string) *Client {
	t.Helper()

	path := filepath.Join(t.TempDir(), "kubectl")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o755))

	return NewClient(path, nil)
}

func TestContexts(t *testing.T) {
	client := fakeKubectl(t, `printf 'alpha\nbeta\n\ngamma\n'`)

	names, err := client.Contexts(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"alpha", "beta", "gamma"}, names)
}

func TestContextsFailure(t *testing.T) {
	client := fakeKubectl(t, `echo 'error: unable to read kubeconfig' >&2; exit 1`)

	_, err := client.Contexts(context.Background())
	require.ErrorIs(t, err, ErrKubectlFailed)
	require.Contains(t, err.Error(), "failed to list contexts")
	require.Contains(t, err.Error(), "unable to read kubeconfig")
}

func TestFailureWithoutStderr(t *testing.T) {
	client := fakeKubectl(t, "exit 1")

	err := client.UseContext(context.Background(), "prod")
	require.ErrorIs(t, err, ErrKubectlFailed)
	require.Equal(t, `failed to switch context to "prod": kubectl failed`, err.Error())
}

func TestCurrentContext(t *testing.T) {
	client := fakeKubectl(t, "echo minikube")

	require.Equal(t, "minikube", client.CurrentContext(context.Background()))
}

func TestCurrentContextUnset(t *testing.T) {
	client := fakeKubectl(t, `echo 'error: current-context is not set' >&2; exit 1`)

	require.Equal(t, "", client.CurrentContext(context.Background()))
}

func TestCurrentContextEmptyOutput(t *testing.T) {
	client := fakeKubectl(t, "exit 0")

	require.Equal(t, "", client.CurrentContext(context.Background()))
}

func TestUseContextFailureCarriesStderr(t *testing.T) {
	client := fakeKubectl(t, `echo 'error: no context exists with the name "prod"' >&2; exit 1`)

	err := client.UseContext(context.Background(), "prod")
	require.ErrorIs(t, err, ErrKubectlFailed)
	require.Contains(t, err.Error(), `failed to switch context to "prod"`)
	require.Contains(t, err.Error(), `no context exists with the name "prod"`)
}

func TestRenameContextPassesArgs(t *testing.T) {
	dir := t.TempDir()
	argsFile := filepath.Join(dir, "args")
	path := filepath.Join(dir, "kubectl")

	script := fmt.Sprintf("#!/bin/sh\necho \"$@\" > %s\n", argsFile)
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))

	client := NewClient(path, nil)
	require.NoError(t, client.RenameContext(context.Background(), "old", "new"))

	raw, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	require.Equal(t, "config rename-context old new", strings.TrimSpace(string(raw)))
}

func TestDeleteContextFailure(t *testing.T) {
	client := fakeKubectl(t, `echo 'error: cannot delete context "gone"' >&2; exit 1`)

	err := client.DeleteContext(context.Background(), "gone")
	require.ErrorIs(t, err, ErrKubectlFailed)
	require.Contains(t, err.Error(), `failed to delete context "gone"`)
	require.Contains(t, err.Error(), `cannot delete context "gone"`)
}

func TestKubectlNotFound(t *testing.T) {
	client := NewClient("kctx-test-missing-binary", nil)

	_, err := client.Contexts(context.Background())
	require.ErrorIs(t, err, ErrKubectlNotFound)
}

func TestNewClientDefaultsCommand(t *testing.T) {
	client := NewClient("", nil)

	require.Equal(t, "kubectl", client.command)
}
