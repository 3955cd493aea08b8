// Package kubectl shells out to kubectl's config subcommands. It is the
// only place kctx touches the kubeconfig; everything else works with the
// strings this package returns.
package kubectl

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

const defaultCommand = "kubectl"

var (
	ErrKubectlNotFound = errors.New("kubectl command not found")
	ErrKubectlFailed   = errors.New("kubectl failed")
)

// Client invokes a kubectl binary.
type Client struct {
	command string
	logger  *zap.SugaredLogger
}

// NewClient returns a client that shells out to command, or to "kubectl"
// when command is empty. A nil logger disables logging.
func NewClient(command string, logger *zap.SugaredLogger) *Client {
	if command == "" {
		command = defaultCommand
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return &Client{
		command: command,
		logger:  logger,
	}
}

func (c *Client) run(ctx context.Context, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, c.command, args...)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	c.logger.Debugf("running '%s %s'", c.command, strings.Join(args, " "))
	err := cmd.Run()
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", "", fmt.Errorf("%w: %s command not found in PATH, make sure kubectl is installed",
				ErrKubectlNotFound, c.command)
		}

		if exitErr, ok := err.(*exec.ExitError); ok {
			detail := strings.TrimSpace(stderr.String())

			c.logger.Warnf(
				"'%s %s' failed with exit code %d: %s",
				c.command, strings.Join(args, " "),
				exitErr.ExitCode(), detail,
			)

			// kubectl failed, redefine the error to carry
			// the kubectl-specific output
			if detail != "" {
				err = fmt.Errorf("%w: %s", ErrKubectlFailed, detail)
			} else {
				err = ErrKubectlFailed
			}
		}
	}

	return stdout.String(), stderr.String(), err
}

// Contexts returns the names of all contexts in the kubeconfig, in the
// order kubectl reports them.
func (c *Client) Contexts(ctx context.Context) ([]string, error) {
	stdout, _, err := c.run(ctx, "config", "get-contexts", "-o", "name")
	if err != nil {
		return nil, fmt.Errorf("failed to list contexts: %w", err)
	}

	var names []string

	for _, line := range strings.Split(stdout, "\n") {
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}
		names = append(names, name)
	}

	return names, nil
}

// CurrentContext returns the active context name, or "" when no context is
// set or kubectl cannot be queried.
func (c *Client) CurrentContext(ctx context.Context) string {
	stdout, _, err := c.run(ctx, "config", "current-context")
	if err != nil {
		return ""
	}

	return strings.TrimSpace(stdout)
}

// UseContext makes name the active context.
func (c *Client) UseContext(ctx context.Context, name string) error {
	if _, _, err := c.run(ctx, "config", "use-context", name); err != nil {
		return fmt.Errorf("failed to switch context to %q: %w", name, err)
	}

	return nil
}

// RenameContext renames a context in the kubeconfig.
func (c *Client) RenameContext(ctx context.Context, oldName, newName string) error {
	if _, _, err := c.run(ctx, "config", "rename-context", oldName, newName); err != nil {
		return fmt.Errorf("failed to rename context %q to %q: %w", oldName, newName, err)
	}

	return nil
}

// DeleteContext removes a context from the kubeconfig.
func (c *Client) DeleteContext(ctx context.Context, name string) error {
	if _, _, err := c.run(ctx, "config", "delete-context", name); err != nil {
		return fmt.Errorf("failed to delete context %q: %w", name, err)
	}

	return nil
}
