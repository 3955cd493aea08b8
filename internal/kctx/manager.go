// Package kctx implements context bookkeeping on top of kubectl: listing
// with current/last markers, switch and toggle with last-context tracking,
// and the rename/delete fixups that keep the recorded last context valid.
package kctx

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"kctx-cli/internal/config"
	"kctx-cli/internal/render"
	"kctx-cli/internal/resolver"
	"kctx-cli/internal/state"
)

// ToggleTarget is the switch argument that flips back to the last context.
const ToggleTarget = "-"

var (
	ErrNoCurrentContext = errors.New("no current context")
	ErrNoLastContext    = errors.New("no last context recorded yet")
)

// ContextService is the slice of kubectl the manager needs.
type ContextService interface {
	Contexts(ctx context.Context) ([]string, error)
	CurrentContext(ctx context.Context) string
	UseContext(ctx context.Context, name string) error
	RenameContext(ctx context.Context, oldName, newName string) error
	DeleteContext(ctx context.Context, name string) error
}

// Manager orchestrates context operations. Persisted state is only written
// after the delegated kubectl call has already succeeded, so a failed
// switch, rename or delete never moves the recorded last context.
type Manager struct {
	Service  ContextService
	Store    *state.Store
	Labels   func() config.LabelTable
	Out      io.Writer
	Err      io.Writer
	OutColor bool
	ErrColor bool
	Logger   *zap.SugaredLogger
}

// New returns a manager writing to stdout and stderr without color. The
// labels func is called fresh before each use so config.toml edits are
// picked up between invocations.
func New(service ContextService, store *state.Store, labels func() config.LabelTable) *Manager {
	return &Manager{
		Service: service,
		Store:   store,
		Labels:  labels,
		Out:     os.Stdout,
		Err:     os.Stderr,
		Logger:  zap.NewNop().Sugar(),
	}
}

func (m *Manager) labels() config.LabelTable {
	if m.Labels == nil {
		return config.LabelTable{}
	}

	return m.Labels()
}

func (m *Manager) recordLast(name string) error {
	m.Logger.Debugf("recording last context %q", name)
	return m.Store.RecordLast(name)
}

// List prints every context kubectl knows about, in kubectl's order,
// marking the current and last contexts and any configured env labels.
func (m *Manager) List(ctx context.Context, format string) error {
	contexts, err := m.Service.Contexts(ctx)
	if err != nil {
		return err
	}

	current := m.Service.CurrentContext(ctx)
	last := m.Store.Last()
	labels := m.labels()

	entries := make([]render.ContextEntry, 0, len(contexts))
	for _, name := range contexts {
		env, _ := labels.Env(name)
		entries = append(entries, render.ContextEntry{
			Name:    name,
			Current: name == current,
			Last:    name == last,
			Env:     env,
		})
	}

	if format == "" || format == config.OutputFormatTable {
		render.WriteContextList(m.Out, entries, m.OutColor)
		return nil
	}

	return render.OutputData(m.Out, entries, format)
}

// Current prints the active context name.
func (m *Manager) Current(ctx context.Context) error {
	current := m.Service.CurrentContext(ctx)
	if current == "" {
		return ErrNoCurrentContext
	}

	fmt.Fprintln(m.Out, current)
	return nil
}

// Switch makes target the active context, recording the one it replaces as
// the last context. A target of "-" toggles instead.
func (m *Manager) Switch(ctx context.Context, target string) error {
	if target == ToggleTarget {
		return m.Toggle(ctx)
	}

	before := m.Service.CurrentContext(ctx)

	if err := m.Service.UseContext(ctx, target); err != nil {
		m.suggestAlternatives(ctx, target)
		return err
	}

	if before != "" {
		if err := m.recordLast(before); err != nil {
			return err
		}
	}

	m.announceSwitch(ctx)
	return nil
}

// Toggle switches back to the last recorded context and records the one it
// left, so repeated toggles flip between the same two contexts.
func (m *Manager) Toggle(ctx context.Context) error {
	last := m.Store.Last()
	if last == "" {
		return ErrNoLastContext
	}

	before := m.Service.CurrentContext(ctx)

	if err := m.Service.UseContext(ctx, last); err != nil {
		return err
	}

	if before != "" {
		if err := m.recordLast(before); err != nil {
			return err
		}
	}

	m.announceSwitch(ctx)
	return nil
}

// Rename renames a context, updating the recorded last context when it
// referenced the old name.
func (m *Manager) Rename(ctx context.Context, oldName, newName string) error {
	if err := m.Service.RenameContext(ctx, oldName, newName); err != nil {
		return err
	}

	st := m.Store.Load()
	if st.Last() == oldName {
		m.Logger.Debugf("updating last context %q to %q", oldName, newName)
		st.RecordLast(newName)
		if err := m.Store.Save(st); err != nil {
			return err
		}
	}

	return nil
}

// Delete removes a context, dropping the recorded last context when it
// named the deleted one.
func (m *Manager) Delete(ctx context.Context, name string) error {
	if err := m.Service.DeleteContext(ctx, name); err != nil {
		return err
	}

	st := m.Store.Load()
	if st.Last() == name {
		m.Logger.Debugf("clearing last context %q", name)
		delete(st, state.KeyLastContext)
		if err := m.Store.Save(st); err != nil {
			return err
		}
	}

	return nil
}

// announceSwitch prints the context kubectl reports as active after a
// switch, with its env label, and warns on stderr when it is labeled with
// the production tier. The name is re-queried rather than assumed to be
// the requested target.
func (m *Manager) announceSwitch(ctx context.Context) {
	current := m.Service.CurrentContext(ctx)
	if current == "" {
		return
	}

	env, _ := m.labels().Env(current)

	fmt.Fprintln(m.Out, render.FormatSwitchResult(current, env, m.OutColor))

	if config.TierFor(env) == config.TierProd {
		fmt.Fprintln(m.Err, render.FormatProdWarning(current, env, m.ErrColor))
	}
}

// suggestAlternatives prints a hint when a switch target does not exist but
// is a prefix of contexts that do. Best-effort: any listing failure just
// skips the hint; the switch error itself reaches the caller untouched.
func (m *Manager) suggestAlternatives(ctx context.Context, target string) {
	contexts, err := m.Service.Contexts(ctx)
	if err != nil {
		m.Logger.Debugf("skipping suggestions: %v", err)
		return
	}

	if resolver.Known(target, contexts) {
		return
	}

	suggestions := resolver.Suggest(target, contexts)
	if len(suggestions) == 0 {
		return
	}

	fmt.Fprintf(m.Err, "Did you mean: %s\n", strings.Join(suggestions, ", "))
}
