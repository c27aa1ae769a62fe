// Package shell provides the process executor adapter.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/cargowrap/internal/core/domain"
	"go.trai.ch/zerr"
)

// Executor implements ports.Executor using os/exec.
// The child inherits the standard streams given to NewExecutor.
type Executor struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewExecutor creates an Executor wired to the process standard streams.
func NewExecutor() *Executor {
	return &Executor{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// WithStreams returns a copy of e using the given streams. Used for testing.
func (e *Executor) WithStreams(stdin io.Reader, stdout, stderr io.Writer) *Executor {
	return &Executor{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
}

// Execute runs cmd and waits for it to complete.
//
// Failures to start are reported as domain.ErrSpawnFailed and non-success
// exits as domain.ErrBuildExecutionFailed.
//
// The child environment is os.Environ() with cmd.Overrides applied on top.
// A relative executable name is resolved against the PATH of that
// environment.
func (e *Executor) Execute(ctx context.Context, cmd *domain.Command) error {
	cmdEnv := resolveEnvironment(os.Environ(), cmd.Overrides)

	executable := cmd.Path
	if !filepath.IsAbs(executable) && !strings.ContainsRune(executable, filepath.Separator) {
		if lp, err := lookPath(executable, cmdEnv); err == nil {
			executable = lp
		}
	}

	c := exec.CommandContext(ctx, executable, cmd.Args...) //nolint:gosec // forwarded build command

	// Keep the name as invoked in Args[0].
	if len(c.Args) > 0 {
		c.Args[0] = cmd.Path
	}

	c.Env = cmdEnv
	c.Stdin = e.stdin
	c.Stdout = e.stdout
	c.Stderr = e.stderr

	if err := c.Start(); err != nil {
		return errors.Join(domain.ErrSpawnFailed, zerr.With(zerr.Wrap(err, "failed to start command"), "path", cmd.Path))
	}

	if err := c.Wait(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return errors.Join(domain.ErrBuildExecutionFailed, zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitCode))
	}

	return nil
}

// resolveEnvironment applies overrides on top of sysEnv. Entries of sysEnv
// that are not overridden keep their position and value. New keys are
// appended in sorted order.
func resolveEnvironment(sysEnv []string, overrides map[string]string) []string {
	result := make([]string, 0, len(sysEnv)+len(overrides))
	seen := make(map[string]bool, len(overrides))

	for _, entry := range sysEnv {
		k, _, ok := strings.Cut(entry, "=")
		if !ok {
			result = append(result, entry)
			continue
		}
		if v, overridden := overrides[k]; overridden {
			if seen[k] {
				continue
			}
			seen[k] = true
			result = append(result, k+"="+v)
			continue
		}
		result = append(result, entry)
	}

	added := make([]string, 0, len(overrides))
	for k := range overrides {
		if !seen[k] {
			added = append(added, k)
		}
	}
	slices.Sort(added)
	for _, k := range added {
		result = append(result, k+"="+overrides[k])
	}

	return result
}

// lookPath searches for an executable in the directories named by the PATH
// entry of env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if p, ok := strings.CutPrefix(e, "PATH="); ok {
			path = p
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
