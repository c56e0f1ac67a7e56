// Package runner executes external tools against byte payloads through
// scoped temporary files. Every temporary artifact it creates is removed
// before the call returns, on success and on failure alike.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"pdf-backend-bench/internal/domain"
)

// Argument placeholders substituted per invocation.
const (
	ArgInput     = "{input}"
	ArgOutputDir = "{outdir}"
)

// Command is one external executable plus its argument template. The
// template references the payload temp file as {input} and, for
// RunIntoDir, a scratch output prefix as {outdir}.
type Command struct {
	Path string
	Args []string
}

// OutputFile is one file an external tool wrote into its scratch output
// directory.
type OutputFile struct {
	Name string
	Data []byte
}

// Runner invokes external processes with injected configuration so
// adapters stay testable with fake executables.
type Runner struct {
	tempDir string
	logger  domain.Logger
}

// New creates a runner that keeps its temporary artifacts under tempDir.
// An empty tempDir means the system default.
func New(tempDir string, logger domain.Logger) *Runner {
	return &Runner{
		tempDir: tempDir,
		logger:  logger,
	}
}

// Run writes input to a uniquely named temporary file, invokes cmd with the
// file substituted into the argument template and returns captured stdout.
// The temporary file is removed on every exit path. A non-zero exit status
// is returned as an ExternalToolError alongside whatever stdout the tool
// produced, so the caller can classify it.
func (r *Runner) Run(ctx context.Context, cmd Command, input []byte) ([]byte, error) {
	exe, err := r.resolve(cmd.Path)
	if err != nil {
		return nil, err
	}

	inFile, err := r.writeTempFile(input)
	if err != nil {
		return nil, err
	}
	defer os.Remove(inFile)

	args := substitute(cmd.Args, ArgInput, inFile)
	return r.invoke(ctx, exe, args)
}

// RunIntoDir invokes cmd with the payload temp file and a fresh scratch
// output prefix substituted into the template, then collects every regular
// file the tool wrote beneath the scratch directory. Collection order is
// deterministic (sorted by name). The scratch directory and the payload
// temp file are removed before returning.
func (r *Runner) RunIntoDir(ctx context.Context, cmd Command, input []byte) ([]OutputFile, error) {
	exe, err := r.resolve(cmd.Path)
	if err != nil {
		return nil, err
	}

	inFile, err := r.writeTempFile(input)
	if err != nil {
		return nil, err
	}
	defer os.Remove(inFile)

	scratch, err := os.MkdirTemp(r.tempDir, "pdfbench-out-")
	if err != nil {
		return nil, fmt.Errorf("failed to create scratch directory: %w", err)
	}
	defer os.RemoveAll(scratch)

	args := substitute(cmd.Args, ArgInput, inFile)
	args = substitute(args, ArgOutputDir, filepath.Join(scratch, "out"))

	if _, err := r.invoke(ctx, exe, args); err != nil {
		return nil, err
	}

	return collectFiles(scratch)
}

// resolve locates the executable. An absolute path that does not exist
// falls back to the bare command name on the search path. A command that
// cannot be located at all is a BackendUnavailableError, so an ambiguous
// empty-output run is never attempted.
func (r *Runner) resolve(path string) (string, error) {
	if path == "" {
		return "", &domain.BackendUnavailableError{Reason: "no executable configured"}
	}
	if filepath.IsAbs(path) {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
		path = filepath.Base(path)
	}
	exe, err := exec.LookPath(path)
	if err != nil {
		return "", &domain.BackendUnavailableError{
			Reason: fmt.Sprintf("executable %s not found", path),
			Cause:  err,
		}
	}
	return exe, nil
}

func (r *Runner) writeTempFile(input []byte) (string, error) {
	f, err := os.CreateTemp(r.tempDir, "pdfbench-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	name := f.Name()
	_, werr := f.Write(input)
	cerr := f.Close()
	if werr != nil || cerr != nil {
		os.Remove(name)
		if werr != nil {
			return "", fmt.Errorf("failed to write temp file: %w", werr)
		}
		return "", fmt.Errorf("failed to close temp file: %w", cerr)
	}
	return name, nil
}

func (r *Runner) invoke(ctx context.Context, exe string, args []string) ([]byte, error) {
	var stdout, stderr bytes.Buffer

	c := exec.CommandContext(ctx, exe, args...)
	c.Stdout = &stdout
	c.Stderr = &stderr

	r.logger.Debug("Running external tool", "exe", exe, "args", strings.Join(args, " "))

	if err := c.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return stdout.Bytes(), &domain.ExternalToolError{
				Tool:     filepath.Base(exe),
				ExitCode: exitErr.ExitCode(),
				Stderr:   strings.TrimSpace(stderr.String()),
			}
		}
		return nil, &domain.BackendUnavailableError{
			Reason: fmt.Sprintf("failed to start %s", filepath.Base(exe)),
			Cause:  err,
		}
	}

	return stdout.Bytes(), nil
}

func substitute(args []string, placeholder, value string) []string {
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = strings.ReplaceAll(a, placeholder, value)
	}
	return out
}

func collectFiles(root string) ([]OutputFile, error) {
	var files []OutputFile
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		files = append(files, OutputFile{Name: d.Name(), Data: data})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect tool output: %w", err)
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}
