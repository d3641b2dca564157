package rpm

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strconv"
	"strings"

	"go.trai.ch/debugdump/internal/core/domain"
	"go.trai.ch/zerr"
)

// result is the outcome of a finished command.
type result struct {
	stdout []byte
	stderr []byte
	code   int
}

// runFunc runs name with args. It only fails when the command could not be
// started or was cancelled; a non-zero exit is reported in result.code.
type runFunc func(ctx context.Context, stdin io.Reader, name string, args ...string) (result, error)

func execRun(ctx context.Context, stdin io.Reader, name string, args ...string) (result, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // binaries come from configuration
	cmd.Stdin = stdin
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := result{stdout: stdout.Bytes(), stderr: stderr.Bytes()}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && ctx.Err() == nil {
		res.code = exitErr.ExitCode()
		return res, nil
	}
	if err != nil {
		return res, zerr.With(zerr.Wrap(err, "failed to run "+name), "command", commandLine(name, args))
	}
	return res, nil
}

// output runs a query command and returns its stdout. A non-zero exit wraps
// ErrBackendCommandFailed.
func (b *Backend) output(ctx context.Context, name string, args ...string) ([]byte, error) {
	res, err := b.run(ctx, nil, name, args...)
	if err != nil {
		return nil, err
	}
	if res.code != 0 {
		return nil, commandFailed(domain.ErrBackendCommandFailed, name, args, res)
	}
	return res.stdout, nil
}

// commandFailed wraps sentinel with the command line, exit code and stderr.
func commandFailed(sentinel error, name string, args []string, res result) error {
	err := zerr.Wrap(sentinel, name+" exited with status "+strconv.Itoa(res.code))
	err = zerr.With(err, "command", commandLine(name, args))
	err = zerr.With(err, "exit_code", res.code)
	if stderr := strings.TrimSpace(string(res.stderr)); stderr != "" {
		err = zerr.With(err, "stderr", stderr)
	}
	return err
}

func commandLine(name string, args []string) string {
	return strings.Join(append([]string{name}, args...), " ")
}

// lines splits command output into trimmed, non-empty lines.
func lines(out []byte) []string {
	var res []string
	for line := range strings.Lines(string(out)) {
		if line = strings.TrimSpace(line); line != "" {
			res = append(res, line)
		}
	}
	return res
}
