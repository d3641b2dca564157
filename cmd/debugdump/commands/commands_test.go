package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/debugdump/cmd/debugdump/commands"
	"go.trai.ch/debugdump/internal/app"
	"go.trai.ch/debugdump/internal/build"
	"go.trai.ch/debugdump/internal/core/domain"
	"go.trai.ch/debugdump/internal/engine/executor"
)

type mockApp struct {
	dumpFunc    func(ctx context.Context, opts app.DumpOptions) (string, error)
	restoreFunc func(ctx context.Context, opts app.RestoreOptions) (executor.Report, error)
}

func (m *mockApp) Dump(ctx context.Context, opts app.DumpOptions) (string, error) {
	if m.dumpFunc != nil {
		return m.dumpFunc(ctx, opts)
	}
	return "", nil
}

func (m *mockApp) Restore(ctx context.Context, opts app.RestoreOptions) (executor.Report, error) {
	if m.restoreFunc != nil {
		return m.restoreFunc(ctx, opts)
	}
	return executor.Report{}, nil
}

func TestCommands_Dump(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.DumpOptions
		called := false

		mock := &mockApp{
			dumpFunc: func(_ context.Context, opts app.DumpOptions) (string, error) {
				captured = opts
				called = true
				return opts.Filename, nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"dump", "out.txt", "--norepos", "--config", "custom.yaml", "--trace"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, app.DumpOptions{
			Filename:   "out.txt",
			NoRepos:    true,
			ConfigPath: "custom.yaml",
			Trace:      true,
		}, captured)
	})

	t.Run("defaults", func(t *testing.T) {
		var captured app.DumpOptions
		mock := &mockApp{
			dumpFunc: func(_ context.Context, opts app.DumpOptions) (string, error) {
				captured = opts
				return "", nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"dump"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Empty(t, captured.Filename)
		assert.False(t, captured.NoRepos)
		assert.Equal(t, domain.ConfigFileName, captured.ConfigPath)
	})

	t.Run("returns error on dump failure", func(t *testing.T) {
		mock := &mockApp{
			dumpFunc: func(_ context.Context, _ app.DumpOptions) (string, error) {
				return "", errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"dump"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("rejects more than one filename", func(t *testing.T) {
		mock := &mockApp{
			dumpFunc: func(_ context.Context, _ app.DumpOptions) (string, error) {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"dump", "a.txt", "b.txt"})

		require.Error(t, cli.Execute(context.Background()))
	})
}

func TestCommands_Restore(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.RestoreOptions

		mock := &mockApp{
			restoreFunc: func(_ context.Context, opts app.RestoreOptions) (executor.Report, error) {
				captured = opts
				return executor.Report{}, nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{
			"restore", "dump.txt.gz",
			"--output", "--install-latest", "--ignore-arch",
			"--filter-types", "install,replace",
		})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "dump.txt.gz", captured.Filename)
		assert.True(t, captured.Output)
		assert.True(t, captured.InstallLatest)
		assert.True(t, captured.IgnoreArch)
		assert.Equal(t, []string{"install", "replace"}, captured.FilterTypes)
		assert.Equal(t, domain.ConfigFileName, captured.ConfigPath)
	})

	t.Run("leaves filter types to configuration when unset", func(t *testing.T) {
		var captured app.RestoreOptions
		mock := &mockApp{
			restoreFunc: func(_ context.Context, opts app.RestoreOptions) (executor.Report, error) {
				captured = opts
				return executor.Report{}, nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"restore", "dump.txt"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Nil(t, captured.FilterTypes)
		assert.False(t, captured.Output)
	})

	t.Run("requires a filename", func(t *testing.T) {
		mock := &mockApp{
			restoreFunc: func(_ context.Context, _ app.RestoreOptions) (executor.Report, error) {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"restore"})

		require.Error(t, cli.Execute(context.Background()))
	})

	t.Run("failed steps are not an error", func(t *testing.T) {
		mock := &mockApp{
			restoreFunc: func(_ context.Context, _ app.RestoreOptions) (executor.Report, error) {
				return executor.Report{Failures: []executor.Failure{{Err: domain.ErrPackageNotAvailable}}}, nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"restore", "dump.txt"})

		require.NoError(t, cli.Execute(context.Background()))
	})
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
	assert.Contains(t, buf.String(), build.Commit)
}

func TestCommands_VersionFlag(t *testing.T) {
	cli := commands.New(&mockApp{})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"--version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), "debugdump version "+build.Version)
}
