package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ember/cmd/ember/commands"
	"go.trai.ch/ember/internal/app"
	"go.trai.ch/ember/internal/build"
)

type mockApp struct {
	checkFunc func(ctx context.Context, dir string, opts app.CheckOptions) error
	watchFunc func(ctx context.Context, dir string) error
}

func (m *mockApp) Check(ctx context.Context, dir string, opts app.CheckOptions) error {
	if m.checkFunc != nil {
		return m.checkFunc(ctx, dir, opts)
	}
	return nil
}

func (m *mockApp) Watch(ctx context.Context, dir string) error {
	if m.watchFunc != nil {
		return m.watchFunc(ctx, dir)
	}
	return nil
}

func TestCommands_Check(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedDir string
		var capturedOpts app.CheckOptions
		called := false

		mock := &mockApp{
			checkFunc: func(_ context.Context, dir string, opts app.CheckOptions) error {
				capturedDir = dir
				capturedOpts = opts
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"check", "/tmp/workspace", "--save"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, "/tmp/workspace", capturedDir)
		assert.True(t, capturedOpts.Save)
	})

	t.Run("defaults to the current directory", func(t *testing.T) {
		var capturedDir string
		var capturedOpts app.CheckOptions

		mock := &mockApp{
			checkFunc: func(_ context.Context, dir string, opts app.CheckOptions) error {
				capturedDir = dir
				capturedOpts = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"check"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, ".", capturedDir)
		assert.False(t, capturedOpts.Save)
	})

	t.Run("returns error on check failure", func(t *testing.T) {
		mock := &mockApp{
			checkFunc: func(_ context.Context, _ string, _ app.CheckOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"check"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Watch(t *testing.T) {
	t.Run("passes the workspace directory", func(t *testing.T) {
		var capturedDir string

		mock := &mockApp{
			watchFunc: func(_ context.Context, dir string) error {
				capturedDir = dir
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"watch", "/tmp/workspace"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "/tmp/workspace", capturedDir)
	})

	t.Run("treats cancellation as a clean exit", func(t *testing.T) {
		mock := &mockApp{
			watchFunc: func(_ context.Context, _ string) error {
				return context.Canceled
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"watch"})

		err := cli.Execute(context.Background())
		assert.NoError(t, err)
	})

	t.Run("returns error on watch failure", func(t *testing.T) {
		mock := &mockApp{
			watchFunc: func(_ context.Context, _ string) error {
				return errors.New("watcher broke")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"watch"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "watcher broke")
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
