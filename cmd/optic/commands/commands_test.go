package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/optic/cmd/optic/commands"
	"go.trai.ch/optic/internal/app"
	"go.trai.ch/optic/internal/build"
)

type mockApp struct {
	json     bool
	logFile  string
	optimize *app.OptimizeOptions
	clear    *app.ClearOptions
	inspect  *app.InspectOptions
	watch    *app.WatchOptions
	err      error
}

func (m *mockApp) ConfigureLogging(json bool, logFile string) error {
	m.json = json
	m.logFile = logFile
	return nil
}

func (m *mockApp) Optimize(_ context.Context, opts app.OptimizeOptions) error {
	m.optimize = &opts
	return m.err
}

func (m *mockApp) Clear(_ context.Context, opts app.ClearOptions) error {
	m.clear = &opts
	return m.err
}

func (m *mockApp) Inspect(_ context.Context, opts app.InspectOptions) error {
	m.inspect = &opts
	return m.err
}

func (m *mockApp) Watch(_ context.Context, opts app.WatchOptions) error {
	m.watch = &opts
	return m.err
}

func execute(t *testing.T, mock *mockApp, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(mock)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_Optimize(t *testing.T) {
	t.Run("defaults the environment", func(t *testing.T) {
		mock := &mockApp{}
		_, err := execute(t, mock, "optimize", "frontend")
		require.NoError(t, err)

		require.NotNil(t, mock.optimize)
		assert.Equal(t, app.OptimizeOptions{
			TargetOptions: app.TargetOptions{Application: "frontend", Environment: "prod"},
		}, *mock.optimize)
	})

	t.Run("wires flags correctly", func(t *testing.T) {
		mock := &mockApp{}
		_, err := execute(t, mock,
			"optimize", "backend", "dev",
			"--config", "conf/optic.yaml",
			"--cache-dir", "/tmp/cache",
			"--verbose", "--json",
			"--log-file", "/tmp/optic.log",
		)
		require.NoError(t, err)

		require.NotNil(t, mock.optimize)
		assert.Equal(t, app.OptimizeOptions{
			TargetOptions: app.TargetOptions{
				Application: "backend",
				Environment: "dev",
				ConfigPath:  "conf/optic.yaml",
				CacheDir:    "/tmp/cache",
			},
			Verbose: true,
		}, *mock.optimize)
		assert.True(t, mock.json)
		assert.Equal(t, "/tmp/optic.log", mock.logFile)
	})

	t.Run("reads settings from the environment", func(t *testing.T) {
		t.Setenv("OPTIC_CACHE_DIR", "/var/cache/optic")
		t.Setenv("OPTIC_VERBOSE", "true")

		mock := &mockApp{}
		_, err := execute(t, mock, "optimize", "frontend")
		require.NoError(t, err)

		require.NotNil(t, mock.optimize)
		assert.Equal(t, "/var/cache/optic", mock.optimize.CacheDir)
		assert.True(t, mock.optimize.Verbose)
	})

	t.Run("requires an application", func(t *testing.T) {
		mock := &mockApp{}
		_, err := execute(t, mock, "optimize")
		require.Error(t, err)
		assert.Nil(t, mock.optimize)
	})

	t.Run("rejects extra arguments", func(t *testing.T) {
		mock := &mockApp{}
		_, err := execute(t, mock, "optimize", "frontend", "prod", "extra")
		require.Error(t, err)
		assert.Nil(t, mock.optimize)
	})

	t.Run("returns error on failure", func(t *testing.T) {
		mock := &mockApp{err: errors.New("simulated error")}
		_, err := execute(t, mock, "optimize", "frontend")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Clear(t *testing.T) {
	mock := &mockApp{}
	_, err := execute(t, mock, "clear", "frontend", "staging")
	require.NoError(t, err)

	require.NotNil(t, mock.clear)
	assert.Equal(t, app.TargetOptions{Application: "frontend", Environment: "staging"}, mock.clear.TargetOptions)
}

func TestCommands_Inspect(t *testing.T) {
	mock := &mockApp{}
	_, err := execute(t, mock, "inspect", "frontend", "--module", "default")
	require.NoError(t, err)

	require.NotNil(t, mock.inspect)
	assert.Equal(t, "default", mock.inspect.Module)
	assert.Equal(t, "frontend", mock.inspect.Application)
	assert.NotNil(t, mock.inspect.Out)
}

func TestCommands_Watch(t *testing.T) {
	mock := &mockApp{}
	_, err := execute(t, mock, "watch", "frontend", "--verbose")
	require.NoError(t, err)

	require.NotNil(t, mock.watch)
	assert.True(t, mock.watch.Verbose)
	assert.Equal(t, "prod", mock.watch.Environment)
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)

	assert.Contains(t, out, "optic version "+build.Version)
	assert.Contains(t, out, "commit: "+build.Commit)
}

func TestCommands_VersionFlag(t *testing.T) {
	out, err := execute(t, &mockApp{}, "--version")
	require.NoError(t, err)

	assert.Contains(t, out, build.Version)
	assert.Contains(t, out, "date: "+build.Date)
}
