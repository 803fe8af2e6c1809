package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/optic/internal/app"
	"go.trai.ch/optic/internal/core/domain"
	"go.trai.ch/optic/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newComponents(t *testing.T) (*app.Components, *mocks.MockProjectLoader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)

	loader := mocks.NewMockProjectLoader(ctrl)
	log := mocks.NewMockLogger(ctrl)

	application := app.New(
		loader,
		log,
		mocks.NewMockFinder(ctrl),
		mocks.NewMockFileSystem(ctrl),
		mocks.NewMockArtifactStore(ctrl),
		mocks.NewMockHasher(ctrl),
		mocks.NewMockWatcher(ctrl),
	).WithWorkDir(t.TempDir())

	return &app.Components{App: application, Logger: log}, loader, log
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	components, _, _ := newComponents(t)
	cleaned := false

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() { cleaned = true }, nil
	}

	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), provider)
	assert.Equal(t, 0, exitCode)
	assert.True(t, cleaned)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 and logs when the command fails.
func TestRun_ExecutionError(t *testing.T) {
	components, loader, log := newComponents(t)

	loader.EXPECT().Load(gomock.Any(), "").Return(nil, domain.ErrConfigNotFound)
	log.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorContains(t, err, domain.ErrConfigNotFound.Error())
	})

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	exitCode := run(context.Background(), []string{"optimize", "frontend"}, new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}
