package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/quantmind-br/repoclone/internal/cloner"
	"github.com/quantmind-br/repoclone/internal/config"
	"github.com/quantmind-br/repoclone/internal/domain"
	"github.com/quantmind-br/repoclone/internal/mocks"
	"github.com/quantmind-br/repoclone/internal/tui"
	"github.com/quantmind-br/repoclone/internal/utils"
)

// withFakes swaps the package dependencies for the duration of a test
func withFakes(t *testing.T, backend domain.Cloner, prober domain.RemoteProber) *bytes.Buffer {
	t.Helper()

	var out bytes.Buffer
	origStdout, origBackend, origProber := stdout, newBackend, newProber
	stdout = &out
	newBackend = func(*utils.Logger) domain.Cloner { return backend }
	newProber = func(*config.Config, *utils.Logger) domain.RemoteProber { return prober }
	t.Cleanup(func() {
		stdout, newBackend, newProber = origStdout, origBackend, origProber
	})
	return &out
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Clone.Probe = false
	return cfg
}

func quietLogger() *utils.Logger {
	return utils.NewLogger(utils.LoggerOptions{Level: "disabled"})
}

func TestRootCmd(t *testing.T) {
	t.Run("flags are registered", func(t *testing.T) {
		for _, name := range []string{"config", "verbose", "quiet", "style", "branch", "no-probe"} {
			assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
		}
		assert.NotNil(t, rootCmd.Flags().Lookup("bare"))
	})

	t.Run("subcommands are registered", func(t *testing.T) {
		names := make([]string, 0)
		for _, c := range rootCmd.Commands() {
			names = append(names, c.Name())
		}
		assert.Subset(t, names, []string{"starter", "config", "doctor", "version"})
	})

	t.Run("accepts at most two arguments", func(t *testing.T) {
		assert.NoError(t, rootCmd.Args(rootCmd, []string{"a", "b"}))
		assert.Error(t, rootCmd.Args(rootCmd, []string{"a", "b", "c"}))
	})
}

func TestRunClone_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockCloner(ctrl)
	prober := mocks.NewMockRemoteProber(ctrl)
	out := withFakes(t, backend, prober)
	dest := filepath.Join(t.TempDir(), "repo")

	backend.EXPECT().
		Clone(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req domain.CloneRequest, cb domain.ProgressCallbacks) error {
			assert.Equal(t, "develop", req.Branch)
			cb.OnTransfer(domain.TransferSnapshot{ReceivedObjects: 3, TotalObjects: 3, IndexedObjects: 3, IndexedDeltas: 2, TotalDeltas: 2})
			cb.OnCheckout("main.go", 1, 1)
			return nil
		})
	prober.EXPECT().Head(dest).Return(&domain.HeadInfo{Branch: "develop", Commit: "abcdef0123456"}, nil)

	cfg := testConfig()
	cfg.Clone.Branch = "develop"
	req := baseRequest(cfg)
	req.URL = "https://github.com/example/repo.git"
	req.Path = dest

	result, err := runClone(context.Background(), cfg, quietLogger(), req)

	require.NoError(t, err)
	assert.Equal(t, "\nResolving deltas 2/2\rResolving deltas 2/2\r\n", out.String())
	assert.Equal(t, "develop", result.Head.Branch)
}

func TestRunClone_FailureShownOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockCloner(ctrl)
	out := withFakes(t, backend, mocks.NewMockRemoteProber(ctrl))

	backend.EXPECT().Clone(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("remote hung up"))

	req := domain.CloneRequest{URL: "https://github.com/example/repo.git", Path: filepath.Join(t.TempDir(), "repo")}
	_, err := runClone(context.Background(), testConfig(), quietLogger(), req)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCloneFailed)
	assert.Contains(t, out.String(), "error: ")
	assert.Contains(t, out.String(), "remote hung up")
	assert.Empty(t, errorMessage(err), "already printed by the display")
}

func TestRunClone_FailureWithoutDisplay(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockCloner(ctrl)
	out := withFakes(t, backend, mocks.NewMockRemoteProber(ctrl))

	backend.EXPECT().Clone(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("remote hung up"))

	cfg := testConfig()
	cfg.Display.Style = "none"
	req := domain.CloneRequest{URL: "https://github.com/example/repo.git", Path: filepath.Join(t.TempDir(), "repo")}
	_, err := runClone(context.Background(), cfg, quietLogger(), req)

	require.Error(t, err)
	assert.Empty(t, out.String())
	assert.Contains(t, errorMessage(err), "remote hung up")
}

func TestRunClone_InvalidSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	withFakes(t, mocks.NewMockCloner(ctrl), mocks.NewMockRemoteProber(ctrl))

	_, err := runClone(context.Background(), testConfig(), quietLogger(), domain.CloneRequest{URL: ""})

	assert.ErrorIs(t, err, domain.ErrInvalidSource)
	assert.NotEmpty(t, errorMessage(err))
}

func TestRunStarter(t *testing.T) {
	t.Run("named starter is cloned into the working directory", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		backend := mocks.NewMockCloner(ctrl)
		prober := mocks.NewMockRemoteProber(ctrl)
		out := withFakes(t, backend, prober)

		dir := t.TempDir()
		t.Chdir(dir)
		cwd, err := os.Getwd()
		require.NoError(t, err)

		backend.EXPECT().
			Clone(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req domain.CloneRequest, _ domain.ProgressCallbacks) error {
				assert.Equal(t, "https://github.com/nalexn/clean-architecture-swiftui", req.URL)
				assert.Equal(t, filepath.Join(cwd, "SwiftUI"), req.Path)
				return nil
			})
		prober.EXPECT().Head(gomock.Any()).Return(nil, errors.New("no repo"))

		err = runStarter(context.Background(), testConfig(), quietLogger(), "swiftui", false)

		require.NoError(t, err)
		assert.Contains(t, out.String(), "SwiftUI")
	})

	t.Run("unknown starter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		withFakes(t, mocks.NewMockCloner(ctrl), mocks.NewMockRemoteProber(ctrl))

		err := runStarter(context.Background(), testConfig(), quietLogger(), "Flutter", false)

		assert.ErrorIs(t, err, domain.ErrUnknownStarter)
	})

	t.Run("cancelled menu is not an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		withFakes(t, mocks.NewMockCloner(ctrl), mocks.NewMockRemoteProber(ctrl))

		orig := selectStarter
		selectStarter = func([]domain.Starter, bool) (domain.Starter, error) {
			return domain.Starter{}, tui.ErrCancelled
		}
		t.Cleanup(func() { selectStarter = orig })

		assert.NoError(t, runStarter(context.Background(), testConfig(), quietLogger(), "", true))
	})
}

func TestRunConfigInit(t *testing.T) {
	withFakes(t, nil, nil)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	require.NoError(t, runConfigInit(path, false))
	assert.FileExists(t, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "clean-architecture-swiftui")

	assert.Error(t, runConfigInit(path, false), "existing file needs --force")
	assert.NoError(t, runConfigInit(path, true))
}

func TestRunDoctor(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(home)

	orig := libraryInfo
	t.Cleanup(func() { libraryInfo = orig })

	t.Run("all checks pass", func(t *testing.T) {
		libraryInfo = func() cloner.LibraryInfo {
			return cloner.LibraryInfo{Version: "1.5.0", HTTPS: true, SSH: true}
		}
		var out bytes.Buffer

		assert.True(t, runDoctor(&out))
		assert.Contains(t, out.String(), "1.5.0")
		assert.Contains(t, out.String(), "All critical checks passed!")
	})

	t.Run("missing HTTPS fails", func(t *testing.T) {
		libraryInfo = func() cloner.LibraryInfo {
			return cloner.LibraryInfo{Version: "1.5.0", SSH: true}
		}
		var out bytes.Buffer

		assert.False(t, runDoctor(&out))
		assert.Contains(t, out.String(), "without HTTPS")
	})

	t.Run("missing SSH only warns", func(t *testing.T) {
		libraryInfo = func() cloner.LibraryInfo {
			return cloner.LibraryInfo{Version: "1.5.0", HTTPS: true}
		}
		var out bytes.Buffer

		assert.True(t, runDoctor(&out))
		assert.Contains(t, out.String(), "without SSH")
	})
}

func TestVersionCmd(t *testing.T) {
	out := withFakes(t, nil, nil)

	versionCmd.Run(versionCmd, nil)

	assert.Contains(t, out.String(), "repoclone")
	assert.Contains(t, out.String(), "libgit2")
}

func TestBaseRequest(t *testing.T) {
	cfg := config.Default()
	cfg.Clone.Branch = "main"
	cfg.Clone.Bare = true
	cfg.Clone.AuthToken = "tok"
	cfg.Clone.IgnoreCertErrors = true

	req := baseRequest(cfg)

	assert.Equal(t, domain.CloneRequest{Branch: "main", Bare: true, AuthToken: "tok", IgnoreCertErrors: true}, req)
}

func TestErrorMessage(t *testing.T) {
	plain := errors.New("boom")
	assert.Equal(t, "error: boom", errorMessage(plain))
	assert.Empty(t, errorMessage(&displayedError{err: plain}))
}
