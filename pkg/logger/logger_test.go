package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Leopold1975/feedback_control/internal/pkg/config"
	"github.com/stretchr/testify/require"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")

	lg, err := New(config.Logger{Level: "debug", Output: []string{path}, ErrOutput: []string{"stderr"}})
	require.NoError(t, err)

	lg.Named("test").Debugf("user %s added", "dev")
	require.NoError(t, lg.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(b), "DEBUG")
	require.Contains(t, string(b), "user dev added")
}

func TestNewBadLevel(t *testing.T) {
	_, err := New(config.Logger{Level: "loud"})
	require.Error(t, err)
}

func TestCloseStandardStreams(t *testing.T) {
	lg, err := New(config.Logger{Level: "info", Output: []string{"stderr"}, ErrOutput: []string{"stderr"}})
	require.NoError(t, err)

	lg.Info("closing")
	require.NoError(t, lg.Close())
}

func TestNop(t *testing.T) {
	lg := Nop()
	lg.Infof("nothing %d", 1)
	require.NoError(t, lg.Close())
}
