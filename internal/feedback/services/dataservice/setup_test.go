package dataservice

import (
	"testing"

	"github.com/Leopold1975/feedback_control/internal/pkg/config"
	"github.com/Leopold1975/feedback_control/pkg/logger"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// The process-wide instance can be initialized only once per test binary, so
// every singleton property is checked in this one test.
func TestInstanceInitializedOnce(t *testing.T) {
	const n = 32

	got := make([]*DataService, n)

	var g errgroup.Group

	for i := 0; i < n; i++ {
		i := i

		g.Go(func() error {
			got[i] = Instance()

			return nil
		})
	}

	require.NoError(t, g.Wait())

	for _, ds := range got {
		require.Same(t, got[0], ds)
	}

	require.Len(t, got[0].GetUsers(), 6, "seeded exactly once")
	require.Len(t, got[0].GetForms(), 2)

	cfg := config.DefaultStore()
	cfg.HashAlgorithm = "unknown"

	ds, err := Setup(cfg, logger.Nop())
	require.NoError(t, err, "later setup calls reuse the first result")
	require.Same(t, got[0], ds)

	_, ok := ds.AuthenticateUser("admin", "123")
	require.True(t, ok)
}
