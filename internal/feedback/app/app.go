package app

import (
	"context"
	"fmt"
	"io"

	"github.com/Leopold1975/feedback_control/internal/feedback/api/console"
	"github.com/Leopold1975/feedback_control/internal/feedback/services/authservice"
	"github.com/Leopold1975/feedback_control/internal/feedback/services/dataservice"
	"github.com/Leopold1975/feedback_control/internal/pkg/config"
	"github.com/Leopold1975/feedback_control/pkg/logger"
	"golang.org/x/sync/errgroup"
)

type Console interface {
	Start(context.Context) error
	Shutdown(context.Context) error
}

type FeedbackApp struct {
	c   Console
	lg  logger.Logger
	cfg config.Config
}

// New wires the process-wide data service to a console reading in and
// writing out. A configuration the data service cannot start with, such as
// an unknown digest algorithm, is returned as an error.
func New(cfg config.Config, in io.Reader, out io.Writer) (FeedbackApp, error) {
	lg, err := logger.New(cfg.Logger)
	if err != nil {
		return FeedbackApp{}, fmt.Errorf("can't get logger error: %w", err)
	}

	ds, err := dataservice.Setup(cfg.Store, lg.Named("data"))
	if err != nil {
		return FeedbackApp{}, fmt.Errorf("data service initializing error: %w", err)
	}

	if cfg.Auth.Secret == config.DefaultSecret {
		lg.Warnf("session tokens are signed with the built-in default secret, set SECRET to override it")
	}

	authService := authservice.New(ds, cfg.Auth)

	c := console.New(cfg.Console, cfg.Export.Path, in, out, ds, authService, lg.Named("console"))

	return FeedbackApp{
		c:   c,
		lg:  lg,
		cfg: cfg,
	}, nil
}

// Run blocks until the console finishes or ctx is done.
func (fa *FeedbackApp) Run(ctx context.Context) error {
	fa.lg.Infof("STARTED CONSOLE")

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(runCtx)

	g.Go(func() error {
		defer cancel()

		if err := fa.c.Start(gctx); err != nil {
			return fmt.Errorf("console start error: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		ctxS, cancelS := context.WithTimeout(context.Background(), fa.cfg.Console.ShutdownTimeout)
		defer cancelS()

		return fa.Stop(ctxS) //nolint:contextcheck
	})

	if err := g.Wait(); err != nil {
		fa.lg.Errorf("run error: %s", err.Error())

		return err
	}

	return nil
}

func (fa *FeedbackApp) Stop(ctx context.Context) error {
	if err := fa.c.Shutdown(ctx); err != nil {
		return fmt.Errorf("console shutdown error: %w", err)
	}

	fa.lg.Info("shut down successfully")

	if err := fa.lg.Close(); err != nil {
		fa.lg.Warnf("logger close error: %s", err.Error())
	}

	return nil
}
