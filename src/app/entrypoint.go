package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"
)

type Entrypoint interface {
	io.Closer
	Init(ctx context.Context) error
	Run(ctx context.Context) error
}

// Run initializes e, runs it to completion and closes it. SIGINT and SIGTERM
// cancel the context passed to Run; Close always runs after Run has returned.
func Run(ctx context.Context, e Entrypoint) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := e.Init(ctx); err != nil {
		return errors.Join(fmt.Errorf("entrypoint init error: %w", err), e.Close())
	}

	runCtx, finish := context.WithCancel(ctx)
	eg := new(errgroup.Group)

	eg.Go(func() error {
		defer finish()
		return e.Run(runCtx)
	})

	eg.Go(func() error {
		<-runCtx.Done()
		if ctx.Err() != nil {
			_, _ = fmt.Fprintf(os.Stderr, "interrupted, stopping after the current epoch...\n")
		}
		return nil
	})

	return errors.Join(eg.Wait(), e.Close())
}
