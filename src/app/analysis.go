package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/Blackdeer1524/BucketDist/src"
	"github.com/Blackdeer1524/BucketDist/src/cfg"
	"github.com/Blackdeer1524/BucketDist/src/dataset"
	"github.com/Blackdeer1524/BucketDist/src/epoch"
	"github.com/Blackdeer1524/BucketDist/src/pkg/pubkey"
	"github.com/Blackdeer1524/BucketDist/src/pkg/utils"
	"github.com/Blackdeer1524/BucketDist/src/report"
)

// AnalysisEntrypoint loads the dataset and evaluates every enabled hash
// family over the configured epochs.
type AnalysisEntrypoint struct {
	ConfigPath string

	// Fs and Stdout default to the OS filesystem and os.Stdout.
	Fs     afero.Fs
	Stdout io.Writer

	// Logger overrides the environment-derived zap logger.
	Logger src.Logger

	// Override adjusts the loaded configuration, e.g. to shrink a run in
	// tests.
	Override func(*cfg.Config)

	cfg    cfg.Config
	log    src.Logger
	keys   []pubkey.Pubkey
	out    afero.File
	driver *epoch.Driver
}

func (e *AnalysisEntrypoint) Init(ctx context.Context) error {
	config, err := cfg.LoadConfig(e.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if e.Override != nil {
		e.Override(&config)
		if err := config.Validate(); err != nil {
			return fmt.Errorf("validate config: %w", err)
		}
	}

	e.cfg = config

	if e.Fs == nil {
		e.Fs = afero.NewOsFs()
	}
	if e.Stdout == nil {
		e.Stdout = os.Stdout
	}

	e.log = e.Logger
	if e.log == nil {
		if e.cfg.Environment == cfg.EnvDev {
			e.log = utils.Must(zap.NewDevelopment()).Sugar()
		} else {
			e.log = utils.Must(zap.NewProduction()).Sugar()
		}
	}

	runID := uuid.NewString()
	e.log.Infow("starting analysis",
		"run_id", runID,
		"dataset", e.cfg.DatasetPath,
		"algorithms", e.cfg.Algorithms,
		"buckets", e.cfg.Buckets,
		"epochs", e.cfg.Epochs,
	)

	trials, err := epoch.Lookup(e.cfg.Algorithms)
	if err != nil {
		return err
	}

	e.keys, err = dataset.Load(e.Fs, e.cfg.DatasetPath)
	if err != nil {
		return err
	}
	e.log.Infof("loaded %d keys", len(e.keys))

	out := e.Stdout
	if e.cfg.OutputPath != "" {
		e.out, err = e.Fs.Create(e.cfg.OutputPath)
		if err != nil {
			return errors.Wrap(err, "create output")
		}
		out = e.out
	}

	e.driver, err = epoch.NewDriver(e.cfg.Buckets, e.cfg.Epochs, trials, report.NewCSV(out), e.log)
	if err != nil {
		return err
	}

	return nil
}

func (e *AnalysisEntrypoint) Run(ctx context.Context) error {
	timings, err := e.driver.Run(ctx, e.keys)
	if err != nil {
		return err
	}

	for _, avg := range timings.Averages(e.cfg.Epochs) {
		e.log.Infow("algorithm finished", "algorithm", avg.First, "per_epoch", avg.Second)
	}

	return nil
}

func (e *AnalysisEntrypoint) Close() (err error) {
	if e.out != nil {
		err = e.out.Close()
		e.out = nil
	}

	if e.log != nil {
		if err != nil {
			e.log.Errorf("failed to close output: %v", err)
		}

		logErr := e.log.Sync()
		// syncing stderr is not supported on every platform
		if logErr != nil && !isInvalidSync(logErr) {
			if err != nil {
				err = fmt.Errorf("%w, %w", err, logErr)
			} else {
				err = logErr
			}
		}
	}

	return
}

func isInvalidSync(err error) bool {
	return errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY)
}
