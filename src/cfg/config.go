package cfg

import (
	"github.com/go-faster/errors"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/Blackdeer1524/BucketDist/src/dataset"
)

const (
	// DefaultBuckets is the number of buckets keys are spread over.
	DefaultBuckets = 100

	// DefaultEpochs is the number of seeds tried, starting at zero.
	DefaultEpochs uint64 = 1000

	EnvPrefix = "BUCKETDIST"
)

// DefaultAlgorithms are the hash families evaluated when none are configured.
var DefaultAlgorithms = []string{"blake3"}

type Config struct {
	Environment Environment `split_words:"true"`

	DatasetPath string `split_words:"true"`
	OutputPath  string `split_words:"true"`
	Algorithms  []string

	Buckets int    `ignored:"true"`
	Epochs  uint64 `ignored:"true"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Environment: DefaultEnv,
		DatasetPath: dataset.DefaultPath,
		Algorithms:  append([]string(nil), DefaultAlgorithms...),
		Buckets:     DefaultBuckets,
		Epochs:      DefaultEpochs,
	}
}

// LoadConfig reads an optional .env file at path and then the process
// environment. An empty path skips the file.
func LoadConfig(path string) (Config, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			return Config{}, errors.Wrapf(err, "load env file %q", path)
		}
	}

	cfg := Default()
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "process env")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if err := c.Environment.Validate(); err != nil {
		return errors.Wrap(err, "environment validation")
	}

	if c.DatasetPath == "" {
		return errors.New("dataset path must not be empty")
	}

	if len(c.Algorithms) == 0 {
		return errors.New("at least one algorithm must be enabled")
	}

	if c.Buckets < 1 {
		return errors.Errorf("bucket count must be positive, got %d", c.Buckets)
	}

	return nil
}

const (
	EnvDev  Environment = "dev"
	EnvProd Environment = "prod"

	DefaultEnv = EnvDev
)

type Environment string

func (e Environment) Validate() error {
	if e != EnvDev && e != EnvProd {
		return errors.New("environment must be either dev or prod")
	}

	return nil
}
