// Command primes prints the first N primes from the lazy sieve.
// N and all other settings come from cmd/primes/config.yml, a .env file,
// or environment variables (e.g. COUNT=25).
package main

import (
	"context"
	"fmt"

	"github.com/primekit/primekit/config"
	"github.com/primekit/primekit/logger"
	"github.com/primekit/primekit/observability"
	"github.com/primekit/primekit/sieve"
)

type observabilityConfig struct {
	Enabled  bool   `yaml:"enabled" mapstructure:"enabled"`
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint"`
}

type appConfig struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
	Count                int64               `yaml:"count" mapstructure:"count" validate:"gte=0"`
	Observability        observabilityConfig `yaml:"observability" mapstructure:"observability"`
}

func (c *appConfig) ApplyDefaults() {
	c.ServiceConfig.ApplyDefaults()
	if c.Observability.Endpoint == "" {
		c.Observability.Endpoint = "localhost:4318"
	}
}

func (c *appConfig) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	return config.ValidateStruct(c)
}

func main() {
	ctx := context.Background()

	var cfg appConfig
	if err := config.LoadConfig("primes", &cfg); err != nil {
		logger.Fatal("failed to load config", logger.ErrorFields("load_config", err))
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid config", logger.ErrorFields("validate_config", err))
	}

	logger.Init(cfg.Logging)
	log := logger.WithComponent("primes")

	opts := []sieve.Option{}
	if cfg.Observability.Enabled {
		meterCfg := observability.DefaultMeterConfig(cfg.Name)
		meterCfg.Endpoint = cfg.Observability.Endpoint
		meterCfg.Environment = cfg.Environment
		mp, err := observability.InitMeter(ctx, &meterCfg)
		if err != nil {
			log.Fatal("failed to init meter", logger.ErrorFields("init_meter", err))
		}
		defer mp.Shutdown(ctx)

		tracerCfg := observability.DefaultTracerConfig(cfg.Name)
		tracerCfg.Endpoint = cfg.Observability.Endpoint
		tracerCfg.Environment = cfg.Environment
		tp, err := observability.InitTracer(ctx, tracerCfg)
		if err != nil {
			log.Fatal("failed to init tracer", logger.ErrorFields("init_tracer", err))
		}
		defer tp.Shutdown(ctx)

		metrics, err := observability.NewSieveMetrics(observability.Meter(cfg.Name))
		if err != nil {
			log.Fatal("failed to create sieve metrics", logger.ErrorFields("new_metrics", err))
		}
		opts = append(opts, sieve.WithMetrics(metrics))
	}

	ctx, span := observability.StartSpan(ctx, observability.SpanSieveTake)
	defer span.End()
	observability.SetSpanAttribute(ctx, "count", cfg.Count)

	primes, err := sieve.Primes(ctx, cfg.Count, opts...)
	if err != nil {
		observability.SetSpanError(ctx, err)
		log.Fatal("prime generation failed", logger.ErrorFields("take", err))
	}

	log.Info("primes generated", logger.Fields(logger.FieldCount, len(primes)))
	for _, p := range primes {
		fmt.Println(p)
	}
}
