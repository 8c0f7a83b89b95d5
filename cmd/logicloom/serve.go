package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/pborges/logicloom"
	"github.com/pborges/logicloom/internal/metrics"
	"github.com/pborges/logicloom/internal/server"
)

type serveOptions struct {
	config string
}

// serveConfig is resolved from flags, LOGICLOOM_* variables and the config
// file, in that order of precedence.
type serveConfig struct {
	Addr            string        `mapstructure:"addr"`
	MaxConcurrent   int64         `mapstructure:"max-concurrent"`
	MaxCandidates   int           `mapstructure:"max-candidates"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown-timeout"`
	Debug           bool          `mapstructure:"debug"`
}

func (o *serveOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.config, "config", "", "path to a YAML config file")
	fs.String("addr", ":8080", "address to listen on")
	fs.Int64("max-concurrent", 4, "runs allowed to execute at once")
	fs.Int("max-candidates", 100000, "abort a run when the covering search holds more partial covers (0 for no limit)")
	fs.Duration("shutdown-timeout", 10*time.Second, "time allowed for in-flight requests on shutdown")
	fs.Bool("debug", false, "use debug log level")
}

func loadServeConfig(fs *pflag.FlagSet, path string) (serveConfig, error) {
	v := viper.New()
	v.SetEnvPrefix("LOGICLOOM")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return serveConfig{}, errors.Wrap(err, "binding flags")
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return serveConfig{}, errors.Wrapf(err, "reading config %s", path)
		}
	}
	var c serveConfig
	if err := v.Unmarshal(&c); err != nil {
		return serveConfig{}, errors.Wrap(err, "decoding config")
	}
	return c, nil
}

func newServeCmd() *cobra.Command {
	o := serveOptions{}

	cmd := &cobra.Command{
		Use:          "serve",
		Short:        "Serve simplification over HTTP",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadServeConfig(cmd.Flags(), o.config)
			if err != nil {
				return err
			}

			logger := logrus.New()
			logger.SetOutput(cmd.ErrOrStderr())
			if c.Debug {
				logger.SetLevel(logrus.DebugLevel)
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			return serve(ctx, logger, c)
		},
	}
	o.AddFlags(cmd.Flags())
	return cmd
}

func serve(ctx context.Context, logger *logrus.Logger, c serveConfig) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m, err := metrics.New(reg)
	if err != nil {
		return err
	}
	s := server.New(m, reg,
		server.WithLogger(logger),
		server.WithMaxConcurrent(c.MaxConcurrent),
		server.WithMaxCandidates(c.MaxCandidates),
	)
	srv := &http.Server{
		Addr:              c.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.WithFields(logrus.Fields{
			"addr":    c.Addr,
			"version": logicloom.Version(),
		}).Info("serving")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "listening")
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), c.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
