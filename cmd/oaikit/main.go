// Command oaikit is a small command line front end for the client library.
//
// Configuration comes from the environment (or a .env file):
//
//	OPENAI_ACCESS_TOKEN, OPENAI_ORGANIZATION_ID, OPENAI_URI_BASE,
//	OPENAI_API_TYPE, OPENAI_API_VERSION, OPENAI_REQUEST_TIMEOUT,
//	OPENAI_LOG_ERRORS, OAIKIT_LOG_LEVEL, OAIKIT_METRICS_ADDR, OAIKIT_MODEL
package main

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spetersoncode/oaikit"
	"github.com/spetersoncode/oaikit/client"
	"github.com/spetersoncode/oaikit/transport"
	"github.com/spf13/cobra"
)

type app struct {
	cfg     *Config
	metrics *transport.Metrics
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "oaikit",
		Short:         "Talk to the OpenAI and Azure OpenAI APIs",
		Version:       oaikit.Version,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	root.AddCommand(
		newModelsCmd(a),
		newChatCmd(a),
		newFilesCmd(a),
		newTokensCmd(),
	)
	return root
}

// setup loads configuration, installs the logger and applies the process
// defaults every client is resolved against.
func (a *app) setup() error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	a.cfg = cfg

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(cfg.LogLevel),
	})))

	if cfg.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		a.metrics = transport.NewMetrics(reg)
		go serveMetrics(cfg.MetricsAddr, reg)
	}

	return cfg.Apply()
}

// client resolves a client against the process defaults.
func (a *app) client() (*client.Client, error) {
	var opts []client.Option
	if a.metrics != nil {
		opts = append(opts, client.WithMetrics(a.metrics))
	}
	c, err := client.New(opts...)
	if err != nil {
		return nil, err
	}
	slog.Debug("client ready", "client", c)
	return c, nil
}

func serveMetrics(addr string, reg *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	slog.Info("serving metrics", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("metrics server stopped", "error", err)
	}
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
