package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/N1ghtTheF0x/TypeCraft/internal/config"
	"github.com/N1ghtTheF0x/TypeCraft/internal/errors"
	"github.com/N1ghtTheF0x/TypeCraft/internal/telemetry"
	"github.com/N1ghtTheF0x/TypeCraft/pkg/capture"
	"github.com/N1ghtTheF0x/TypeCraft/pkg/protocol"
	"github.com/N1ghtTheF0x/TypeCraft/pkg/session"
)

type connectFlags struct {
	configPath    string
	host          string
	port          int
	username      string
	transport     string
	url           string
	metricsAddr   string
	captureDir    string
	captureBucket string
	capturePrefix string
	captureRegion string
	captureURL    string
	logLevel      string
}

func connectCmd() *cobra.Command {
	var flags connectFlags

	cmd := &cobra.Command{
		Use:   "connect",
		Short: "Join a server and stay connected",
		Long: `Join a server, log in, and keep the connection alive until the
server kicks the client or Ctrl+C is pressed.

Settings come from typecraft.json in the working directory (or --config);
flags override them.

Examples:
  typecraft connect --host localhost --username Steve
  typecraft connect --transport websocket --url ws://localhost:8080/
  typecraft connect --metrics-addr :9090 --capture-dir packets`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, &flags)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runConnect(ctx, cmd, cfg)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.configPath, "config", "c", "", "Path to typecraft.json")
	f.StringVarP(&flags.host, "host", "H", "", "Server host (default from typecraft.json)")
	f.IntVarP(&flags.port, "port", "p", 0, "Server port (default from typecraft.json)")
	f.StringVarP(&flags.username, "username", "u", "", "Player name")
	f.StringVar(&flags.transport, "transport", "", "Transport: tcp or websocket")
	f.StringVar(&flags.url, "url", "", "Websocket bridge URL")
	f.StringVar(&flags.metricsAddr, "metrics-addr", "", "Serve /metrics and /healthz on this address")
	f.StringVar(&flags.captureDir, "capture-dir", "", "Write every packet to this directory")
	f.StringVar(&flags.captureBucket, "capture-bucket", "", "Upload every packet to this S3 bucket")
	f.StringVar(&flags.capturePrefix, "capture-prefix", "", "Key prefix for S3 captures")
	f.StringVar(&flags.captureRegion, "capture-region", "", "AWS region for S3 captures")
	f.StringVar(&flags.captureURL, "capture-endpoint", "", "S3-compatible endpoint URL")
	f.StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	return cmd
}

// loadConfig reads the config file and applies flag overrides. A missing
// typecraft.json in the working directory is not an error.
func loadConfig(cmd *cobra.Command, flags *connectFlags) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if flags.configPath != "" {
		cfg, err = config.LoadFile(flags.configPath)
	} else {
		cfg, err = config.Load(".")
		var e *errors.Error
		if stderrors.As(err, &e) && e.Code == "E100" {
			cfg, err = config.New(), nil
		}
	}
	if err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed("host") {
		cfg.Server.Host = flags.host
	}
	if changed("port") {
		cfg.Server.Port = flags.port
	}
	if changed("username") {
		cfg.Username = flags.username
	}
	if changed("transport") {
		cfg.Transport.Kind = flags.transport
	}
	if changed("url") {
		cfg.Transport.URL = flags.url
	}
	if changed("metrics-addr") {
		cfg.Metrics.Addr = flags.metricsAddr
	}
	if changed("capture-dir") {
		cfg.Capture.Dir = flags.captureDir
	}
	if changed("capture-bucket") {
		cfg.Capture.Bucket = flags.captureBucket
	}
	if changed("capture-prefix") {
		cfg.Capture.Prefix = flags.capturePrefix
	}
	if changed("capture-region") {
		cfg.Capture.Region = flags.captureRegion
	}
	if changed("capture-endpoint") {
		cfg.Capture.Endpoint = flags.captureURL
	}
	if changed("log-level") {
		cfg.Log.Level = flags.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runConnect(ctx context.Context, cmd *cobra.Command, cfg *config.Config) error {
	out := cmd.OutOrStdout()
	logger := cfg.Logger(cmd.ErrOrStderr())

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	metrics := session.NewMetrics(
		session.WithRegistry(reg),
		session.WithNamespace(cfg.Metrics.Namespace),
	)

	opts := []session.Option{
		session.WithDialer(cfg.Dialer()),
		session.WithLogger(logger),
		session.WithMetrics(metrics),
	}
	sink, err := captureSink(ctx, cfg)
	if err != nil {
		return err
	}
	if sink != nil {
		opts = append(opts, session.WithCapture(sink))
	}

	s, err := session.New(cfg.Session(), opts...)
	if err != nil {
		return errors.Classify(err, "E101")
	}
	session.On(s, func(p *protocol.Chat) {
		logger.Info("chat", "message", p.Message)
	})
	session.On(s, func(p *protocol.DisconnectKick) {
		logger.Warn("kicked", "reason", p.Reason)
	})

	if cfg.Metrics.Addr != "" {
		health := func() error {
			if s.State() == session.StateEnded {
				return session.ErrSessionEnded
			}
			return nil
		}
		go func() {
			if err := telemetry.Serve(ctx, cfg.Metrics.Addr, telemetry.NewRouter(reg, health)); err != nil {
				logger.Error("telemetry server failed", "addr", cfg.Metrics.Addr, "error", errors.New("E203").Wrap(err))
			}
		}()
		logger.Info("telemetry listening", "addr", cfg.Metrics.Addr)
	}

	start := time.Now()
	if err := s.Connect(ctx); err != nil {
		return errors.Classify(err, "E200")
	}
	runErr := s.Run(ctx)

	success(out, "Session ended after %s", time.Since(start).Round(time.Second))
	info(out, "Entity:  %d", s.EntityID())
	info(out, "Seed:    %d", s.MapSeed())
	info(out, "Ticks:   %d", s.Ticks())

	if runErr == nil || stderrors.Is(runErr, context.Canceled) {
		return nil
	}
	return errors.Classify(runErr, "E202")
}

// captureSink builds the sinks selected by the config, or nil when capture
// is off.
func captureSink(ctx context.Context, cfg *config.Config) (capture.Sink, error) {
	var sinks []capture.Sink
	if dir := cfg.CapturePath(); dir != "" {
		fs, err := capture.NewFileSink(dir)
		if err != nil {
			return nil, errors.New("E204").Wrap(err)
		}
		sinks = append(sinks, fs)
	}
	if cfg.Capture.Bucket != "" {
		client, err := newS3Client(ctx, cfg.Capture)
		if err != nil {
			return nil, errors.New("E204").Wrap(err)
		}
		sinks = append(sinks, &capture.S3Sink{
			Client: client,
			Bucket: cfg.Capture.Bucket,
			Prefix: cfg.Capture.Prefix,
		})
	}
	switch len(sinks) {
	case 0:
		return nil, nil
	case 1:
		return sinks[0], nil
	default:
		return capture.Multi(sinks...), nil
	}
}

// defaultS3Region is used when neither the config nor the AWS environment
// names a region.
const defaultS3Region = "us-east-1"

// newS3Client loads the default AWS config chain (environment, shared
// config and credentials files, SSO, instance metadata) and applies the
// capture overrides.
func newS3Client(ctx context.Context, c config.CaptureConfig) (*s3.Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if c.Region != "" {
		opts = append(opts, awsconfig.WithRegion(c.Region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	if awsCfg.Region == "" {
		awsCfg.Region = defaultS3Region
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if c.Endpoint != "" {
			o.BaseEndpoint = aws.String(c.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}
