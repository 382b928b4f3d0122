package infra

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/kngsnwn/gigapress/config"
)

type LoggerClient struct {
	logger         *slog.Logger
	loggerProvider *sdklog.LoggerProvider
	meterProvider  *sdkmetric.MeterProvider
}

// InitLoggerClient wires structured logging. With an OTLP endpoint configured
// it exports logs and runtime metrics over OTLP/HTTP; otherwise it logs JSON
// to stdout.
func InitLoggerClient(cfg *config.EnvConfig) *LoggerClient {
	if cfg.Telemetry.OTLPEndpoint == "" {
		return &LoggerClient{
			logger: slog.New(slog.NewJSONHandler(os.Stdout, nil)),
		}
	}

	ctx := context.Background()

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.Telemetry.ServiceName),
	)

	logExporter, err := otlploghttp.New(ctx,
		otlploghttp.WithEndpoint(cfg.Telemetry.OTLPEndpoint),
		otlploghttp.WithInsecure(),
	)
	if err != nil {
		log.Printf("OTLP log exporter failed, falling back to stdout: %v", err)
		return &LoggerClient{
			logger: slog.New(slog.NewJSONHandler(os.Stdout, nil)),
		}
	}

	loggerProvider := sdklog.NewLoggerProvider(
		sdklog.WithResource(res),
		sdklog.WithProcessor(sdklog.NewBatchProcessor(logExporter)),
	)

	metricExporter, err := otlpmetrichttp.New(ctx,
		otlpmetrichttp.WithEndpoint(cfg.Telemetry.OTLPEndpoint),
		otlpmetrichttp.WithInsecure(),
	)
	if err != nil {
		log.Printf("OTLP metric exporter failed, metrics disabled: %v", err)
	}

	var meterProvider *sdkmetric.MeterProvider
	if metricExporter != nil {
		meterProvider = sdkmetric.NewMeterProvider(
			sdkmetric.WithResource(res),
			sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter,
				sdkmetric.WithInterval(15*time.Second))),
		)
		otel.SetMeterProvider(meterProvider)
		if err := runtime.Start(runtime.WithMeterProvider(meterProvider)); err != nil {
			log.Printf("Failed to start runtime instrumentation: %v", err)
		}
	}

	return &LoggerClient{
		logger:         otelslog.NewLogger(cfg.Telemetry.ServiceName, otelslog.WithLoggerProvider(loggerProvider)),
		loggerProvider: loggerProvider,
		meterProvider:  meterProvider,
	}
}

func (l *LoggerClient) Infof(format string, args ...any) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

func (l *LoggerClient) Warningf(format string, args ...any) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *LoggerClient) InfoWithContextf(ctx context.Context, format string, args ...any) {
	l.logger.InfoContext(ctx, fmt.Sprintf(format, args...))
}

func (l *LoggerClient) WarningWithContextf(ctx context.Context, format string, args ...any) {
	l.logger.WarnContext(ctx, fmt.Sprintf(format, args...))
}

func (l *LoggerClient) ErrorWithContextf(ctx context.Context, err error, format string, args ...any) {
	l.logger.ErrorContext(ctx, fmt.Sprintf(format, args...), slog.Any("error", err))
}

// Shutdown flushes buffered telemetry. Safe to call on a stdout-only client.
func (l *LoggerClient) Shutdown(ctx context.Context) error {
	if l.meterProvider != nil {
		if err := l.meterProvider.Shutdown(ctx); err != nil {
			return err
		}
	}
	if l.loggerProvider != nil {
		return l.loggerProvider.Shutdown(ctx)
	}
	return nil
}
