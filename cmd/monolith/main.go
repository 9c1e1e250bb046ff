package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/arixsnow/monolith/internal/config"
	"github.com/arixsnow/monolith/internal/generator"
)

var (
	// Version is set at build time
	Version = "dev"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	contentName := "content.yaml"
	if len(os.Args) > 1 {
		contentName = os.Args[1]
	}

	logger.Info("starting monolith",
		zap.String("version", Version),
		zap.String("content", contentName),
	)

	gen := generator.New(cfg, logger)
	outPath, err := gen.Generate(contentName)
	if err != nil {
		logger.Fatal("site generation failed", zap.Error(err))
	}

	logger.Info("site generated successfully", zap.String("output", outPath))
}

func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}
