package main

import (
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rgehrsitz/wonpay/internal/calculation"
	"github.com/rgehrsitz/wonpay/internal/config"
	"github.com/rgehrsitz/wonpay/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the calculators as a JSON API",
	Long: `Serve the calculators over HTTP.

Settings come from wonpay.yaml (or --config) and WONPAY_* environment
variables. A .env file in the working directory is loaded first.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}

		settingsFile, _ := cmd.Flags().GetString("config")
		settings, err := config.LoadSettings(settingsFile)
		if err != nil {
			return err
		}
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			settings.Server.Address = addr
		}

		level, _ := cmd.Flags().GetString("log-level")
		if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
			level = "debug"
		}
		logger, err := config.NewLogger(settings.Logging, level)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		engine := calculation.NewEngine()
		ratesFile, _ := cmd.Flags().GetString("rates")
		if ratesFile == "" {
			ratesFile = settings.RatesFile
		}
		if ratesFile != "" {
			rates, err := config.NewInputParser().LoadRates(ratesFile)
			if err != nil {
				return err
			}
			engine = calculation.NewEngineWithRates(rates)
			logger.Info("rates loaded", zap.String("op", "serve.rates"), zap.String("path", ratesFile))
		}
		engine.SetLogger(logger.Sugar())

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		handler := server.NewHandler(engine, logger, settings.Server, version)
		return server.ListenAndServe(ctx, handler, settings.Server, logger)
	},
}

func init() {
	serveCmd.Flags().String("config", "", "Settings file (default: ./wonpay.yaml)")
	serveCmd.Flags().String("addr", "", "Listen address, overrides server.address")
	serveCmd.Flags().String("log-level", "", "Log level (debug, info, warn, error), overrides logging.level")

	rootCmd.AddCommand(serveCmd)
}
