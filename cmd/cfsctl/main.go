package main

import (
	"cfs-service/internal/app/config"
	"cfs-service/internal/app/contracts"
	"cfs-service/internal/app/drivers/database"
	"cfs-service/internal/app/drivers/logger"
	"cfs-service/internal/app/services/core/assessments"
	"cfs-service/internal/app/services/core/exports"
	"cfs-service/internal/app/services/shared/eventqueue"
	"cfs-service/internal/pkg/cfs"
	"cfs-service/internal/pkg/dto/responses"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type cli struct {
	driverConfig   *config.DriverConfig
	internalConfig *config.InternalConfig
	log            *logrus.Logger
	zapLog         *zap.Logger
}

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	app := &cli{
		driverConfig:   driverConfig,
		internalConfig: internalConfig,
		log:            logger.NewLogrusLogger(driverConfig, internalConfig),
		zapLog:         newStderrZapLogger(driverConfig),
	}

	rootCmd := &cobra.Command{
		Use:          "cfsctl",
		Short:        "Clinical Frailty Scale maintenance tool",
		SilenceUsage: true,
	}
	rootCmd.AddCommand(app.scoreCmd())
	rootCmd.AddCommand(app.exportCmd())
	rootCmd.AddCommand(app.importCmd())

	err := rootCmd.Execute()
	_ = app.zapLog.Sync()
	if err != nil {
		app.log.WithError(err).Error("cfsctl failed")
		os.Exit(1)
	}
}

func (app *cli) scoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score one answer set without touching the store",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, _ := cmd.Flags().GetString("answers")
			return app.score(cmd.OutOrStdout(), raw)
		},
	}
	cmd.Flags().String("answers", "", `Answers as a JSON object, e.g. {"terminally":"0","dress":"1"}`)
	cmd.MarkFlagRequired("answers")
	return cmd
}

func (app *cli) score(w io.Writer, raw string) error {
	var input map[string]string
	if err := json.Unmarshal([]byte(raw), &input); err != nil {
		return fmt.Errorf("answers must be a JSON object of strings: %w", err)
	}

	answers, err := cfs.NewAnswers(input)
	if err != nil {
		return err
	}

	eval, err := cfs.Evaluate(answers)
	if err != nil {
		app.log.WithField("fields", cfs.ErrorFields(err)).Warn("answers cannot be scored")
		return err
	}

	app.log.WithFields(logrus.Fields{
		"level": eval.Result.Level,
		"rule":  eval.Result.Rule,
	}).Info("answers scored")

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(responses.NewScore(eval))
}

func (app *cli) exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every stored assessment as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("out")

			repository, closeStore, err := app.openRepository(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			exportUsecase := exports.NewExportUsecase(repository, nil, eventqueue.NewNoopPublisher(), app.internalConfig, app.zapLog)

			w := cmd.OutOrStdout()
			if out != "-" {
				file, err := os.Create(out)
				if err != nil {
					return err
				}
				defer file.Close()
				w = file
			}

			count, err := exportUsecase.WriteCSV(cmd.Context(), w)
			if err != nil {
				return err
			}
			app.log.WithFields(logrus.Fields{"records": count, "out": out}).Info("export written")
			return nil
		},
	}
	cmd.Flags().String("out", "-", "Output file, - for stdout")
	return cmd
}

func (app *cli) importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a legacy JSON dump into the store",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, _ := cmd.Flags().GetString("in")
			raw, err := os.ReadFile(in)
			if err != nil {
				return err
			}

			repository, closeStore, err := app.openRepository(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			assessmentUsecase := assessments.NewAssessmentUsecase(repository, eventqueue.NewNoopPublisher(), app.zapLog)
			result, err := assessmentUsecase.Import(cmd.Context(), raw)
			if err != nil {
				return err
			}

			app.log.WithFields(logrus.Fields{
				"imported": result.Imported,
				"skipped":  result.Skipped,
				"rescored": result.Rescored,
			}).Info("import finished")
			for _, mismatch := range result.Mismatches {
				app.log.WithFields(logrus.Fields{
					"assessment_id":  mismatch.AssessmentID,
					"stored_score":   mismatch.StoredScore,
					"computed_score": mismatch.ComputedScore,
				}).Warn("stored score differs from computed score")
			}
			for _, dropped := range result.Dropped {
				app.log.WithFields(logrus.Fields{
					"assessment_id": dropped.AssessmentID,
					"legacy_id":     dropped.LegacyID,
					"keys":          dropped.Keys,
				}).Warn("response keys left out of imported assessment")
			}
			return nil
		},
	}
	cmd.Flags().String("in", "", "Legacy JSON dump to import")
	cmd.MarkFlagRequired("in")
	return cmd
}

// newStderrZapLogger keeps driver and usecase logs off stdout, which may
// carry the CSV export.
func newStderrZapLogger(driverConfig *config.DriverConfig) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if level, err := zapcore.ParseLevel(driverConfig.Logger.Level); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(level)
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	zapLogger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return zapLogger
}

// openRepository connects the configured record store.
func (app *cli) openRepository(ctx context.Context) (contracts.AssessmentRepository, func(), error) {
	switch app.internalConfig.App.StoreDriver {
	case config.StoreDriverMongo:
		client := database.NewMongoDB(app.driverConfig, app.zapLog)
		repository := assessments.NewAssessmentMongoRepository(
			client,
			app.driverConfig.MongoDB.DBName,
			app.internalConfig.MongoDB.AssessmentCollection,
			app.internalConfig.MongoDB.CounterCollection,
		)
		return repository, func() {
			if err := client.Disconnect(ctx); err != nil {
				app.log.WithError(err).Warn("error closing MongoDB")
			}
		}, nil
	case config.StoreDriverRedis:
		client := database.NewRedisClient(app.driverConfig, app.zapLog)
		return assessments.NewAssessmentRedisRepository(client), func() {
			if err := client.Close(); err != nil {
				app.log.WithError(err).Warn("error closing Redis")
			}
		}, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", app.internalConfig.App.StoreDriver)
	}
}
