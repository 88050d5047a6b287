package main

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-weighing-service/config"
	"github.com/fekuna/omnipos-weighing-service/internal/database"
	"github.com/fekuna/omnipos-weighing-service/internal/i18n"
	"github.com/fekuna/omnipos-weighing-service/internal/logger"
	"github.com/fekuna/omnipos-weighing-service/internal/record"
	recRepoPkg "github.com/fekuna/omnipos-weighing-service/internal/record/repository"
	recUCPkg "github.com/fekuna/omnipos-weighing-service/internal/record/usecase"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// annotationStore marks subcommands that read or write the record store. Only
// those open the SQLite file.
const annotationStore = "weighctl/store"

// needsStore marks cmd as one that uses a.uc.
func needsStore(cmd *cobra.Command) *cobra.Command {
	if cmd.Annotations == nil {
		cmd.Annotations = map[string]string{}
	}
	cmd.Annotations[annotationStore] = "true"
	return cmd
}

// app is the wiring shared by every subcommand. It is built in the root
// PersistentPreRunE; the caller of Execute owns close.
type app struct {
	cfg       *config.Config
	logger    logger.ZapLogger
	db        *sqlx.DB
	uc        record.UseCase
	localizer *i18n.Localizer

	lang    string
	verbose bool
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "weighctl",
		Short: "Record and report produce weighings",
		Long: `weighctl records weighed batches of produce, one running record per
(product, packaging type), and exports filtered reports.

Configuration is read from the environment (and a .env file if present);
see SQLITE_PATH, REPORT_OUTPUT_DIR and BULK_DELETE_PASSWORD.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(); err != nil {
				return err
			}
			if cmd.Annotations[annotationStore] != "true" {
				return nil
			}
			return a.openStore(cmd.Context())
		},
	}

	root.PersistentFlags().StringVar(&a.lang, "lang", "", "message language (defaults to APP_LOCALE)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log to stderr")

	root.AddCommand(
		newCatalogCmd(a),
		needsStore(newSubmitCmd(a)),
		needsStore(newListCmd(a)),
		newExportCmd(a),
		needsStore(newDeleteCmd(a)),
		needsStore(newPurgeCmd(a)),
		newCalcCmd(a),
	)
	return root
}

// setup loads configuration, the logger and the localizer.
func (a *app) setup() error {
	a.cfg = config.LoadEnv()

	a.logger = logger.NewNop()
	if a.verbose {
		a.logger = logger.NewZapLogger(&logger.ZapLoggerConfig{
			IsDevelopment:     true,
			Encoding:          "console",
			Level:             a.cfg.Logger.Level,
			DisableCaller:     a.cfg.Logger.DisableCaller,
			DisableStacktrace: a.cfg.Logger.DisableStacktrace,
		})
	}

	bundle, err := i18n.NewBundle()
	if err != nil {
		return err
	}
	lang := a.lang
	if lang == "" {
		lang = a.cfg.Server.Locale
	}
	a.localizer = bundle.Localizer(lang)
	return nil
}

// openStore opens the SQLite file, creating the schema if needed, and builds
// the record usecase on top of it.
func (a *app) openStore(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	db, err := database.NewSQLite(&database.Config{
		Path:          a.cfg.SQLite.Path,
		BusyTimeoutMS: a.cfg.SQLite.BusyTimeoutMS,
		JournalMode:   a.cfg.SQLite.JournalMode,
	})
	if err != nil {
		return err
	}
	a.db = db

	repo := recRepoPkg.NewSQLiteRepository(db)
	initCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := repo.Initialize(initCtx); err != nil {
		return err
	}

	a.uc = recUCPkg.NewRecordUseCase(repo, recUCPkg.Options{
		ReportDir:          a.cfg.Report.OutputDir,
		TextFileName:       a.cfg.Report.TextFileName,
		PDFFileName:        a.cfg.Report.PDFFileName,
		BulkDeletePassword: a.cfg.Security.BulkDeletePassword,
	}, a.logger)

	a.logger.Debug("weighctl ready", zap.String("db", a.cfg.SQLite.Path))
	return nil
}

func (a *app) close() error {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	if a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db = nil
	return err
}
