package cmd

import (
	"github.com/spf13/cobra"
	"github.com/turmab/helpdesk/internal/adapter/database"
	"github.com/turmab/helpdesk/internal/logging"
	"github.com/turmab/helpdesk/pkg/config"
	gormlogger "gorm.io/gorm/logger"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Aplica o schema e as migrações SQL pendentes",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		logger := logging.NewLogger(cfg.Logging)
		defer func() { _ = logger.Sync() }()

		db, err := database.NewDatabase(cmd.Context(), database.Config{
			Driver:          cfg.Database.Driver,
			DSN:             cfg.Database.DSN,
			MaxIdleConns:    cfg.Database.MaxIdleConns,
			MaxOpenConns:    cfg.Database.MaxOpenConns,
			ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
			LogLevel:        gormlogger.Warn,
			SlowThreshold:   cfg.Database.SlowThreshold,
			MigrationDir:    cfg.Database.MigrationDir,
			SkipMigrations:  true,
		}, logger)
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()

		if err := db.Migrate(cmd.Context()); err != nil {
			return err
		}
		logger.Info("migrações aplicadas")
		return nil
	},
}
