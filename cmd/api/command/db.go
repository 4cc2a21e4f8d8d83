package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/vivacar/internal/config"
	dbpkg "github.com/BruksfildServices01/vivacar/internal/db"
	infraRepo "github.com/BruksfildServices01/vivacar/internal/infra/repository"
	"github.com/BruksfildServices01/vivacar/internal/logger"
	ucAccount "github.com/BruksfildServices01/vivacar/internal/usecase/account"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Database management actions",
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the tables",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		db, err := dbpkg.NewDB(cfg)
		if err != nil {
			return err
		}
		defer dbpkg.Close(db)

		if err := dbpkg.Migrate(db); err != nil {
			return err
		}
		logger.Info("migration finished")
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the default staff account if missing",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		db, err := dbpkg.NewDB(cfg)
		if err != nil {
			return err
		}
		defer dbpkg.Close(db)

		if err := dbpkg.Migrate(db); err != nil {
			return err
		}
		return seedDefaultStaff(cmd.Context(), cfg, db)
	},
}

func seedDefaultStaff(ctx context.Context, cfg *config.Config, db *gorm.DB) error {
	staff := cfg.DefaultStaff
	acc, created, err := ucAccount.NewEnsureDefaultStaff(
		infraRepo.NewAccountGormRepository(db),
	).Execute(ctx, staff.Email, staff.CPF, staff.Password)
	if err != nil {
		return fmt.Errorf("seed default staff: %w", err)
	}

	logger.Info("default staff ready", "account_id", acc.ID, "created", created)
	return nil
}

func init() {
	dbCmd.AddCommand(migrateCmd, seedCmd)
	rootCmd.AddCommand(dbCmd)
}
