// Package command monta a CLI da API com cobra. O comando raiz sobe o
// servidor HTTP; "db" agrupa migração e seed.
//
//	./vivacar [-c config.yaml]            # servidor
//	./vivacar db migrate [-c config.yaml]
//	./vivacar db seed [-c config.yaml]
package command

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/vivacar/internal/config"
	dbpkg "github.com/BruksfildServices01/vivacar/internal/db"
	"github.com/BruksfildServices01/vivacar/internal/infra/cache"
	"github.com/BruksfildServices01/vivacar/internal/infra/storage"
	"github.com/BruksfildServices01/vivacar/internal/logger"
	"github.com/BruksfildServices01/vivacar/internal/routes"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:          "vivacar",
	Short:        "API de locação de veículos",
	SilenceUsage: true,
	RunE:         startWebServer,
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("config.Load(%q): %w", cfgPath, err)
	}
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	return cfg, nil
}

func startWebServer(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

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
	if err := seedDefaultStaff(ctx, cfg, db); err != nil {
		return err
	}

	infra, cleanup, err := buildInfra(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	routes.RegisterRoutes(r, db, cfg, infra)

	logger.Info("server running", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		return fmt.Errorf("running gin engine: %w", err)
	}
	return nil
}

// buildInfra liga Redis e S3 só quando configurados.
func buildInfra(ctx context.Context, cfg *config.Config) (routes.Infra, func(), error) {
	infra := routes.Infra{}
	cleanup := func() {}

	if cfg.Redis.URL != "" {
		client, err := cache.NewRedisClient(ctx, cfg.Redis.URL)
		if err != nil {
			return infra, cleanup, fmt.Errorf("connect redis: %w", err)
		}
		infra.VehicleCache = cache.NewVehicleRedisCache(client, cfg.Redis.TTL)
		cleanup = func() { _ = client.Close() }
		logger.Info("vehicle cache enabled", "ttl", cfg.Redis.TTL.String())
	}

	if cfg.PhotoStorageEnabled() {
		infra.Photos = storage.NewS3PhotoStorage(cfg.Storage)
		logger.Info("photo storage enabled", "bucket", cfg.Storage.Bucket)
	}

	return infra, cleanup, nil
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(fixConfigPath)
	rootCmd.PersistentFlags().StringVarP(
		&cfgPath, "config", "c", "", "config file path",
	)
}

// fixConfigPath usa CONFIG_FILE quando -c não foi passado. Sem nenhum dos
// dois, só defaults e ambiente valem.
func fixConfigPath() {
	if cfgPath != "" {
		return
	}
	cfgPath = os.Getenv("CONFIG_FILE")
}
