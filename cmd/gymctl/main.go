package main

import (
	"context"
	"fmt"
	"os"

	"github.com/2beens/gymsphere/internal/config"
	"github.com/2beens/gymsphere/internal/db"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	flagEnv        string
	flagConfigPath string
	flagEnvFile    string
	flagVerbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "gymctl",
	Short: "GymSphere maintenance tool",
	Long:  `Database setup, catalog seeding and plan/streak maintenance for GymSphere.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if err := godotenv.Load(flagEnvFile); err != nil {
			log.Debugf("no env file loaded from [%s]: %s", flagEnvFile, err)
		}
		if flagVerbose {
			log.SetLevel(log.DebugLevel)
		}
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagEnv, "env", "development", "environment [prod | production | dev | development]")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "./config.toml", "path for the TOML config file")
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "envfile", ".env", "optional .env file with secrets")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(initDBCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(createAdminCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(streaksCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openPool connects to the postgres instance named in the selected config.
func openPool(ctx context.Context) (*pgxpool.Pool, error) {
	cfg, err := config.Load(flagEnv, flagConfigPath)
	if err != nil {
		return nil, err
	}

	pool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: os.Getenv("GYMSPHERE_DB_PASS"),
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	return pool, nil
}
