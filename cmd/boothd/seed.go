package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/campuslab/printbooth/internal/repo"
	"github.com/campuslab/printbooth/internal/service"
)

var errMissingSeedPassword = errors.New("seed password is required (--password or SEED_MANAGER_PASSWORD)")

// seedCmd ensures the default booth manager exists. Running it twice is
// safe: the second run reports the existing record and writes nothing.
func seedCmd() *cobra.Command {
	var seedPassword string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "create the default booth manager if missing",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			password := seedPassword
			if password == "" {
				password = os.Getenv("SEED_MANAGER_PASSWORD")
			}
			if password == "" {
				return errMissingSeedPassword
			}

			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			client, db, err := openDatabase(ctx, cfg)
			if err != nil {
				return err
			}
			defer func() { _ = client.Disconnect(context.Background()) }()

			managers, err := repo.NewBoothManagerRepository(ctx, db)
			if err != nil {
				return err
			}

			created, m, err := service.EnsureSeedManager(ctx, managers, service.SeedManagerParams{
				Name:          "Central Booth Manager",
				Email:         "manager@printbooth.local",
				Password:      password,
				BoothName:     "Central Booth",
				BoothLocation: "Main Library, Ground Floor",
				BoothCode:     "BOOTH-001",
				PaperCapacity: 500,
				PrinterName:   "Main Printer",
				PrinterModel:  "HP LaserJet Pro M404dn",
			})
			if err != nil {
				return err
			}

			logger := logutil.GetLogger(ctx).With(
				zap.String("email", m.Email),
				zap.String("booth_code", m.BoothCode),
				zap.Int("paper_capacity", m.PaperCapacity),
				zap.Bool("is_active", m.IsActive),
			)
			if created {
				logger.Info("default booth manager created")
			} else {
				logger.Info("default booth manager already exists, nothing to do")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&seedPassword, "password", "", "seed manager password (or SEED_MANAGER_PASSWORD)")
	return cmd
}
