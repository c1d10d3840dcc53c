package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logutil"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"
)

// dbcheckCmd is a one-shot connectivity smoke test. It exits non-zero
// when the store cannot be reached.
func dbcheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dbcheck",
		Short: "verify database connectivity",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			logger := logutil.GetLogger(ctx)
			logger.Info("checking database connectivity", zap.String("database", cfg.MongoDatabase))

			client, db, err := openDatabase(ctx, cfg)
			if err != nil {
				return err
			}
			defer func() { _ = client.Disconnect(context.Background()) }()

			names, err := db.ListCollectionNames(ctx, bson.M{})
			if err != nil {
				return err
			}
			logger.Info("connected", zap.Strings("collections", names))
			for _, name := range names {
				count, err := db.Collection(name).CountDocuments(ctx, bson.M{})
				if err != nil {
					return err
				}
				logger.Info("collection", zap.String("name", name), zap.Int64("documents", count))
			}
			return nil
		},
	}
}
