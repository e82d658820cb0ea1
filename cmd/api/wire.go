package main

import (
	"context"
	"fmt"
	"time"

	"github.com/vrentals-api/internal/config"
	"github.com/vrentals-api/internal/infrastructure/dynamo"
	mongoinfra "github.com/vrentals-api/internal/infrastructure/mongo"
	"github.com/vrentals-api/internal/infrastructure/smtp"
	"github.com/vrentals-api/internal/infrastructure/sns"
	transporthttp "github.com/vrentals-api/internal/transport/http"
)

type repositories struct {
	users      transporthttp.UserRepository
	listings   transporthttp.ListingRepository
	resetCodes transporthttp.ResetCodeRepository
}

// openStore connects the configured document store and returns its
// repositories plus a function releasing the connection.
func openStore(ctx context.Context, cfg *config.Config) (*repositories, func(), error) {
	switch cfg.StoreDriver {
	case config.StoreMongo:
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		client, err := mongoinfra.Connect(connectCtx, cfg.MongoURI)
		if err != nil {
			return nil, nil, err
		}
		db := client.Database(cfg.MongoDatabase)
		if err := mongoinfra.EnsureIndexes(connectCtx, db); err != nil {
			_ = client.Disconnect(ctx)
			return nil, nil, err
		}
		closeFn := func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(disconnectCtx)
		}
		return &repositories{
			users:      mongoinfra.NewUserRepo(db),
			listings:   mongoinfra.NewListingRepo(db),
			resetCodes: mongoinfra.NewResetCodeRepo(db),
		}, closeFn, nil

	case config.StoreDynamo:
		client, err := dynamo.NewClient(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		dynamo.Bootstrap(ctx, client, cfg.DynamoTables)
		return &repositories{
			users:      dynamo.NewUserRepo(client, cfg.DynamoTables.Users),
			listings:   dynamo.NewListingRepo(client, cfg.DynamoTables.Listings),
			resetCodes: dynamo.NewResetCodeRepo(client, cfg.DynamoTables.ResetCodes),
		}, func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}

func newMailer(ctx context.Context, cfg *config.Config) (transporthttp.Mailer, error) {
	switch cfg.NotifyChannel {
	case config.NotifySNS:
		sender, err := sns.NewEmailSender(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return sender, nil
	case config.NotifySMTP:
		return smtp.NewMailer(cfg), nil
	}
	return nil, fmt.Errorf("unknown notify channel %q", cfg.NotifyChannel)
}
