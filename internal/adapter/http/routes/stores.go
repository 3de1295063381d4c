package routes

import (
	"cleanlyquote/internal/adapter/persistence/postgres"
	"cleanlyquote/internal/adapter/persistence/repository"
	"cleanlyquote/internal/config"
	"cleanlyquote/internal/infrastructure/database"
	"cleanlyquote/internal/usecase/interfaces"
	"context"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

type stores struct {
	quotes     interfaces.IQuoteRepository
	tenants    interfaces.ITenantRepository
	checklists interfaces.IQuoteChecklistRepository
	clients    interfaces.IClientRepository
	team       interfaces.ITeamMemberRepository
	templates  interfaces.IChecklistTemplateRepository
	close      func() error
}

// openStores selects the persistence backend named by STORE_DRIVER.
func openStores(ctx context.Context, cfg config.Config, logr *zap.SugaredLogger) (stores, error) {
	switch cfg.Store.Driver {
	case config.StorePostgres:
		db, err := database.ConnectPostgres(ctx, cfg.Store.DatabaseURL)
		if err != nil {
			return stores{}, errors.Wrap(err, "postgres")
		}
		if err := postgres.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return stores{}, errors.Wrap(err, "postgres migrate")
		}
		logr.Infow("[http][server] using postgres store")
		return stores{
			quotes:     postgres.NewQuoteRepository(db),
			tenants:    postgres.NewTenantRepository(db),
			checklists: postgres.NewQuoteChecklistRepository(db),
			clients:    postgres.NewClientRepository(db),
			team:       postgres.NewTeamMemberRepository(db),
			templates:  postgres.NewChecklistTemplateRepository(db),
			close:      db.Close,
		}, nil
	default:
		ddb, err := database.ConnectDynamoDB(ctx, database.DynamoDBSettings{
			Region:   cfg.AWS.Region,
			Endpoint: cfg.AWS.DynamoDBEndpoint,
		})
		if err != nil {
			return stores{}, errors.Wrap(err, "dynamodb")
		}
		tables := repository.Tables{
			Tenants:            cfg.AWS.TenantsTable,
			Quotes:             cfg.AWS.QuotesTable,
			Checklists:         cfg.AWS.ChecklistsTable,
			Clients:            cfg.AWS.ClientsTable,
			TeamMembers:        cfg.AWS.TeamMembersTable,
			ChecklistTemplates: cfg.AWS.ChecklistTemplatesTable,
		}
		logr.Infow("[http][server] using dynamodb store", "region", cfg.AWS.Region, "endpoint", cfg.AWS.DynamoDBEndpoint)
		return stores{
			quotes:     repository.NewQuoteDynamoRepository(ddb, tables),
			tenants:    repository.NewTenantDynamoRepository(ddb, tables),
			checklists: repository.NewQuoteChecklistDynamoRepository(ddb, tables),
			clients:    repository.NewClientDynamoRepository(ddb, tables),
			team:       repository.NewTeamMemberDynamoRepository(ddb, tables),
			templates:  repository.NewChecklistTemplateDynamoRepository(ddb, tables),
			close:      func() error { return nil },
		}, nil
	}
}
