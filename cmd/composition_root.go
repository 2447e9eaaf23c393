package cmd

import (
	"log/slog"

	httpadapter "ordering/internal/adapters/in/http"
	"ordering/internal/adapters/out/postgres"
	"ordering/internal/adapters/out/postgres/catalogrepo"
	"ordering/internal/adapters/out/postgres/customerrepo"
	"ordering/internal/adapters/out/redis/catalogcache"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory ports.UnitOfWorkFactory
	catalog    ports.CatalogReader
	logger     *slog.Logger
}

// NewCompositionRoot wires the catalog reader behind the Redis cache when a client
// is given; a nil client reads the catalog straight from PostgreSQL.
func NewCompositionRoot(configs Config, gormDB *gorm.DB, redisClient *redis.Client, logger *slog.Logger) CompositionRoot {
	var catalog ports.CatalogReader = catalogrepo.NewGormCatalogRepository(gormDB)
	if redisClient != nil {
		catalog = catalogcache.New(catalog, redisClient, configs.CatalogCacheTTL, logger)
	}

	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		catalog:    catalog,
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.catalog, c.orderUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateChangeOrderStateCommandHandler() commands.ChangeOrderStateCommandHandler {
	return commands.NewChangeOrderStateCommandHandler(c.orderUoWFactory(), c.configs.DefaultPaymentMethod, c.logger)
}

func (c *CompositionRoot) CreateLoginCustomerCommandHandler() commands.LoginCustomerCommandHandler {
	return commands.NewLoginCustomerCommandHandler(customerrepo.NewGormCustomerResolver(c.gormDB), c.logger)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRestaurantOrdersQueryHandler() queries.GetRestaurantOrdersQueryHandler {
	return queries.NewGetRestaurantOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderDetailQueryHandler() queries.GetOrderDetailQueryHandler {
	return queries.NewGetOrderDetailQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStateCountsQueryHandler() queries.GetStateCountsQueryHandler {
	return queries.NewGetStateCountsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLastStateQueryHandler() queries.GetLastStateQueryHandler {
	return queries.NewGetLastStateQueryHandler(c.gormDB)
}

// CreateServer builds the HTTP adapter over every use case.
func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		LoginCustomer:    c.CreateLoginCustomerCommandHandler(),
		CreateOrder:      c.CreateCreateOrderCommandHandler(),
		ChangeOrderState: c.CreateChangeOrderStateCommandHandler(),
		CustomerOrders:   c.CreateGetCustomerOrdersQueryHandler(),
		RestaurantOrders: c.CreateGetRestaurantOrdersQueryHandler(),
		OrderDetail:      c.CreateGetOrderDetailQueryHandler(),
		StateCounts:      c.CreateGetStateCountsQueryHandler(),
		LastState:        c.CreateGetLastStateQueryHandler(),
		Restaurants:      c.catalog,
	}, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
