package cmd

import (
	"ordersvc/internal/adapters/in/bus"
	httpin "ordersvc/internal/adapters/in/http"
	"ordersvc/internal/adapters/out/authority"
	"ordersvc/internal/adapters/out/postgres"
	"ordersvc/internal/core/application/usecases"
	"ordersvc/internal/core/application/usecases/commands"
	"ordersvc/internal/core/application/validation"
	"ordersvc/internal/core/ports"
	"ordersvc/internal/jobs"
	"ordersvc/internal/pkg/msgbus"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// OutboundTopics are the peer topics whose replies the bus client listens for.
var OutboundTopics = []string{
	ports.TopicValidateCoordinator,
	ports.TopicTreatmentPrice,
	ports.TopicProfessionalCost,
	ports.TopicFindProfessional,
}

// CompositionRoot wires the application. Components are created on first use.
type CompositionRoot struct {
	cfg        Config
	logger     *zap.Logger
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory

	busClient *msgbus.Client
	busServer *msgbus.Server
	useCases  usecases.UseCases
}

// NewCompositionRoot creates the root and registers the topic handlers on the bus server.
func NewCompositionRoot(cfg Config, gormDB *gorm.DB, rdb *redis.Client, logger *zap.Logger) *CompositionRoot {
	c := &CompositionRoot{
		cfg:        cfg,
		logger:     logger,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		busClient:  msgbus.NewClient(rdb, logger),
		busServer:  msgbus.NewServer(rdb, logger),
	}
	c.useCases = usecases.New(gormDB, c.UoWFactory(), c.Validator())
	bus.NewHandlers(c.useCases).Register(c.busServer)
	return c
}

// UoWFactory adapts the gorm factory to the unit of work seen by the commands.
func (c *CompositionRoot) UoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

// Validator returns the cross-service validator backed by the bus client.
func (c *CompositionRoot) Validator() *validation.CrossServiceValidator {
	return validation.NewCrossServiceValidator(
		authority.NewCoordinatorClient(c.busClient),
		authority.NewCommunityClient(c.busClient),
		c.cfg.AuthorityTimeout,
		c.logger,
	)
}

// UseCases returns every command and query handler of the service.
func (c *CompositionRoot) UseCases() usecases.UseCases {
	return c.useCases
}

func (c *CompositionRoot) BusClient() *msgbus.Client {
	return c.busClient
}

// BusServer returns the inbound topic server with every handler registered.
func (c *CompositionRoot) BusServer() *msgbus.Server {
	return c.busServer
}

func (c *CompositionRoot) HTTPServer() *httpin.Server {
	return httpin.NewServer(c.useCases, c.logger)
}

func (c *CompositionRoot) OrphanedOrderJob() *jobs.OrphanedOrderJob {
	return jobs.NewOrphanedOrderJob(
		c.useCases.FindOrphanedOrders,
		c.cfg.OrphanSweepSchedule,
		c.cfg.OrphanGracePeriod,
		c.logger,
	)
}

// JobManager returns the manager of the background jobs.
func (c *CompositionRoot) JobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.logger, c.OrphanedOrderJob())
}

// FuncUoWFactory adapts a function to commands.UoWFactory.
type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
