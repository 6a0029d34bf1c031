package provider

import (
	"github.com/gauravjat135/galaxy-medical-store/internal/cache"
	"github.com/gauravjat135/galaxy-medical-store/internal/config"
	"github.com/gauravjat135/galaxy-medical-store/internal/logger"
	"github.com/gauravjat135/galaxy-medical-store/internal/models"
	"github.com/gauravjat135/galaxy-medical-store/internal/queue"
	"github.com/gauravjat135/galaxy-medical-store/internal/repository"
	"github.com/gauravjat135/galaxy-medical-store/internal/service"
)

// Container wires repositories and services once at startup.
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	ProductRepo  repository.ProductRepository
	CartRepo     repository.CartRepository
	OrderRepo    repository.OrderRepository
	EmployeeRepo repository.EmployeeRepository
	ReportRepo   repository.ReportRepository

	// Services
	InventoryService *service.InventoryService
	ProductService   *service.ProductService
	CartService      *service.CartService
	CheckoutService  *service.CheckoutService
	OrderService     *service.OrderService
	EmployeeService  *service.EmployeeService
	ReportService    *service.ReportService
}

// NewContainer initializes the container.
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.ProductRepo = repository.NewProductRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.EmployeeRepo = repository.NewEmployeeRepository(db)
	c.ReportRepo = repository.NewReportRepository(db)
}

func (c *Container) initServices() {
	order := c.Config.Order
	c.InventoryService = service.NewInventoryService(c.ProductRepo)
	c.ProductService = service.NewProductService(c.ProductRepo, c.InventoryService, order.CatalogCacheSeconds)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo)
	c.CheckoutService = service.NewCheckoutService(c.CartRepo, c.ProductRepo, c.OrderRepo, c.InventoryService, c.QueueClient, order.CommitTimeoutSeconds, order.AutoCancelMinutes, order.LowStockThreshold)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.ProductRepo)
	c.EmployeeService = service.NewEmployeeService(c.EmployeeRepo)
	c.ReportService = service.NewReportService(c.ReportRepo, order.LowStockThreshold)
}
