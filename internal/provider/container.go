package provider

import (
	"time"

	"github.com/scentlab/scentlab/internal/authz"
	"github.com/scentlab/scentlab/internal/cache"
	"github.com/scentlab/scentlab/internal/config"
	"github.com/scentlab/scentlab/internal/logger"
	"github.com/scentlab/scentlab/internal/models"
	"github.com/scentlab/scentlab/internal/queue"
	"github.com/scentlab/scentlab/internal/repository"
	"github.com/scentlab/scentlab/internal/service"
	"github.com/scentlab/scentlab/internal/shipping"
)

// Container dependency injection container
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	AdminRepo    repository.AdminRepository
	UserRepo     repository.UserRepository
	CategoryRepo repository.CategoryRepository
	ProductRepo  repository.ProductRepository
	ColorRepo    repository.ColorRepository
	SizeRepo     repository.SizeRepository
	ScentRepo    repository.ScentRepository
	CartRepo     repository.CartRepository
	OrderRepo    repository.OrderRepository
	AddressRepo  repository.AddressRepository
	PostRepo     repository.PostRepository
	SettingRepo  repository.SettingRepository

	// Services
	AuthzService    *authz.Service
	AuthService     *service.AuthService
	UserAuthService *service.UserAuthService
	EmailService    *service.EmailService
	CaptchaService  *service.CaptchaService
	UploadService   *service.UploadService
	ProductService  *service.ProductService
	CategoryService *service.CategoryService
	CatalogService  *service.CatalogService
	PostService     *service.PostService
	SettingService  *service.SettingService
	CartService     *service.CartService
	DesignService   *service.DesignService
	AddressService  *service.AddressService
	OrderService    *service.OrderService
}

// NewContainer initializes the container
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
	c.AdminRepo = repository.NewAdminRepository(db)
	c.UserRepo = repository.NewUserRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.ColorRepo = repository.NewColorRepository(db)
	c.SizeRepo = repository.NewSizeRepository(db)
	c.ScentRepo = repository.NewScentRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.AddressRepo = repository.NewAddressRepository(db)
	c.PostRepo = repository.NewPostRepository(db)
	c.SettingRepo = repository.NewSettingRepository(db)
}

func (c *Container) initServices() {
	authzService, err := authz.NewService(models.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		panic(err)
	}
	c.AuthzService = authzService
	if err := c.AuthzService.BootstrapBuiltinRoles(); err != nil {
		logger.Errorw("provider_bootstrap_builtin_roles_failed", "error", err)
		panic(err)
	}

	c.SettingService = service.NewSettingService(c.Config, c.SettingRepo)
	c.EmailService = service.NewEmailService(&c.Config.Email)
	c.CaptchaService = service.NewCaptchaService(c.Config.Captcha)
	c.AuthService = service.NewAuthService(c.Config, c.AdminRepo)
	c.UserAuthService = service.NewUserAuthService(c.Config, c.UserRepo)
	c.UploadService = service.NewUploadService(c.Config)
	c.ProductService = service.NewProductService(c.ProductRepo, c.ColorRepo, c.SizeRepo)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo)
	c.CatalogService = service.NewCatalogService(c.ColorRepo, c.SizeRepo, c.ScentRepo)
	c.PostService = service.NewPostService(c.PostRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo)
	c.DesignService = service.NewDesignService(c.ProductRepo, c.ColorRepo, c.ScentRepo, c.CartService)
	c.AddressService = service.NewAddressService(c.AddressRepo)

	// SettingService doubles as the delivery-zone classifier so the stored
	// keyword override takes effect without a restart.
	c.OrderService = service.NewOrderService(
		c.OrderRepo,
		c.CartRepo,
		c.ProductRepo,
		c.AddressRepo,
		c.SettingService,
		c.shippingSchedule(),
		c.QueueClient,
		c.confirmTTL(),
	)
}

func (c *Container) shippingSchedule() shipping.Schedule {
	schedule := shipping.DefaultSchedule()
	if c.Config.Shipping.ExpressCutoffHour > 0 {
		schedule.ExpressCutoffHour = c.Config.Shipping.ExpressCutoffHour
	}
	if c.Config.Shipping.StandardMinLeadDays > 0 {
		schedule.StandardMinLeadDays = c.Config.Shipping.StandardMinLeadDays
	}
	if c.Config.Shipping.StandardMaxLeadDays > 0 {
		schedule.StandardMaxLeadDays = c.Config.Shipping.StandardMaxLeadDays
	}
	return schedule
}

func (c *Container) confirmTTL() time.Duration {
	minutes := c.Config.Order.ConfirmExpireMinutes
	if minutes <= 0 {
		minutes = 1440
	}
	return time.Duration(minutes) * time.Minute
}
