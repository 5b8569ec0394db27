// Package http assembles the HTTP layer: it wires repositories, use cases
// and handlers together and registers all routes on a gin engine.
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	customerUC "github.com/bengkellab/bengkel/internal/application/customer/usecases"
	dashboardUC "github.com/bengkellab/bengkel/internal/application/dashboard/usecases"
	productUC "github.com/bengkellab/bengkel/internal/application/product/usecases"
	purchaseUC "github.com/bengkellab/bengkel/internal/application/purchase/usecases"
	saleUC "github.com/bengkellab/bengkel/internal/application/sale/usecases"
	serviceUC "github.com/bengkellab/bengkel/internal/application/service/usecases"
	userUC "github.com/bengkellab/bengkel/internal/application/user/usecases"
	"github.com/bengkellab/bengkel/internal/infrastructure/auth"
	"github.com/bengkellab/bengkel/internal/infrastructure/config"
	"github.com/bengkellab/bengkel/internal/infrastructure/ratelimit"
	"github.com/bengkellab/bengkel/internal/infrastructure/repository"
	authhandlers "github.com/bengkellab/bengkel/internal/interfaces/http/handlers/auth"
	customerhandlers "github.com/bengkellab/bengkel/internal/interfaces/http/handlers/customer"
	dashboardhandlers "github.com/bengkellab/bengkel/internal/interfaces/http/handlers/dashboard"
	producthandlers "github.com/bengkellab/bengkel/internal/interfaces/http/handlers/product"
	purchasehandlers "github.com/bengkellab/bengkel/internal/interfaces/http/handlers/purchase"
	salehandlers "github.com/bengkellab/bengkel/internal/interfaces/http/handlers/sale"
	servicehandlers "github.com/bengkellab/bengkel/internal/interfaces/http/handlers/service"
	userhandlers "github.com/bengkellab/bengkel/internal/interfaces/http/handlers/user"
	"github.com/bengkellab/bengkel/internal/interfaces/http/middleware"
	"github.com/bengkellab/bengkel/internal/interfaces/http/routes"
	"github.com/bengkellab/bengkel/internal/shared/db"
	"github.com/bengkellab/bengkel/internal/shared/logger"
	"github.com/bengkellab/bengkel/internal/shared/utils"
)

// Router holds the gin engine and the wired handlers.
type Router struct {
	engine         *gin.Engine
	cfg            *config.Config
	authMiddleware *middleware.AuthMiddleware

	authHandler      *authhandlers.AuthHandler
	customerHandler  *customerhandlers.CustomerHandler
	productHandler   *producthandlers.ProductHandler
	serviceHandler   *servicehandlers.ServiceHandler
	saleHandler      *salehandlers.SaleHandler
	purchaseHandler  *purchasehandlers.PurchaseHandler
	userHandler      *userhandlers.UserHandler
	dashboardHandler *dashboardhandlers.DashboardHandler
}

// NewRouter wires repositories, use cases and handlers on top of the given
// database connection.
func NewRouter(database *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	customerRepo := repository.NewCustomerRepository(database)
	productRepo := repository.NewProductRepository(database)
	serviceRepo := repository.NewServiceRepository(database)
	saleRepo := repository.NewSaleRepository(database)
	purchaseRepo := repository.NewPurchaseRepository(database)
	userRepo := repository.NewUserRepository(database)

	txMgr := db.NewTransactionManager(database)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)

	var loginLimiter userUC.LoginRateLimiter
	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		loginLimiter = ratelimit.NewRedisLoginRateLimiter(client, ratelimit.DefaultMaxFailures, ratelimit.DefaultWindow)
	} else {
		loginLimiter = ratelimit.NewMemoryLoginRateLimiter(ratelimit.DefaultMaxFailures, ratelimit.DefaultWindow)
	}

	loginUseCase := userUC.NewLoginUseCase(userRepo, hasher, jwtService, loginLimiter, log)
	getUserUseCase := userUC.NewGetUserUseCase(userRepo, log)
	changePasswordUseCase := userUC.NewChangePasswordUseCase(userRepo, hasher, log)

	authHandler := authhandlers.NewAuthHandler(loginUseCase, getUserUseCase, changePasswordUseCase)

	customerHandler := customerhandlers.NewCustomerHandler(
		customerUC.NewCreateCustomerUseCase(customerRepo, log),
		customerUC.NewUpdateCustomerUseCase(customerRepo, log),
		customerUC.NewDeleteCustomerUseCase(customerRepo, log),
		customerUC.NewGetCustomerUseCase(customerRepo, log),
		customerUC.NewListCustomersUseCase(customerRepo, log),
	)

	productHandler := producthandlers.NewProductHandler(
		productUC.NewCreateProductUseCase(productRepo, log),
		productUC.NewUpdateProductUseCase(productRepo, log),
		productUC.NewDeleteProductUseCase(productRepo, log),
		productUC.NewGetProductUseCase(productRepo, log),
		productUC.NewListProductsUseCase(productRepo, log),
		productUC.NewListLowStockUseCase(productRepo, log),
	)

	serviceHandler := servicehandlers.NewServiceHandler(
		serviceUC.NewCreateServiceUseCase(serviceRepo, customerRepo, userRepo, txMgr, log),
		serviceUC.NewUpdateServiceUseCase(serviceRepo, customerRepo, userRepo, log),
		serviceUC.NewDeleteServiceUseCase(serviceRepo, log),
		serviceUC.NewGetServiceUseCase(serviceRepo, log),
		serviceUC.NewListServicesUseCase(serviceRepo, log),
		serviceUC.NewAddPartUseCase(serviceRepo, productRepo, txMgr, log),
		serviceUC.NewRemovePartUseCase(serviceRepo, productRepo, txMgr, log),
	)

	saleHandler := salehandlers.NewSaleHandler(
		saleUC.NewCreateSaleUseCase(saleRepo, customerRepo, productRepo, txMgr, log),
		saleUC.NewDeleteSaleUseCase(saleRepo, log),
		saleUC.NewGetSaleUseCase(saleRepo, log),
		saleUC.NewListSalesUseCase(saleRepo, log),
		saleUC.NewMarkSalePaidUseCase(saleRepo, log),
		saleUC.NewMarkSaleCancelledUseCase(saleRepo, log),
	)

	purchaseHandler := purchasehandlers.NewPurchaseHandler(
		purchaseUC.NewCreatePurchaseUseCase(purchaseRepo, productRepo, txMgr, log),
		purchaseUC.NewDeletePurchaseUseCase(purchaseRepo, log),
		purchaseUC.NewGetPurchaseUseCase(purchaseRepo, log),
		purchaseUC.NewListPurchasesUseCase(purchaseRepo, log),
		purchaseUC.NewReceivePurchaseUseCase(purchaseRepo, productRepo, txMgr, log),
		purchaseUC.NewCancelPurchaseUseCase(purchaseRepo, log),
	)

	userHandler := userhandlers.NewUserHandler(
		userUC.NewCreateUserUseCase(userRepo, hasher, log),
		userUC.NewUpdateUserUseCase(userRepo, log),
		userUC.NewDeleteUserUseCase(userRepo, log),
		getUserUseCase,
		userUC.NewListUsersUseCase(userRepo, log),
		userUC.NewListTechniciansUseCase(userRepo, log),
	)

	dashboardHandler := dashboardhandlers.NewDashboardHandler(
		dashboardUC.NewGetDashboardUseCase(customerRepo, productRepo, serviceRepo, saleRepo, log),
	)

	return &Router{
		engine:           engine,
		cfg:              cfg,
		authMiddleware:   middleware.NewAuthMiddleware(jwtService, log),
		authHandler:      authHandler,
		customerHandler:  customerHandler,
		productHandler:   productHandler,
		serviceHandler:   serviceHandler,
		saleHandler:      saleHandler,
		purchaseHandler:  purchaseHandler,
		userHandler:      userHandler,
		dashboardHandler: dashboardHandler,
	}
}

// SetupRoutes configures global middleware and registers all route groups.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.Logger(logger.NewLogger()))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", healthCheck)

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:    r.authHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupCustomerRoutes(r.engine, &routes.CustomerRouteConfig{
		CustomerHandler: r.customerHandler,
		AuthMiddleware:  r.authMiddleware,
	})
	routes.SetupProductRoutes(r.engine, &routes.ProductRouteConfig{
		ProductHandler: r.productHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupServiceRoutes(r.engine, &routes.ServiceRouteConfig{
		ServiceHandler: r.serviceHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupSaleRoutes(r.engine, &routes.SaleRouteConfig{
		SaleHandler:    r.saleHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupPurchaseRoutes(r.engine, &routes.PurchaseRouteConfig{
		PurchaseHandler: r.purchaseHandler,
		AuthMiddleware:  r.authMiddleware,
	})
	routes.SetupUserRoutes(r.engine, &routes.UserRouteConfig{
		UserHandler:    r.userHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupDashboardRoutes(r.engine, &routes.DashboardRouteConfig{
		DashboardHandler: r.dashboardHandler,
		AuthMiddleware:   r.authMiddleware,
	})
}

// GetEngine returns the underlying gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

func healthCheck(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"status":    "ok",
		"timestamp": time.Now().Unix(),
	})
}
