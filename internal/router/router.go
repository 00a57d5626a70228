package router

import (
	"fmt"
	"sort"
	"strings"

	"github.com/scentlab/scentlab/internal/authz"
	"github.com/scentlab/scentlab/internal/cache"
	"github.com/scentlab/scentlab/internal/config"
	adminhandlers "github.com/scentlab/scentlab/internal/http/handlers/admin"
	publichandlers "github.com/scentlab/scentlab/internal/http/handlers/public"
	"github.com/scentlab/scentlab/internal/http/response"
	"github.com/scentlab/scentlab/internal/logger"
	"github.com/scentlab/scentlab/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter wires the storefront and back-office API
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "sl"
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.LoginRateLimit.BlockSeconds,
		MessageKey:    "error.rate_limit_wait",
	}
	adminLoginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:admin_login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.LoginRateLimit.BlockSeconds,
		MessageKey:    "error.rate_limit_wait",
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// uploaded images
	r.Static("/uploads", "./uploads")

	apiV1 := r.Group("/api/v1")
	{
		// storefront, no auth
		public := apiV1.Group("/public")
		{
			public.GET("/config", publicHandler.GetConfig)
			public.GET("/categories", publicHandler.GetCategories)
			public.GET("/products", publicHandler.GetProducts)
			public.GET("/products/:slug", publicHandler.GetProductBySlug)
			public.GET("/posts", publicHandler.GetPosts)
			public.GET("/posts/:slug", publicHandler.GetPostBySlug)
			public.GET("/design/options", publicHandler.GetDesignOptions)
			public.POST("/design/quote", publicHandler.QuoteDesign)
			public.GET("/captcha/image", publicHandler.GetImageCaptcha)
		}

		// account endpoints
		auth := apiV1.Group("/auth")
		{
			auth.POST("/register", publicHandler.Register)
			auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("email")), publicHandler.Login)
		}

		// signed-in user endpoints
		user := apiV1.Group("")
		user.Use(UserJWTAuthMiddleware(cfg.UserJWT.SecretKey, c.UserRepo))
		{
			user.GET("/me", publicHandler.GetCurrentUser)
			user.PUT("/me/profile", publicHandler.UpdateProfile)
			user.PUT("/me/password", publicHandler.ChangePassword)

			user.GET("/me/addresses", publicHandler.ListAddresses)
			user.POST("/me/addresses", publicHandler.CreateAddress)
			user.PUT("/me/addresses/:id", publicHandler.UpdateAddress)
			user.DELETE("/me/addresses/:id", publicHandler.DeleteAddress)
			user.POST("/me/addresses/:id/default", publicHandler.SetDefaultAddress)

			user.GET("/cart", publicHandler.GetCart)
			user.POST("/cart/items", publicHandler.AddCartItem)
			user.PATCH("/cart/items", publicHandler.UpdateCartQuantity)
			user.DELETE("/cart/items/:product_id", publicHandler.RemoveCartItem)
			user.DELETE("/cart", publicHandler.ClearCart)

			user.POST("/design/cart", publicHandler.AddDesignToCart)
			user.POST("/design/upload", publicHandler.UploadDesignImage)

			user.POST("/shipping/estimate", publicHandler.EstimateShipping)
			user.POST("/checkout/preview", publicHandler.PreviewCheckout)
			user.POST("/orders", publicHandler.Checkout)
			user.GET("/orders", publicHandler.ListMyOrders)
			user.GET("/orders/:order_no", publicHandler.GetMyOrder)
			user.POST("/orders/:order_no/cancel", publicHandler.CancelMyOrder)
		}

		// back office
		admin := apiV1.Group("/admin")
		{
			admin.POST("/login", RateLimitMiddleware(redisClient, adminLoginRule, KeyByIP), adminHandler.Login)

			authed := admin.Group("")
			authed.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.AdminRepo))
			{
				// own account, no RBAC check
				authed.GET("/me", adminHandler.Me)
				authed.PUT("/password", adminHandler.ChangePassword)
			}

			authorized := authed.Group("")
			authorized.Use(AdminRBACMiddleware(c.AuthzService))
			{
				authorized.GET("/products", adminHandler.ListProducts)
				authorized.GET("/products/:id", adminHandler.GetProduct)
				authorized.POST("/products", adminHandler.CreateProduct)
				authorized.PUT("/products/:id", adminHandler.UpdateProduct)
				authorized.PATCH("/products/:id", adminHandler.SetProductActive)
				authorized.DELETE("/products/:id", adminHandler.DeleteProduct)

				authorized.GET("/categories", adminHandler.ListCategories)
				authorized.POST("/categories", adminHandler.CreateCategory)
				authorized.PUT("/categories/:id", adminHandler.UpdateCategory)
				authorized.DELETE("/categories/:id", adminHandler.DeleteCategory)

				authorized.GET("/colors", adminHandler.ListColors)
				authorized.POST("/colors", adminHandler.CreateColor)
				authorized.PUT("/colors/:id", adminHandler.UpdateColor)
				authorized.DELETE("/colors/:id", adminHandler.DeleteColor)

				authorized.GET("/sizes", adminHandler.ListSizes)
				authorized.POST("/sizes", adminHandler.CreateSize)
				authorized.PUT("/sizes/:id", adminHandler.UpdateSize)
				authorized.DELETE("/sizes/:id", adminHandler.DeleteSize)

				authorized.GET("/scents", adminHandler.ListScents)
				authorized.POST("/scents", adminHandler.CreateScent)
				authorized.PUT("/scents/:id", adminHandler.UpdateScent)
				authorized.DELETE("/scents/:id", adminHandler.DeleteScent)

				authorized.GET("/posts", adminHandler.ListPosts)
				authorized.GET("/posts/:id", adminHandler.GetPost)
				authorized.POST("/posts", adminHandler.CreatePost)
				authorized.PUT("/posts/:id", adminHandler.UpdatePost)
				authorized.DELETE("/posts/:id", adminHandler.DeletePost)

				authorized.GET("/settings", adminHandler.ListSettings)
				authorized.PUT("/settings", adminHandler.UpdateSettings)

				authorized.POST("/upload", adminHandler.Upload)

				authorized.GET("/orders", adminHandler.ListOrders)
				authorized.GET("/orders/:id", adminHandler.GetOrder)
				authorized.PATCH("/orders/:id/status", adminHandler.SetOrderStatus)

				authorized.GET("/users", adminHandler.ListUsers)
				authorized.GET("/users/:id", adminHandler.GetUser)
				authorized.PATCH("/users/:id/status", adminHandler.SetUserStatus)

				// account and role management; write actions reach super admins only
				authorized.GET("/admins", adminHandler.ListAdmins)
				authorized.POST("/admins", adminHandler.CreateAdmin)
				authorized.PUT("/admins/:id", adminHandler.UpdateAdmin)
				authorized.DELETE("/admins/:id", adminHandler.DeleteAdmin)

				authorized.GET("/roles", adminHandler.ListRoles)
				authorized.POST("/roles", adminHandler.CreateRole)
				authorized.DELETE("/roles/:name", adminHandler.DeleteRole)
				authorized.GET("/roles/:name/policies", adminHandler.GetRolePolicies)
				authorized.POST("/roles/:name/policies", adminHandler.GrantRolePolicy)
				authorized.DELETE("/roles/:name/policies", adminHandler.RevokeRolePolicy)

				authorized.GET("/permissions/catalog", func(ctx *gin.Context) {
					response.Success(ctx, buildAdminPermissionCatalog(r))
				})
			}
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}

type adminPermissionCatalogItem struct {
	Module     string `json:"module"`
	Method     string `json:"method"`
	Object     string `json:"object"`
	Permission string `json:"permission"`
}

func buildAdminPermissionCatalog(engine *gin.Engine) []adminPermissionCatalogItem {
	if engine == nil {
		return []adminPermissionCatalogItem{}
	}

	routes := engine.Routes()
	seen := make(map[string]struct{}, len(routes))
	items := make([]adminPermissionCatalogItem, 0, len(routes))

	for _, item := range routes {
		method := strings.ToUpper(strings.TrimSpace(item.Method))
		if method == "" || method == "OPTIONS" || method == "HEAD" {
			continue
		}
		if !strings.HasPrefix(item.Path, "/api/v1/admin/") {
			continue
		}
		if item.Path == "/api/v1/admin/login" {
			continue
		}
		object := authz.NormalizeObject(item.Path)
		permission := method + ":" + object
		if _, exists := seen[permission]; exists {
			continue
		}
		seen[permission] = struct{}{}
		items = append(items, adminPermissionCatalogItem{
			Module:     deriveAdminPermissionModule(object),
			Method:     method,
			Object:     object,
			Permission: permission,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Module == items[j].Module {
			if items[i].Object == items[j].Object {
				return items[i].Method < items[j].Method
			}
			return items[i].Object < items[j].Object
		}
		return items[i].Module < items[j].Module
	})

	return items
}

func deriveAdminPermissionModule(object string) string {
	normalized := strings.TrimPrefix(strings.TrimSpace(object), "/")
	if normalized == "" {
		return "system"
	}
	segments := strings.Split(normalized, "/")
	if len(segments) <= 1 {
		return segments[0]
	}
	if segments[0] != "admin" {
		return segments[0]
	}
	return segments[1]
}
