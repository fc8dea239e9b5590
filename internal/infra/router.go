package infra

import (
	"context"
	"net/http"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"
	_ "github.com/umalmyha/crm/docs" // swagger spec
	"github.com/umalmyha/crm/internal/auth"
	"github.com/umalmyha/crm/internal/cache"
	"github.com/umalmyha/crm/internal/config"
	"github.com/umalmyha/crm/internal/handlers"
	"github.com/umalmyha/crm/internal/middleware"
	"github.com/umalmyha/crm/internal/pages"
	"github.com/umalmyha/crm/internal/repository"
	"github.com/umalmyha/crm/internal/service"
	"github.com/umalmyha/crm/internal/validation"
	"github.com/umalmyha/crm/pkg/db/transactor"
	"github.com/umalmyha/crm/web"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const csrfFormField = "_csrf"

// Datastores are connections used by application, Mongo is required only by mongo storage driver
type Datastores struct {
	Postgres *pgxpool.Pool
	Mongo    *mongo.Client
	Redis    *redis.Client
}

type crmRepositories struct {
	customers    repository.CustomerRepository
	interactions repository.InteractionRepository
	followups    repository.FollowupRepository
}

func storage(cfg *config.Config, ds Datastores) crmRepositories {
	if cfg.StorageCfg.Driver == config.StorageDriverMongo {
		db := ds.Mongo.Database(cfg.MongoCfg.Database)
		return crmRepositories{
			customers:    repository.NewMongoCustomerRepository(db),
			interactions: repository.NewMongoInteractionRepository(db),
			followups:    repository.NewMongoFollowupRepository(db),
		}
	}

	return crmRepositories{
		customers:    repository.NewPostgresCustomerRepository(ds.Postgres),
		interactions: repository.NewPostgresInteractionRepository(ds.Postgres),
		followups:    repository.NewPostgresFollowupRepository(ds.Postgres),
	}
}

// Router wires application and registers pages, api and service routes
func Router(cfg *config.Config, ds Datastores, o *Observability) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handlers.ErrorHandler

	v, err := validation.New()
	if err != nil {
		return nil, err
	}
	e.Validator = v

	renderer, err := handlers.NewTemplateRenderer(web.Templates)
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer

	// Configs
	jwtCfg := cfg.AuthCfg.JwtCfg
	rfrTokenCfg := cfg.AuthCfg.RefreshTokenCfg
	cookieCfg := cfg.AuthCfg.CookieCfg

	// Transactors
	trx := transactor.NewPgxTransactor(ds.Postgres)

	// Extra functionality
	jwtIssuer := auth.NewJwtIssuer(jwtCfg.Issuer, jwtCfg.SigningMethod, jwtCfg.TimeToLive, jwtCfg.PrivateKey)
	jwtValidator := auth.NewJwtValidator(jwtCfg.SigningMethod, jwtCfg.PublicKey)
	rfrTokenIssuer := auth.NewRefreshTokenIssuer(rfrTokenCfg.MaxCount, rfrTokenCfg.TimeToLive)

	// Repositories
	userRps := repository.NewPostgresUserRepository(trx)
	rfrTokenRps := repository.NewPostgresRefreshTokenRepository(trx)
	crmRps := storage(cfg, ds)
	customerCache := cache.NewRedisCustomerCache(ds.Redis)

	// Services
	authSvc := service.NewAuthService(jwtIssuer, rfrTokenIssuer, trx, userRps, rfrTokenRps)
	customerSvc := service.NewCustomerService(crmRps.customers, customerCache)
	interactionSvc := service.NewInteractionService(customerSvc, crmRps.interactions)
	followupSvc := service.NewFollowupService(customerSvc, crmRps.followups)
	dashboardSvc := service.NewDashboardService(customerSvc, followupSvc)

	// Pages
	pagesHandler := handlers.NewPagesHTTPHandler(
		pages.NewAuthPages(authSvc, v, pages.UTCClock),
		pages.NewDashboardPage(dashboardSvc, pages.UTCClock),
		pages.NewCustomersPage(customerSvc),
		pages.NewAddCustomerPage(authSvc, customerSvc, v),
		pages.NewCustomerDetailsPage(customerSvc, interactionSvc, followupSvc, pages.UTCClock),
		cookieCfg,
	)

	// Handlers
	authHandler := handlers.NewAuthHTTPHandler(authSvc)
	customerHandler := handlers.NewCustomerHTTPHandler(customerSvc)
	activityHandler := handlers.NewActivityHTTPHandler(interactionSvc, followupSvc)
	dashboardHandler := handlers.NewDashboardHTTPHandler(dashboardSvc)
	healthHandler := handlers.NewHealthHTTPHandler(pingers(cfg, ds))

	// Middleware
	e.Use(
		echomw.Recover(),
		echomw.RequestID(),
		middleware.Tracing(cfg.TelemetryCfg.ServiceName),
		middleware.Logging(o.Logger),
		middleware.Metrics(o.Registry),
	)
	authorizeMw := middleware.Authorize(jwtValidator)
	sessionMw := middleware.RequireSession(jwtValidator, authSvc, cookieCfg)
	csrfMw := echomw.CSRFWithConfig(echomw.CSRFConfig{
		TokenLookup:    "form:" + csrfFormField,
		CookiePath:     "/",
		CookieHTTPOnly: true,
		CookieSecure:   cookieCfg.Secure,
		CookieSameSite: http.SameSiteLaxMode,
	})

	// Service routes
	e.GET("/healthz", healthHandler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(o.Registry, promhttp.HandlerOpts{})))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Pages
	site := e.Group("", csrfMw)
	site.GET("/", pagesHandler.Root)
	site.GET("/signup", pagesHandler.SignupPage)
	site.POST("/signup", pagesHandler.Signup)
	site.GET("/login", pagesHandler.LoginPage)
	site.POST("/login", pagesHandler.Login)
	site.POST("/logout", pagesHandler.Logout)

	guarded := site.Group("", sessionMw)
	guarded.GET("/dashboard", pagesHandler.Dashboard)
	guarded.GET("/customers", pagesHandler.Customers)
	guarded.POST("/customers/:id/status", pagesHandler.UpdateCustomersStatus)
	guarded.GET("/add-customer", pagesHandler.AddCustomerPage)
	guarded.POST("/add-customer", pagesHandler.AddCustomer)
	guarded.GET("/customer/:id", pagesHandler.CustomerDetails)
	guarded.POST("/customer/:id/status", pagesHandler.ChangeCustomerStatus)
	guarded.POST("/customer/:id/interactions", pagesHandler.AddInteraction)
	guarded.POST("/customer/:id/followups", pagesHandler.AddFollowup)
	guarded.POST("/customer/:id/followups/:followupId/complete", pagesHandler.CompleteFollowup)

	// API routes
	api := e.Group("/api")

	// auth
	authAPI := api.Group("/auth")
	authAPI.POST("/signup", authHandler.Signup)
	authAPI.POST("/login", authHandler.Login)
	authAPI.POST("/logout", authHandler.Logout)
	authAPI.POST("/refresh", authHandler.Refresh)
	authAPI.GET("/user", authHandler.User, authorizeMw)

	// customers
	customersAPI := api.Group("/customers", authorizeMw)
	customersAPI.GET("", customerHandler.GetAll)
	customersAPI.POST("", customerHandler.Post)
	customersAPI.GET("/:id", customerHandler.Get)
	customersAPI.PATCH("/:id/status", customerHandler.PatchStatus)
	customersAPI.GET("/:id/interactions", activityHandler.GetInteractions)
	customersAPI.POST("/:id/interactions", activityHandler.PostInteraction)
	customersAPI.GET("/:id/followups", activityHandler.GetFollowups)
	customersAPI.POST("/:id/followups", activityHandler.PostFollowup)

	// follow-ups
	followupsAPI := api.Group("/followups", authorizeMw)
	followupsAPI.PATCH("/:id/complete", activityHandler.CompleteFollowup)

	// dashboard
	api.GET("/dashboard", dashboardHandler.Get, authorizeMw)

	return e, nil
}

func pingers(cfg *config.Config, ds Datastores) map[string]handlers.Pinger {
	p := map[string]handlers.Pinger{
		"postgres": ds.Postgres.Ping,
		"redis": func(ctx context.Context) error {
			return ds.Redis.Ping(ctx).Err()
		},
	}

	if cfg.StorageCfg.Driver == config.StorageDriverMongo {
		p["mongo"] = func(ctx context.Context) error {
			return ds.Mongo.Ping(ctx, readpref.Primary())
		}
	}
	return p
}
