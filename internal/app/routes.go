package app

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"

	"github.com/srinjoywork/Module-5/internal/auth"
	"github.com/srinjoywork/Module-5/internal/cache"
	"github.com/srinjoywork/Module-5/internal/config"
	"github.com/srinjoywork/Module-5/internal/handlers"
	"github.com/srinjoywork/Module-5/internal/repo"
	"github.com/srinjoywork/Module-5/internal/service"
	"github.com/srinjoywork/Module-5/internal/validation"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, db *pgxpool.Pool, rdb *redis.Client) {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
		ginSwagger.PersistAuthorization(true),
	))

	api := r.Group("/api/v1")

	// The signing secret and lifetime are injected here, never read from
	// a hidden global; tests construct their own TokenManager.
	tokens := auth.NewTokenManager([]byte(cfg.Auth.JWTSecret), cfg.Auth.TokenTTL.Duration())
	hasher := auth.NewHasher(cfg.Auth.BcryptCost)
	validate := validation.New(validation.Policy{
		NameMinLen:     cfg.Policy.NameMinLen,
		PasswordMinLen: cfg.Policy.PasswordMinLen,
		TitleMinLen:    cfg.Policy.TitleMinLen,
		SubjectMinLen:  cfg.Policy.SubjectMinLen,
		PriorityMin:    cfg.Policy.PriorityMin,
		PriorityMax:    cfg.Policy.PriorityMax,
	})

	accountRepo := repo.NewPGAccountRepo(db)
	accountSvc := service.NewAccountService(accountRepo, hasher, tokens)
	authHandler := handlers.NewAuthHandler(accountSvc, validate)
	registerAuthRoutes(api, authHandler)

	protected := api.Group("", auth.RequireAuth(tokens))
	taskRepo := repo.NewPGTaskRepo(db)
	taskCache := cache.NewTaskCache(rdb, cfg.Redis.DefaultTTL.Duration())
	taskSvc := service.NewTaskService(taskRepo, accountRepo, taskCache, cfg.Policy.PageSize)
	taskHandler := handlers.NewTaskHandler(taskSvc, validate)
	registerTaskRoutes(protected, taskHandler)
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "Task API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
			"api":     "/api/v1",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}

func registerTaskRoutes(api *gin.RouterGroup, h *handlers.TaskHandler) {
	api.POST("/tasks", h.Create)
	api.GET("/tasks", h.List)
	api.GET("/tasks/:id", h.GetByID)
	api.PUT("/tasks/:id", h.Update)
	api.PUT("/tasks/:id/complete", h.ToggleComplete)
	api.DELETE("/tasks/:id", h.Delete)
}

func registerAuthRoutes(api *gin.RouterGroup, h *handlers.AuthHandler) {
	api.POST("/auth/register", h.Register)
	api.POST("/auth/login", h.Login)
}
