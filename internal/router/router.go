// Package router assembles the HTTP API: middleware, record routes, the
// dashboard, API docs and the static dashboard assets.
package router

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/AlexanderJohnD/WealthWise/internal/config"
	_ "github.com/AlexanderJohnD/WealthWise/internal/docs" // swagger spec
	apperrors "github.com/AlexanderJohnD/WealthWise/internal/errors"
	"github.com/AlexanderJohnD/WealthWise/internal/goals"
	"github.com/AlexanderJohnD/WealthWise/internal/handlers"
	"github.com/AlexanderJohnD/WealthWise/internal/middleware"
	"github.com/AlexanderJohnD/WealthWise/internal/services"
)

// New builds the Gin engine serving the API over db and goalRepo.
func New(cfg *config.Config, db *gorm.DB, goalRepo goals.Repository) *gin.Engine {
	// Services
	accountService := services.NewAccountService(db)
	investmentService := services.NewInvestmentService(db)
	expenseService := services.NewExpenseService(db)
	goalService := services.NewGoalService(goalRepo)
	dashboardService := services.NewDashboardService(db, goalRepo, cfg.MonthlyIncome)

	// Handlers
	accountHandler := handlers.NewAccountHandler(accountService)
	investmentHandler := handlers.NewInvestmentHandler(investmentService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	goalHandler := handlers.NewGoalHandler(goalService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	owned := api.Group("")
	owned.Use(middleware.OwnerResolver(cfg.DefaultOwnerID))

	owned.GET("/accounts", accountHandler.ListAccounts)
	owned.POST("/accounts", accountHandler.CreateAccount)

	owned.GET("/investments", investmentHandler.ListInvestments)
	owned.POST("/investments", investmentHandler.CreateInvestment)

	owned.GET("/expenses", expenseHandler.ListExpenses)
	owned.POST("/expenses", expenseHandler.CreateExpense)

	owned.GET("/dashboard", dashboardHandler.GetDashboard)

	api.GET("/goals", goalHandler.ListGoals)
	api.POST("/goals", goalHandler.CreateGoal)

	router.NoRoute(staticFiles(cfg.StaticDir))

	return router
}

// staticFiles serves the browser dashboard from dir, with / mapped to
// index.html. Unknown API paths and missing files are reported as NOT_FOUND
// for the error middleware to render.
func staticFiles(dir string) gin.HandlerFunc {
	fileServer := http.FileServer(gin.Dir(dir, false))

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		servable := c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead
		if servable && dir != "" && !strings.HasPrefix(path, "/api/") && exists(dir, path) {
			fileServer.ServeHTTP(c.Writer, c.Request)
			return
		}

		_ = c.Error(apperrors.ErrNotFound)
	}
}

func exists(dir, urlPath string) bool {
	name := filepath.Join(dir, filepath.FromSlash(filepath.Clean("/"+urlPath)))
	info, err := os.Stat(name)
	if err != nil {
		return false
	}
	if info.IsDir() {
		_, err = os.Stat(filepath.Join(name, "index.html"))
		return err == nil
	}
	return true
}
