package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"budgetly/internal/metrics"
	"budgetly/internal/middleware"
	"budgetly/internal/services"
)

// RouterConfig carries everything the HTTP surface depends on.
type RouterConfig struct {
	Expenses services.ExpenseServicer
	Budgets  services.BudgetServicer
	Insights services.InsightServicer
	Metrics  *metrics.Metrics
	Location *time.Location
	// Swagger serves the API docs under /swagger when set.
	Swagger bool
}

// NewRouter builds the gin engine with middleware and every route.
func NewRouter(cfg RouterConfig) *gin.Engine {
	expenseHandler := NewExpenseHandler(cfg.Expenses)
	budgetHandler := NewBudgetHandler(cfg.Budgets)
	insightHandler := NewInsightHandler(cfg.Insights, cfg.Location)

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogging(cfg.Metrics))
	router.Use(middleware.ErrorHandler())
	router.NoRoute(middleware.NotFound())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	if cfg.Swagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
	if cfg.Metrics != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(cfg.Metrics.Registry, promhttp.HandlerOpts{})))
	}

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	expenses := v1.Group("/expenses")
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("", expenseHandler.GetExpenses)
	expenses.GET("/presets", expenseHandler.GetPresets)
	expenses.POST("/presets/:name", expenseHandler.QuickAdd)
	expenses.GET("/:id", expenseHandler.GetExpense)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	budgets := v1.Group("/budgets")
	budgets.POST("", budgetHandler.CreateBudget)
	budgets.GET("", budgetHandler.GetBudgets)
	budgets.GET("/status", budgetHandler.GetBudgetStatuses)
	budgets.PUT("/:id", budgetHandler.UpdateBudget)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)
	budgets.GET("/:id/status", budgetHandler.GetBudgetStatus)

	insights := v1.Group("/insights")
	insights.GET("/summary", insightHandler.GetSummary)
	insights.GET("/categories", insightHandler.GetCategoryBreakdown)
	insights.GET("/daily", insightHandler.GetDailySpending)
	insights.GET("/budget-vs-actual", insightHandler.GetBudgetVsActual)

	return router
}
