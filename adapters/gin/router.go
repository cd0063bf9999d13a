package authgin

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/balansai/miniapp-backend/adapters/gin/handlers"
	"github.com/balansai/miniapp-backend/adapters/ginutil"
	"github.com/balansai/miniapp-backend/core"
	"github.com/balansai/miniapp-backend/ledger"
	"github.com/balansai/miniapp-backend/staff"
	"github.com/balansai/miniapp-backend/warehouse"
)

// RouterDeps collects everything the router wires together.
type RouterDeps struct {
	Service   *core.Service
	Warehouse *warehouse.Store
	Ledger    *ledger.Store
	Staff     *staff.Store
	Limiter   ginutil.RateLimiter
	Log       *logrus.Logger
	StaticDir string
	Debug     bool
}

// NewRouter assembles the full HTTP surface. Every /api route passes the
// session gate; everything except check-plan and session issuance also
// passes the entitlement gate.
func NewRouter(d RouterDeps) *gin.Engine {
	if !d.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(RequestLogger(d.Log), gin.Recovery())

	env := handlers.Env{Log: d.Log, Debug: d.Debug, RL: d.Limiter}

	r.Static("/static", d.StaticDir)
	page := PageHandler(d.Service, d.StaticDir, d.Log)
	for _, p := range PagePaths {
		r.GET(p, page)
	}

	api := r.Group("/api", SessionMiddleware(d.Service, d.Log))
	{
		api.GET("/check-plan", handlers.HandleCheckPlanGET(d.Service))
		api.POST("/auth/session", handlers.HandleAuthSessionPOST(env, d.Service))
	}

	protected := api.Group("", RequireEntitlement(d.Service))
	{
		protected.GET("/warehouse/products", handlers.HandleWarehouseProductsGET(env, d.Warehouse))
		protected.POST("/warehouse/products", handlers.HandleWarehouseProductsPOST(env, d.Warehouse))
		protected.PUT("/warehouse/products/:id", handlers.HandleWarehouseProductPUT(env, d.Warehouse))
		protected.DELETE("/warehouse/products/:id", handlers.HandleWarehouseProductDELETE(env, d.Warehouse))

		protected.GET("/warehouse/movements", handlers.HandleWarehouseMovementsGET(env, d.Warehouse))
		protected.POST("/warehouse/movements", handlers.HandleWarehouseMovementsPOST(env, d.Warehouse))

		protected.GET("/transactions", handlers.HandleTransactionsGET(env, d.Ledger))
		protected.POST("/transactions", handlers.HandleTransactionsPOST(env, d.Ledger))
		protected.DELETE("/transactions/:id", handlers.HandleTransactionDELETE(env, d.Ledger))

		protected.GET("/reports/summary", handlers.HandleReportsSummaryGET(env, d.Ledger, d.Warehouse))
		protected.GET("/reports/forecast", handlers.HandleReportsForecastGET(env, d.Ledger))

		protected.GET("/employees", handlers.HandleEmployeesGET(env, d.Staff))
		protected.POST("/employees", handlers.HandleEmployeesPOST(env, d.Staff))
		protected.PUT("/employees/:id", handlers.HandleEmployeePUT(env, d.Staff))
		protected.DELETE("/employees/:id", handlers.HandleEmployeeDELETE(env, d.Staff))

		protected.GET("/tasks", handlers.HandleTasksGET(env, d.Staff))
		protected.POST("/tasks", handlers.HandleTasksPOST(env, d.Staff))
		protected.PUT("/tasks/:id", handlers.HandleTaskPUT(env, d.Staff))

		protected.POST("/ai/chat", handlers.HandleAIChatPOST(env))
	}

	return r
}
