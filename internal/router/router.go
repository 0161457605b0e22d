package router

import (
	"github.com/labstack/echo/v4"

	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/cache"
	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/database"
	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/handler"
	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/handler/auth"
	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/handler/tasks"
	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/handler/users"
	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/middleware"
	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/model"
	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/worker"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, cch cache.Cache, wp worker.Pool) {
	api := e.Group("/api/v1")
	requireAuth := middleware.RequireAuth(db, cch)

	// 健康檢查
	api.GET("/ping", handler.PingHandler(db, cch))

	// 註冊、登入與當前使用者
	api.POST("/auth/register", auth.RegisterHandler(db, wp))
	api.POST("/auth/login", auth.LoginHandler(db, wp))
	api.GET("/auth/me", auth.GetMeHandler(db), requireAuth)

	// 工作 CRUD，擁有權在 handler 內檢查
	apiTasks := api.Group("/tasks", requireAuth)
	apiTasks.GET("", tasks.ListTasksHandler(db))
	apiTasks.POST("", tasks.CreateTaskHandler(db))
	apiTasks.GET("/:id", tasks.GetTaskHandler(db))
	apiTasks.PUT("/:id", tasks.UpdateTaskHandler(db))
	apiTasks.DELETE("/:id", tasks.DeleteTaskHandler(db))

	// 管理員專屬
	apiUsers := api.Group("/users", requireAuth, middleware.Authorize(model.RoleAdmin))
	apiUsers.GET("", users.ListUsersHandler(db))
}
