package routes

import (
	"github.com/gin-gonic/gin"

	"fleetflow/internal/controllers"
	"fleetflow/internal/middleware"
)

func ExpenseRoutes(r *gin.Engine) {
	expenses := r.Group("/expenses")
	expenses.Use(middleware.RequireAuth(), middleware.RequireRoles("manager", "dispatcher"))
	{
		expenses.GET("", controllers.ListExpenses)
		expenses.POST("", controllers.CreateExpense)
		expenses.DELETE("/:id", controllers.DeleteExpense)
	}
}
