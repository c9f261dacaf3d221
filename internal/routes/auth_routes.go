package routes

import (
	"github.com/gin-gonic/gin"

	"fleetflow/internal/controllers"
)

func AuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/signup", controllers.SignupUser)
		auth.POST("/login", controllers.LoginUser)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/verify-reset-code", controllers.VerifyResetCode)
		auth.POST("/reset-password", controllers.ResetPassword)
	}
}
