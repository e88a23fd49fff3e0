package docs

import "github.com/swaggo/swag"

// @title           Taskflow API
// @version         1.0
// @description     Task tracking API: tasks, statuses, labels, users

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token

// @tag.name Auth
// @tag.description Token issuance

// @tag.name Users
// @tag.description User management operations

// @tag.name Tasks
// @tag.description Task management and filtered listings

// @tag.name Statuses
// @tag.description Task status management operations

// @tag.name Labels
// @tag.description Label management operations

// Register swagger info
func SwaggerInfo() *swag.Spec {
	return swag.Instance
}
