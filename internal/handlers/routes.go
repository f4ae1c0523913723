package handlers

import (
	"github.com/labstack/echo/v4"
)

// Register binds every handler to its route. main and the tests share this
// so the tested routing matches what the server runs.
func Register(e *echo.Echo, todos *TodoHandler, docs *DocsHandler) {
	e.POST("/todos/", todos.Create)
	e.GET("/todos/", todos.List)
	e.GET("/todos/:id", todos.Get)
	e.PATCH("/todos/:id", todos.Update)
	e.DELETE("/todos/:id", todos.Delete)

	e.GET("/", docs.Root)
	e.GET("/openapi.json", docs.OpenAPI)
	e.GET("/docs", docs.SwaggerUI)
	e.GET("/redoc", docs.ReDoc)
}
