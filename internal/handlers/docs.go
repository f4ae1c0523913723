package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ytakahashi/todo-api/internal/config"
)

// DocsHandler serves the root welcome payload and the generated API
// documentation. The config title and description only appear here.
type DocsHandler struct {
	cfg *config.Config
}

func NewDocsHandler(cfg *config.Config) *DocsHandler {
	return &DocsHandler{cfg: cfg}
}

// Root handles GET /.
func (h *DocsHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Welcome to the Todo API",
		"docs":    "/docs",
		"redoc":   "/redoc",
	})
}

// OpenAPI handles GET /openapi.json with a document describing the todo
// endpoints, using the configured title and description as metadata.
func (h *DocsHandler) OpenAPI(c echo.Context) error {
	todoRef := map[string]interface{}{"$ref": "#/components/schemas/Todo"}
	todoJSON := map[string]interface{}{
		"application/json": map[string]interface{}{"schema": todoRef},
	}

	doc := map[string]interface{}{
		"openapi": "3.0.3",
		"info": map[string]interface{}{
			"title":       h.cfg.Title,
			"description": h.cfg.Description,
			"version":     "0.1.0",
		},
		"paths": map[string]interface{}{
			"/todos/": map[string]interface{}{
				"get": map[string]interface{}{
					"summary": "List todos",
					"responses": map[string]interface{}{
						"200": map[string]interface{}{
							"description": "All todos in the store",
							"content": map[string]interface{}{
								"application/json": map[string]interface{}{
									"schema": map[string]interface{}{
										"type":  "array",
										"items": todoRef,
									},
								},
							},
						},
					},
				},
				"post": map[string]interface{}{
					"summary": "Create a todo",
					"requestBody": map[string]interface{}{
						"required": true,
						"content": map[string]interface{}{
							"application/json": map[string]interface{}{
								"schema": map[string]interface{}{"$ref": "#/components/schemas/TodoCreate"},
							},
						},
					},
					"responses": map[string]interface{}{
						"201": map[string]interface{}{"description": "Created todo", "content": todoJSON},
						"422": map[string]interface{}{"description": "Validation error"},
					},
				},
			},
			"/todos/{id}": map[string]interface{}{
				"get": map[string]interface{}{
					"summary":    "Get a todo",
					"parameters": idParams(),
					"responses": map[string]interface{}{
						"200": map[string]interface{}{"description": "The todo", "content": todoJSON},
						"404": map[string]interface{}{"description": "Todo not found"},
					},
				},
				"patch": map[string]interface{}{
					"summary":    "Update a todo",
					"parameters": idParams(),
					"requestBody": map[string]interface{}{
						"content": map[string]interface{}{
							"application/json": map[string]interface{}{
								"schema": map[string]interface{}{"$ref": "#/components/schemas/TodoUpdate"},
							},
						},
					},
					"responses": map[string]interface{}{
						"200": map[string]interface{}{"description": "Updated todo", "content": todoJSON},
						"404": map[string]interface{}{"description": "Todo not found"},
						"422": map[string]interface{}{"description": "Validation error"},
					},
				},
				"delete": map[string]interface{}{
					"summary":    "Delete a todo",
					"parameters": idParams(),
					"responses": map[string]interface{}{
						"204": map[string]interface{}{"description": "Deleted"},
						"404": map[string]interface{}{"description": "Todo not found"},
					},
				},
			},
		},
		"components": map[string]interface{}{
			"schemas": map[string]interface{}{
				"Todo": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"id":          map[string]interface{}{"type": "string"},
						"title":       map[string]interface{}{"type": "string"},
						"description": map[string]interface{}{"type": "string", "nullable": true},
						"priority":    map[string]interface{}{"type": "integer"},
						"created_at":  map[string]interface{}{"type": "string", "format": "date-time"},
						"completed":   map[string]interface{}{"type": "boolean"},
					},
				},
				"TodoCreate": map[string]interface{}{
					"type":     "object",
					"required": []string{"title"},
					"properties": map[string]interface{}{
						"title":       map[string]interface{}{"type": "string"},
						"description": map[string]interface{}{"type": "string", "nullable": true},
						"priority":    map[string]interface{}{"type": "integer", "default": 1},
					},
				},
				"TodoUpdate": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"title":       map[string]interface{}{"type": "string"},
						"description": map[string]interface{}{"type": "string", "nullable": true},
						"priority":    map[string]interface{}{"type": "integer"},
					},
				},
			},
		},
	}

	return c.JSON(http.StatusOK, doc)
}

// SwaggerUI handles GET /docs with a Swagger UI shell loading /openapi.json.
func (h *DocsHandler) SwaggerUI(c echo.Context) error {
	page := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <title>%s - Swagger UI</title>
  <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({url: "/openapi.json", dom_id: "#swagger-ui"});
  </script>
</body>
</html>`, h.cfg.Title)
	return c.HTML(http.StatusOK, page)
}

// ReDoc handles GET /redoc with a ReDoc shell loading /openapi.json.
func (h *DocsHandler) ReDoc(c echo.Context) error {
	page := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <title>%s - ReDoc</title>
</head>
<body>
  <redoc spec-url="/openapi.json"></redoc>
  <script src="https://cdn.jsdelivr.net/npm/redoc@2/bundles/redoc.standalone.js"></script>
</body>
</html>`, h.cfg.Title)
	return c.HTML(http.StatusOK, page)
}

func idParams() []map[string]interface{} {
	return []map[string]interface{}{{
		"name":     "id",
		"in":       "path",
		"required": true,
		"schema":   map[string]interface{}{"type": "string"},
	}}
}
