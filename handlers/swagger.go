package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the bookmark service.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>bookmarkd — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document describing the bookmark API surface.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "bookmarkd", "version": "v0.1.0" },
  "paths": {
    "/api/bookmarks": {
      "get": { "summary": "List all bookmarks", "responses": { "200": { "description": "array of bookmarks" } } },
      "post": {
        "summary": "Create a bookmark",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["title","url","rating"],"properties":{"title":{"type":"string"},"url":{"type":"string"},"description":{"type":"string"},"rating":{"type":"number","minimum":0,"maximum":5}}}}}},
        "responses": { "201": { "description": "created bookmark, Location header set" }, "400": { "description": "validation error" } }
      }
    },
    "/api/bookmarks/{id}": {
      "get": { "summary": "Get a bookmark by id", "responses": { "200": { "description": "the bookmark" }, "404": { "description": "bookmark does not exist" } } },
      "patch": { "summary": "Partially update a bookmark", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"title":{"type":"string"},"url":{"type":"string"},"description":{"type":"string"},"rating":{"type":"number"}}}}}}, "responses": { "204": { "description": "updated" }, "400": { "description": "empty patch" }, "404": { "description": "bookmark does not exist" } } },
      "delete": { "summary": "Delete a bookmark", "responses": { "204": { "description": "deleted" }, "404": { "description": "bookmark does not exist" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
