// Package routers
package routers

import (
	"mockllm-api/internal/generator"
	"mockllm-api/internal/routes/stream"

	"github.com/labstack/echo/v4"
)

func RegisterStreamRoutes(e *echo.Group, gen *generator.Generator, frontendDir string) {
	sm := stream.NewManager(gen, frontendDir)

	e.GET("/", sm.Index)
	api := e.Group("/api/llm")
	api.GET("/stream", sm.StreamLLM)
}
