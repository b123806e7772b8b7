package cmd

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"
	"github.com/tbruckner/algebra"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the tool API over HTTP",
	Long: `Starts an HTTP server exposing the algebra tool layer.

  POST /tool   — execute a tool call: {"tool":"solve","params":{...}}
  GET  /health — liveness check`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "port to listen on")
	rootCmd.AddCommand(serveCmd)
}

// newServer builds the fiber app; split out so tests can drive it
// through app.Test without binding a port.
func newServer() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          15 * time.Second,
	})
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Post("/tool", func(c *fiber.Ctx) error {
		var req algebra.ToolRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(algebra.ToolResponse{Error: err.Error()})
		}
		resp := algebra.HandleTool(req)
		if resp.Error != "" {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(resp)
		}
		return c.JSON(resp)
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})
	return app
}

func runServe(cmd *cobra.Command, args []string) error {
	app := newServer()
	fmt.Printf("algebra tool server listening on :%d\n", servePort)
	return app.Listen(fmt.Sprintf(":%d", servePort))
}
