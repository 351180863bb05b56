package main

import (
	"fmt"
	"log"

	"go.uber.org/zap"

	"github.com/Alberto-Codes/box-office-prediction/internal/config"
	"github.com/Alberto-Codes/box-office-prediction/internal/http"
)

func main() {
	// Initialize context
	ctx, err := config.InitContext()
	if err != nil {
		log.Fatalf("Failed to initialize context: %v", err)
	}

	defer func() {
		if err := ctx.Logger.Sync(); err != nil {
			fmt.Printf("Failed to sync logger: %v\n", err)
		}
	}()

	// Initialize HTTP service
	service := http.NewHTTPService(ctx)

	// Start the server
	if err := service.Engine().Run(":8080"); err != nil {
		ctx.Logger.Fatal("Failed to start the server", zap.Error(err))
	}
}
