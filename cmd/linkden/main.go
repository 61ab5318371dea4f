package main

import (
	"log"

	"linkden/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ linkden failed to start: %v", err)
	}
}
