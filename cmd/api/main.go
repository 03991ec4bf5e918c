package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/Cyndie1416/RetailPOS/internal/app"
)

func main() {
	_ = godotenv.Load()

	a, err := app.New()
	if err != nil {
		log.Fatal(err)
	}
	if err := a.Run(); err != nil {
		log.Fatal(err)
	}
}
