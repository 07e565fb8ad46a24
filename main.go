package main

import (
	"log"
	"net/http"
	"os"

	ghandlers "github.com/gorilla/handlers"
	"github.com/joho/godotenv"

	"github.com/akkaungkyawkhaing/dream-lands/database"
	"github.com/akkaungkyawkhaing/dream-lands/handlers"
	"github.com/akkaungkyawkhaing/dream-lands/utils"
)

func main() {
	connStr := os.Getenv("DATABASE_URL")
	if connStr == "" {
		if err := godotenv.Load(); err != nil {
			log.Println(err)
		}
		connStr = os.Getenv("DATABASE_URL")
	}
	if connStr == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	database.InitDB(connStr)
	defer database.CloseDB()

	// Fresh secret every start, so old session cookies stop verifying.
	secret := utils.GenerateSecretKey()

	router := handlers.NewRouter(secret, "templates/*.html")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	finalHandler := ghandlers.CombinedLoggingHandler(os.Stdout, router)

	log.Printf("Dream Lands listening on :%s", port)
	if err := http.ListenAndServe(":"+port, finalHandler); err != nil {
		log.Fatalf("Could not start server: %v", err)
	}
}
