package main

import (
	"log"

	"github.com/Badmus2018/gogdripsv1/config"
	"github.com/Badmus2018/gogdripsv1/internal/app"

	postgresDriver "github.com/Badmus2018/gogdripsv1/internal/infrastructure/database/postgres"
)

func main() {
	config := config.CreateNewConfig()
	db, err := postgresDriver.GetDBInstance(config.PostgreSQLConfig.DBUsername, config.PostgreSQLConfig.DBPassword, config.PostgreSQLConfig.DBHost, config.PostgreSQLConfig.DBPort, config.PostgreSQLConfig.DBName)
	if err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}
	defer postgresDriver.CloseDBInstance()

	server := app.App{
		DB:     db,
		Config: config,
	}

	server.Start()
}
