package main

import (
	"context"
	"fmt"
	"log"

	"github.com/grazeweb/my-eshop-app/config"
	"github.com/grazeweb/my-eshop-app/internal/app"
	elasticsearchDriver "github.com/grazeweb/my-eshop-app/internal/infrastructure/database/elasticsearch"
	mongodbDriver "github.com/grazeweb/my-eshop-app/internal/infrastructure/database/mongodb"
	postgresDriver "github.com/grazeweb/my-eshop-app/internal/infrastructure/database/postgres"
	"github.com/grazeweb/my-eshop-app/internal/infrastructure/message-queue/kafka"
)

func main() {
	config := config.CreateNewConfig()

	db, err := postgresDriver.GetDBInstance(config.PostgreSQLConfig.DBUsername, config.PostgreSQLConfig.DBPassword, config.PostgreSQLConfig.DBHost, config.PostgreSQLConfig.DBPort, config.PostgreSQLConfig.DBName)
	if err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}

	mongoDB, err := mongodbDriver.ConnectToMongoDB(fmt.Sprintf("mongodb://%s:%s", config.MongoDBConfig.DBHost, config.MongoDBConfig.DBPort))
	if err != nil {
		log.Fatalf("Failed to connect to mongodb: %v", err)
	}

	defer mongoDB.Client().Disconnect(context.Background())

	esClient, err := elasticsearchDriver.CreateElasticsearchClient(config)
	if err != nil {
		log.Fatalf("Failed to create elasticsearch client: %v", err)
	}

	kafkaReader := kafka.CreateKafkaReader(config)
	kafkaProducer := kafka.CreateKafkaProducer(config)

	server := app.App{
		Config:      config,
		DB:          db,
		MongoDB:     mongoDB,
		EsClient:    esClient,
		KafkaReader: kafkaReader,
		KafkaConn:   kafkaProducer,
	}

	server.Start()
}
