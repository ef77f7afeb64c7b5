package database

import (
	"cfs-service/internal/app/config"
	"context"
	"fmt"
	"net"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

func NewMongoDB(driverConfig *config.DriverConfig, log *zap.Logger) *mongo.Client {
	mongoConfig := driverConfig.MongoDB
	connectTimeout := time.Duration(mongoConfig.ConnectTimeoutInSeconds) * time.Second

	clientOptions := options.Client().
		ApplyURI(fmt.Sprintf("mongodb://%s", net.JoinHostPort(mongoConfig.Host, mongoConfig.Port))).
		SetConnectTimeout(connectTimeout).
		SetServerSelectionTimeout(connectTimeout)
	if mongoConfig.Username != "" {
		clientOptions.SetAuth(options.Credential{
			Username:   mongoConfig.Username,
			Password:   mongoConfig.Password,
			AuthSource: mongoConfig.AuthSource,
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatal("Failed to connect to mongo database", zap.Error(err))
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatal("Failed to ping or test the connection to mongo database", zap.Error(err))
	}

	log.Info("Successfully connected to mongo database", zap.String("db_name", mongoConfig.DBName))
	return client
}
