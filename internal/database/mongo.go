package database

import (
	"context"
	"log"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var MongoClient *mongo.Client
var MongoDB *mongo.Database

// ConnectMongo connects to MongoDB, which holds the admin activity log.
func ConnectMongo(mongoURI string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(mongoURI)
	clientOptions.SetServerSelectionTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return err
	}

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer pingCancel()

	if err = client.Ping(pingCtx, nil); err != nil {
		client.Disconnect(context.Background())
		return err
	}

	MongoClient = client
	MongoDB = client.Database(mongoDatabaseName(mongoURI))

	log.Println("✅ Connected to MongoDB")
	return nil
}

// mongoDatabaseName extracts the database name from the connection string,
// falling back to "ilan".
func mongoDatabaseName(mongoURI string) string {
	dbName := "ilan"
	parts := strings.Split(mongoURI, "/")
	if len(parts) > 3 {
		dbPart := strings.Split(parts[len(parts)-1], "?")[0]
		if dbPart != "" {
			dbName = dbPart
		}
	}
	return dbName
}

func DisconnectMongo() error {
	if MongoClient == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return MongoClient.Disconnect(ctx)
}
