// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database/back-end dependencies for the app.
// Both fields are nil when no mongo_uri is configured.
type DBDeps struct {
	GivingBackMongoClient   *mongo.Client
	GivingBackMongoDatabase *mongo.Database
}
