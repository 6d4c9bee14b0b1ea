package collection

import (
	"context"
	"fmt"
	"time"

	"github.com/mtinwala/notes-web/persistence/v1/note"
	"github.com/mtinwala/notes-web/platform/env"
	"github.com/mtinwala/notes-web/sys"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

func ListCommands() {
	println("Collection Commands")
	println("\tdrop\t\t\t- Drops the notes collection")
	println("\tseed\t\t\t- Inserts a few sample notes")
	println("\thelp\t\t\t- Print the commands available")
}

func Run(options []string) {
	if len(options) == 0 {
		ListCommands()
		return
	}
	// empty logger
	log := zap.NewNop().Sugar()
	client, coll, err := initVars(log)
	if err != nil {
		println("error:", err.Error())
		return
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()
	switch options[0] {
	case "drop":
		println("dropping collection")
		if err := coll.Drop(context.Background()); err != nil {
			println("failed to drop collection:", err.Error())
		} else {
			println("dropped collection")
		}
	case "seed":
		println("seeding collection")
		store := note.NewMongo(coll)
		samples := []note.Fields{
			{"title": "Groceries", "desc": "Milk, eggs", "important": true, "createdAt": time.Now().UTC()},
			{"title": "Call plumber", "desc": "", "important": false, "createdAt": time.Now().UTC()},
		}
		for _, sample := range samples {
			if _, err := store.Insert(context.Background(), sample); err != nil {
				println("failed to seed collection:", err.Error())
				return
			}
		}
		println("seeded collection")
	case "help":
		fallthrough
	default:
		ListCommands()
	}
}

func initVars(log *zap.SugaredLogger) (*mongo.Client, *mongo.Collection, error) {
	sys.Configs.Database.ConnectionURL = env.OrDefault(log, "DATABASE_CONNECTION_URL", "mongodb://localhost:27017")
	sys.Configs.Database.Name = env.OrDefault(log, "DATABASE_NAME", "notes")
	sys.Configs.Database.Collection = env.OrDefault(log, "DATABASE_COLLECTION", "notes")
	sys.Configs.Database.PingTimeout = env.DurationDefault(log, "DATABASE_PING_TIMEOUT", "2s")
	sys.Configs.Database.OperationTimeout = env.DurationDefault(log, "DATABASE_OPERATION_TIMEOUT", "5s")

	// logger
	sys.R.Log = log

	dbCtx, dbCancel := context.WithTimeout(context.Background(), sys.Configs.Database.PingTimeout)
	defer dbCancel()
	client, err := mongo.Connect(dbCtx, options.Client().ApplyURI(sys.Configs.Database.ConnectionURL))
	if err != nil {
		return nil, nil, fmt.Errorf("error to connect to database: %w", err)
	}
	if err := client.Ping(dbCtx, readpref.Primary()); err != nil {
		return nil, nil, fmt.Errorf("could not connect to database: %w", err)
	}
	return client, client.Database(sys.Configs.Database.Name).Collection(sys.Configs.Database.Collection), nil
}
