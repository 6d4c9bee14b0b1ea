package note

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/mtinwala/notes-web/persistence/v1/note"
	"github.com/mtinwala/notes-web/sys"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// List returns every stored note as a display record, filling defaults for
// fields a document does not carry
func List(ctx context.Context, store note.Store) ([]Note, error) {
	logger := sys.R.Log
	cache := sys.R.Cache

	tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
	defer tcCancel()
	get, err := cache.Get(tcCtx, listKey).Result()
	if err != nil && err != redis.Nil {
		logger.Error("failure to get note list from cache: ", err.Error())
	}
	if get != "" {
		var notes []Note
		if err := json.Unmarshal([]byte(get), &notes); err != nil {
			logger.Errorf("error parsing cached response for key %s: %v", listKey, err)
		} else {
			return notes, nil
		}
	}

	docs, err := store.List(ctx)
	if err != nil {
		return nil, err
	}

	notes := make([]Note, 0, len(docs))
	for _, doc := range docs {
		notes = append(notes, project(doc))
	}

	if data, err := json.Marshal(notes); err != nil {
		logger.Errorf("error marshaling note list for key %s: %v", listKey, err)
	} else {
		tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
		defer tcCancel()

		if err := cache.Set(tcCtx, listKey, string(data), sys.Configs.Cache.CacheTTL).Err(); err != nil {
			logger.Error("failure to set note list into cache: ", err.Error())
		}
	}

	return notes, nil
}

func project(doc note.Fields) Note {
	n := Note{
		Id:    idString(doc["_id"]),
		Title: "No Title",
	}
	if title, ok := doc["title"].(string); ok {
		n.Title = title
	}
	if desc, ok := doc["desc"].(string); ok {
		n.Desc = desc
	}
	if important, ok := doc["important"].(bool); ok {
		n.Important = important
	}
	return n
}

func idString(id any) string {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
