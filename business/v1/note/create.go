package note

import (
	"context"
	"time"

	"github.com/mtinwala/notes-web/persistence/v1/note"
	"github.com/mtinwala/notes-web/sys"
)

// Create stamps the insertion time and persists the submitted fields
// unmodified. The list cache is dropped so the next read sees the new note.
func Create(ctx context.Context, store note.Store, fields note.Fields) (string, error) {
	fields["createdAt"] = time.Now().UTC()

	id, err := store.Insert(ctx, fields)
	if err != nil {
		return "", err
	}

	tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
	defer tcCancel()
	if err := sys.R.Cache.Del(tcCtx, listKey).Err(); err != nil {
		sys.R.Log.Error("failure to drop note list from cache: ", err.Error())
	}

	return id, nil
}
