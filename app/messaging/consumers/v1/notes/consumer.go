package notes

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/mtinwala/notes-web/business/v1/note"
	store "github.com/mtinwala/notes-web/persistence/v1/note"
	"github.com/mtinwala/notes-web/sys"
	"gocloud.dev/pubsub"
)

// Consume reads note events from the subscription until the context is
// canceled, handling at most maxWorkers messages at a time
func Consume(ctx context.Context, sub *pubsub.Subscription, s store.Store, maxWorkers int) error {
	logger := sys.R.Log
	workers := make(chan int, maxWorkers)

	for {
		message, err := sub.Receive(ctx)
		if err != nil {
			if !errors.Is(err, context.Canceled) {
				return err
			}
			break
		}

		go func(m *pubsub.Message) {
			workers <- 1
			defer func() { <-workers }()
			defer m.Ack()

			logger.Infof("message received: %s", string(m.Body))
			var e note.Event
			if err := json.Unmarshal(m.Body, &e); err != nil {
				logger.Error("failed to parse body: ", err)
				return
			}

			switch e.Type {
			case "create":
				fields := store.Fields{}
				marshal, _ := json.Marshal(e.Data)
				_ = json.Unmarshal(marshal, &fields)

				if _, err := note.Create(ctx, s, fields); err != nil {
					logger.Errorf("failed to create note %+v: err: %s", e.Data, err)
				}
			default:
				logger.Error("unknown event type: ", e.Type)
			}
		}(message)
	}

	// wait for in-flight messages to finish
	for w := 0; w < maxWorkers; w++ {
		workers <- 1
	}

	return nil
}
