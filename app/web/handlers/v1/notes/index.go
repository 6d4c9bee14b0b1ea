package notes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mtinwala/notes-web/business/v1/note"
	store "github.com/mtinwala/notes-web/persistence/v1/note"
	"github.com/mtinwala/notes-web/platform/web/handler"
)

// Handler serves the note pages backed by the injected store
type Handler struct {
	store store.Store
}

func New(s store.Store) Handler {
	return Handler{store: s}
}

// Index godoc
// @Summary List notes
// @Description Renders the notes page with every stored note
// @Tags Note
// @Produce html
// @Success 200 {string} string "rendered page"
// @Failure 500 {object} handler.Error
// @Router / [get]
func (h Handler) Index(ctx *gin.Context) handler.Result {
	list, err := note.List(ctx, h.store)
	if err != nil {
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Message: err.Error()},
		}
	}

	return handler.Result{
		Status:   http.StatusOK,
		Template: "index.html",
		Body:     gin.H{"notes": list},
	}
}
