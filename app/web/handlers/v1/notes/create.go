package notes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mtinwala/notes-web/business/v1/note"
	store "github.com/mtinwala/notes-web/persistence/v1/note"
	"github.com/mtinwala/notes-web/platform/web/handler"
)

// Create godoc
// @Summary Create a note
// @Description Stores the submitted form fields as a new note
// @Tags Note
// @Accept x-www-form-urlencoded
// @Produce json
// @Param title formData string false "Note title"
// @Param desc formData string false "Note description"
// @Param important formData string false "Set to 'on' to flag the note"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} handler.Error
// @Failure 500 {object} handler.Error
// @Router / [post]
func (h Handler) Create(ctx *gin.Context) handler.Result {
	if err := ctx.Request.ParseForm(); err != nil {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "invalid form body"},
		}
	}

	fields := store.Fields{}
	for key, values := range ctx.Request.PostForm {
		if len(values) > 0 {
			fields[key] = values[0]
		}
	}
	// checkbox semantics: only the literal "on" counts as flagged
	fields["important"] = fields["important"] == "on"

	if _, err := note.Create(ctx, h.store, fields); err != nil {
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Message: err.Error()},
		}
	}

	return handler.Result{
		Status: http.StatusOK,
		Body:   gin.H{"success": true},
	}
}
