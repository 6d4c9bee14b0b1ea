package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/mtinwala/notes-web/app/web/handlers/v1/healthcheck"
	"github.com/mtinwala/notes-web/app/web/handlers/v1/notes"
	"github.com/mtinwala/notes-web/persistence/v1/note"
	"github.com/mtinwala/notes-web/platform/web/handler"
)

func MapDefaults(r *gin.Engine) {
	r.GET("/v1/healthcheck", handler.Wrapper(healthcheck.Get))
}

func MapApp(r *gin.Engine, store note.Store) {
	h := notes.New(store)
	r.GET("/", handler.Wrapper(h.Index))
	r.POST("/", handler.Wrapper(h.Create))
}
