package handler

import "github.com/gin-gonic/gin"

// Result is what a handler produces: a status plus either a JSON body or,
// when Template is set, data for an HTML template
type Result struct {
	Status   int
	Body     any
	Template string
}

// Error is the default error body
type Error struct {
	Message string `json:"message"`
}

// Wrapper adapts a Result-returning handler into a gin handler
func Wrapper(next func(ctx *gin.Context) Result) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		result := next(ctx)
		if result.Template != "" {
			ctx.HTML(result.Status, result.Template, result.Body)
			return
		}
		ctx.JSON(result.Status, result.Body)
	}
}
