package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// APIResponse is the envelope shared by every route. Stats and Count carry the
// review aggregate and list sizes where a route provides them.
type APIResponse[T any] struct {
	Status    int       `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id,omitempty"`
	Success   bool      `json:"success"`
	Message   string    `json:"message,omitempty"`
	Data      T         `json:"data,omitempty"`
	Count     *int      `json:"count,omitempty"`
	Stats     any       `json:"stats,omitempty"`
	Errors    any       `json:"errors,omitempty"`
}

func Success[T any](ctx *gin.Context, status int, data T, message string) APIResponse[T] {
	if status == 0 {
		status = http.StatusOK
	}
	return APIResponse[T]{
		Status:    status,
		Timestamp: time.Now(),
		RequestID: ctx.GetString("request_id"),
		Success:   true,
		Message:   message,
		Data:      data,
	}
}

func Error[T any](ctx *gin.Context, status int, message string, errs any) APIResponse[T] {
	if status == 0 {
		status = http.StatusBadRequest
	}
	return APIResponse[T]{
		Status:    status,
		Timestamp: time.Now(),
		RequestID: ctx.GetString("request_id"),
		Success:   false,
		Message:   message,
		Errors:    errs,
	}
}

// WithCount attaches a list size to the envelope.
func (r APIResponse[T]) WithCount(n int) APIResponse[T] {
	r.Count = &n
	return r
}

// WithStats attaches aggregate stats to the envelope.
func (r APIResponse[T]) WithStats(stats any) APIResponse[T] {
	r.Stats = stats
	return r
}

// JSON writes the envelope with its status code.
func (r APIResponse[T]) JSON(ctx *gin.Context) {
	ctx.JSON(r.Status, r)
}

// AbortJSON writes the envelope and aborts the handler chain (middleware use).
func (r APIResponse[T]) AbortJSON(ctx *gin.Context) {
	ctx.AbortWithStatusJSON(r.Status, r)
}
