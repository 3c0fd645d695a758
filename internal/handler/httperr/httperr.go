package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the failure envelope shared by every route.
type Response struct {
	Status   int      `json:"-"`
	Success  bool     `json:"success"`
	Message  string   `json:"message"`
	Messages []string `json:"messages,omitempty"`
}

func New(status int, msg string, messages ...string) Response {
	return Response{
		Status:   status,
		Success:  false,
		Message:  msg,
		Messages: messages,
	}
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, messages ...string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	if len(messages) == 0 {
		messages = []string{msg}
	}
	resp := New(status, msg, messages...)

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort writes the envelope for failures that carry no underlying error.
// msg is repeated in messages so list clients read it from the same field.
func Abort(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, New(status, msg, msg))
}
