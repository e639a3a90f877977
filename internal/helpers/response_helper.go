package helpers

import "github.com/gin-gonic/gin"

// Every response, success or error, is wrapped in the same envelope:
// {"status": "Successful"|"Error", "data": ...}.
const (
	StatusSuccessful = "Successful"
	StatusError      = "Error"
)

type Envelope struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data"`
}

func Respond(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, Envelope{
		Status: StatusSuccessful,
		Data:   data,
	})
}

func RespondWithError(c *gin.Context, statusCode int, customMessage string) {
	c.JSON(statusCode, Envelope{
		Status: StatusError,
		Data:   gin.H{"detail": customMessage},
	})
}
