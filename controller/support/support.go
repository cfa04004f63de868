package support

import (
	"mysteriogame/dto"
	"mysteriogame/services"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func SupportController(router *gin.Engine, notifier *services.Notifier) {
	router.POST("/support", func(c *gin.Context) {
		SubmitSupportRequest(c, notifier)
	})
}

// SubmitSupportRequest relays a support form to the support webhook.
func SubmitSupportRequest(c *gin.Context, notifier *services.Notifier) {
	var request dto.SupportRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required. Please complete the form."})
		return
	}

	notifier.SendAsync(services.SupportRequestMessage(
		request.Category, request.Heading, request.Problem, request.Contact, time.Now(),
	))

	c.JSON(http.StatusOK, gin.H{"message": "Your support request has been sent successfully!"})
}
