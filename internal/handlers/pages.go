package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func IndexPage(c *gin.Context) {
	render(c, http.StatusOK, "index.html", gin.H{
		"currentYear": time.Now().Year(),
	})
}
