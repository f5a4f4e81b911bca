package handlers

import (
	"github.com/SergioReyes42/SistemaContable/internal/models"

	"github.com/gin-gonic/gin"
)

// render envuelve c.HTML y pone en todas las plantillas el usuario que
// dejó middleware.InjectUser.
func render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	if uVal, ok := c.Get("CurrentUser"); ok {
		if u, ok := uVal.(models.User); ok {
			data["CurrentUser"] = u
			data["CurrentUsername"] = u.Username
			data["CurrentNombre"] = u.Nombre
		}
	}

	c.HTML(status, tmpl, data)
}
