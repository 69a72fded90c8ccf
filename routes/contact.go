package routes

import (
	"github.com/gin-gonic/gin"

	contactControllers "github.com/HenryHan168/FlowerStudio/controllers/contact"
)

// SetupContactRoutes registers the "/contacts/*" endpoints.
func SetupContactRoutes(r *gin.Engine, deps Deps) {
	contacts := r.Group("/contacts")
	{
		contacts.GET("/", contactControllers.GetContacts(deps.Contacts))
		contacts.GET("/default", contactControllers.GetDefaultContact(deps.Contacts))
		contacts.POST("/", contactControllers.CreateContact(deps.Contacts))
		contacts.PUT("/:contactID", contactControllers.UpdateContact(deps.Contacts))
		contacts.DELETE("/:contactID", contactControllers.DeleteContact(deps.Contacts))
		contacts.POST("/:contactID/use", contactControllers.UseContact(deps.Contacts))
	}
}
