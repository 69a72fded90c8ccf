package contactControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HenryHan168/FlowerStudio/models"
	"github.com/HenryHan168/FlowerStudio/services"
)

type ContactInput struct {
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	Type      string `json:"type" binding:"required"` // customer | recipient | both
	IsDefault bool   `json:"is_default"`
}

func toServiceInput(input ContactInput, contactType models.ContactType) services.ContactInput {
	return services.ContactInput{
		Name:      input.Name,
		Phone:     input.Phone,
		Email:     input.Email,
		Address:   input.Address,
		Type:      contactType,
		IsDefault: input.IsDefault,
	}
}

// GET /contacts?type=
func GetContacts(contacts *services.ContactService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var role models.ContactType
		if raw := c.Query("type"); raw != "" {
			parsed, err := models.ParseContactType(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			role = parsed
		}

		list, err := contacts.ListContacts(c.Request.Context(), role)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch contacts"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// GET /contacts/default?type=
func GetDefaultContact(contacts *services.ContactService) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, err := models.ParseContactType(c.Query("type"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		contact, err := contacts.DefaultContact(c.Request.Context(), role)
		if errors.Is(err, services.ErrContactNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no default contact"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch default contact"})
			return
		}
		c.JSON(http.StatusOK, contact)
	}
}

// POST /contacts
func CreateContact(contacts *services.ContactService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ContactInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		contactType, err := models.ParseContactType(input.Type)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		contact, err := contacts.AddContact(c.Request.Context(), toServiceInput(input, contactType))
		if err != nil {
			var validation *services.ValidationError
			if errors.As(err, &validation) {
				c.JSON(http.StatusBadRequest, gin.H{"error": validation.Error(), "fields": validation.Fields})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create contact"})
			return
		}
		c.JSON(http.StatusCreated, contact)
	}
}

// PUT /contacts/:contactID
func UpdateContact(contacts *services.ContactService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ContactInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		contactType, err := models.ParseContactType(input.Type)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		contact, err := contacts.UpdateContact(c.Request.Context(), c.Param("contactID"), toServiceInput(input, contactType))
		if errors.Is(err, services.ErrContactNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "contact not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update contact"})
			return
		}
		c.JSON(http.StatusOK, contact)
	}
}

// DELETE /contacts/:contactID
func DeleteContact(contacts *services.ContactService) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := contacts.DeleteContact(c.Request.Context(), c.Param("contactID"))
		if errors.Is(err, services.ErrContactNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "contact not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete contact"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Contact deleted"})
	}
}

// POST /contacts/:contactID/use
func UseContact(contacts *services.ContactService) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := contacts.TouchUsage(c.Request.Context(), c.Param("contactID"))
		if errors.Is(err, services.ErrContactNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "contact not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record contact usage"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Contact usage recorded"})
	}
}
