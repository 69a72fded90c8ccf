package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/HenryHan168/FlowerStudio/services"
)

// GET /orders/export (merchant)
func ExportOrdersToExcel(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := orders.ListOrders(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{
			"OrderNumber", "Status", "CustomerName", "CustomerPhone", "CustomerEmail",
			"ProductName", "Quantity", "UnitPrice", "TotalAmount", "CustomRequirements",
			"RecipientName", "RecipientPhone", "DeliveryMethod", "DeliveryAddress",
			"PreferredDate", "PreferredTime", "Notes", "CreatedAt", "UpdatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for _, o := range list {
			row := sheet.AddRow()

			row.AddCell().SetValue(o.OrderNumber)
			row.AddCell().SetValue(string(o.Status))
			row.AddCell().SetValue(o.CustomerName)
			row.AddCell().SetValue(o.CustomerPhone)
			row.AddCell().SetValue(o.CustomerEmail)
			row.AddCell().SetValue(o.ProductName)
			row.AddCell().SetValue(o.Quantity)
			row.AddCell().SetValue(o.UnitPrice)
			row.AddCell().SetValue(o.TotalAmount)
			row.AddCell().SetValue(o.CustomRequirements)
			row.AddCell().SetValue(o.RecipientName)
			row.AddCell().SetValue(o.RecipientPhone)
			row.AddCell().SetValue(string(o.DeliveryMethod))
			row.AddCell().SetValue(o.DeliveryAddress)
			row.AddCell().SetValue(o.PreferredDate.Format("2006-01-02"))
			row.AddCell().SetValue(o.PreferredTime)
			row.AddCell().SetValue(o.Notes)
			row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(o.UpdatedAt.Format("2006-01-02 15:04:05"))
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
