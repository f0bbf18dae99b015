package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shankarpradhan/Megashopping/models"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// ExportProductsToExcel streams the product catalog as an .xlsx download
// (admin only).
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Order("id").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build excel sheet"})
			return
		}

		header := sheet.AddRow()
		for _, title := range []string{"ID", "Name", "Description", "Price", "Stock"} {
			header.AddCell().Value = title
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().Value = strconv.FormatUint(uint64(p.ID), 10)
			row.AddCell().Value = p.Name
			row.AddCell().Value = p.Description
			row.AddCell().SetFloat(p.Price)
			row.AddCell().SetInt(p.Stock)
		}

		c.Header("Content-Disposition", `attachment; filename="products.xlsx"`)
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write excel file"})
			return
		}
	}
}
