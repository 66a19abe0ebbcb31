package orderControllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/carlosbackdev/moto-gear-avenue/middleware"
	"github.com/carlosbackdev/moto-gear-avenue/services"
)

// GET /user/orders/export
//
// Downloads the signed-in user's order history as a spreadsheet.
func ExportOrdersToExcel(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := middleware.Session(c)

		list, err := orders.ListMine(c.Request.Context(), session.Token)
		if err != nil {
			log.Printf("orders: export list failed: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Error al cargar tus pedidos"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Pedidos")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al generar el archivo"})
			return
		}

		headers := []string{"ID", "Estado", "Total", "Artículos", "Notas", "Creado", "Actualizado"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range list {
			row := sheet.AddRow()
			row.AddCell().SetValue(o.ID)
			row.AddCell().SetValue(o.Status.Label())
			row.AddCell().SetValue(o.Total)
			row.AddCell().SetValue(len(o.CartShadedIDs))
			row.AddCell().SetValue(o.Notes)
			row.AddCell().SetValue(o.CreatedAt)
			row.AddCell().SetValue(o.UpdatedAt)
		}

		c.Header("Content-Disposition", "attachment; filename=pedidos.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al escribir el archivo"})
			return
		}
	}
}
