package blogControllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/carlosbackdev/moto-gear-avenue/pricing"
)

type infoSection struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type infoPage struct {
	Title    string        `json:"title"`
	Sections []infoSection `json:"sections"`
}

// euros renders an amount in Spanish price copy: comma decimals, no
// cents when they are zero.
func euros(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimSuffix(s, ".00")
	return strings.Replace(s, ".", ",", 1) + " €"
}

// Informational pages ship with the storefront, like the blog posts. The
// shipping copy quotes the fee schedule so a fee change cannot leave the
// page lying.
var infoPages = map[string]infoPage{
	"shipping": {
		Title: "Envíos",
		Sections: []infoSection{
			{Title: "Envío estándar", Body: fmt.Sprintf(
				"Entrega en 7 a 15 días laborables. Gratis en pedidos a partir de %s; por debajo se aplica una tarifa fija de %s.",
				euros(pricing.FreeShippingThreshold), euros(pricing.FlatShippingFee))},
			{Title: "Seguimiento", Body: "Cuando tu pedido sale del almacén recibirás un número de seguimiento y podrás consultar su estado desde la página del pedido."},
		},
	},
	"returns": {
		Title: "Devoluciones",
		Sections: []infoSection{
			{Title: "Plazo", Body: "Dispones de 30 días desde la entrega para solicitar la devolución de cualquier artículo sin usar y con su embalaje original."},
			{Title: "Reembolso", Body: "El reembolso se realiza por el mismo método de pago en un plazo de 5 a 10 días laborables tras recibir el artículo."},
		},
	},
	"terms": {
		Title: "Términos y condiciones",
		Sections: []infoSection{
			{Title: "Uso de la tienda", Body: "Al realizar un pedido aceptas estos términos y confirmas que los datos facilitados son correctos."},
			{Title: "Precios", Body: "Los precios incluyen impuestos. Los gastos de envío se muestran antes de confirmar el pedido."},
		},
	},
	"payment-info": {
		Title: "Métodos de pago",
		Sections: []infoSection{
			{Title: "Pago seguro", Body: "El pago se procesa en una pasarela externa certificada. Esta tienda nunca almacena los datos de tu tarjeta."},
			{Title: "Métodos aceptados", Body: "Aceptamos tarjetas Visa y Mastercard y pagos con Google Pay."},
		},
	},
}

// GET /pages/:slug
func GetInfoPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		page, ok := infoPages[c.Param("slug")]
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Página no encontrada"})
			return
		}
		c.JSON(http.StatusOK, page)
	}
}
