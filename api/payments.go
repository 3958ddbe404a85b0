package api

import (
	"net/http"

	"github.com/Domenick1991/mybooking/internal/service/payment"
	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	service payment.PaymentUseCase
}

func NewPaymentHandler(service payment.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{service: service}
}

func (h *PaymentHandler) Register(router *gin.RouterGroup) {
	router.GET("/autorizacion", h.authorize)
}

func (h *PaymentHandler) authorize(c *gin.Context) {
	authorization, approved := h.service.Authorize(payment.AuthorizationRequest{
		Card:         c.Query("tarjeta"),
		Holder:       c.DefaultQuery("nombre", "JUANPEREZ"),
		Expiry:       c.DefaultQuery("fecha_venc", "202204"),
		SecurityCode: c.DefaultQuery("num_seguridad", "123"),
		Amount:       c.DefaultQuery("monto", "600"),
		Merchant:     c.DefaultQuery("tienda", "MYBOOKING"),
		Format:       c.DefaultQuery("formato", "JSON"),
	})

	status := http.StatusOK
	if !approved {
		status = http.StatusPaymentRequired
	}
	c.JSON(status, gin.H{"autorizacion": authorization})
}
