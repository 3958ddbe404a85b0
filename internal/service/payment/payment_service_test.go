package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentService_Authorize_ApprovedCard(t *testing.T) {
	service := NewPaymentService()

	authorization, approved := service.Authorize(AuthorizationRequest{Card: "4242424242424242", Amount: "380.50"})

	assert.True(t, approved)
	assert.Equal(t, Authorization{Issuer: "VISA", Card: "4242424242424242", Status: "APROBADO", Number: "654321"}, authorization)
}

func TestPaymentService_Authorize_OtherCardsDenied(t *testing.T) {
	service := NewPaymentService()

	for _, card := range []string{"4000000000000002", "1234", ""} {
		authorization, approved := service.Authorize(AuthorizationRequest{Card: card})

		assert.False(t, approved)
		assert.Equal(t, "DENEGADO", authorization.Status)
		assert.Equal(t, "0", authorization.Number)
	}
}
