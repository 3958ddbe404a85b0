// Package payment simulates the external credit card authorization
// API. One designated card number is always approved with a fixed
// authorization code; every other input is declined with code "0".
package payment

const (
	approvedCard   = "4242424242424242"
	approvedNumber = "654321"
	issuer         = "VISA"
)

type PaymentUseCase interface {
	Authorize(req AuthorizationRequest) (Authorization, bool)
}

type AuthorizationRequest struct {
	Card         string
	Holder       string
	Expiry       string
	SecurityCode string
	Amount       string
	Merchant     string
	Format       string
}

type Authorization struct {
	Issuer string `json:"emisor"`
	Card   string `json:"tarjeta"`
	Status string `json:"status"`
	Number string `json:"numero"`
}

type PaymentService struct{}

func NewPaymentService() *PaymentService {
	return &PaymentService{}
}

// Authorize reports the mock authorization and whether it was
// approved.
func (s *PaymentService) Authorize(req AuthorizationRequest) (Authorization, bool) {
	if req.Card == approvedCard {
		return Authorization{Issuer: issuer, Card: req.Card, Status: "APROBADO", Number: approvedNumber}, true
	}
	return Authorization{Issuer: issuer, Card: req.Card, Status: "DENEGADO", Number: "0"}, false
}

var _ PaymentUseCase = (*PaymentService)(nil)
