package paymentcontroller

import (
	razorpay "github.com/razorpay/razorpay-go"
	stripe "github.com/stripe/stripe-go/v76"
	stripeclient "github.com/stripe/stripe-go/v76/client"
)

// OrderCreator matches razorpay-go's order API surface.
type OrderCreator interface {
	Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

// ChargeCreator matches stripe-go's charge API surface.
type ChargeCreator interface {
	New(params *stripe.ChargeParams) (*stripe.Charge, error)
}

// Handler carries the gateway clients and the signing secret. Constructed
// once in main from process configuration; nothing here reads the
// environment directly.
type Handler struct {
	Orders  OrderCreator
	Charges ChargeCreator
	Secret  string // Razorpay key secret, shared with signature verification
}

// NewHandler wires real Razorpay and Stripe clients.
func NewHandler(razorpayKeyID, razorpayKeySecret, stripeKey string) *Handler {
	rz := razorpay.NewClient(razorpayKeyID, razorpayKeySecret)

	sc := &stripeclient.API{}
	sc.Init(stripeKey, nil)

	return &Handler{
		Orders:  rz.Order,
		Charges: sc.Charges,
		Secret:  razorpayKeySecret,
	}
}
