package paymentcontroller

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	stripe "github.com/stripe/stripe-go/v76"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kanak8148/SHOPING---APP/models"
)

type fakeCharges struct {
	charge *stripe.Charge
	err    error
	got    *stripe.ChargeParams
}

func (f *fakeCharges) New(params *stripe.ChargeParams) (*stripe.Charge, error) {
	f.got = params
	return f.charge, f.err
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

func googlePayRouter(db *gorm.DB, h *Handler, buyerID uint) *gin.Engine {
	r := gin.New()
	r.POST("/google-pay", func(c *gin.Context) {
		// stand-in for the sign-in middleware
		c.Set("user_id", float64(buyerID))
	}, h.GooglePay(db))
	return r
}

func TestGooglePaySuccessRecordsOrder(t *testing.T) {
	db := setupTestDB(t)
	buyer := models.User{Name: "Asha", Email: "asha@example.com", Phone: "1", Address: "a", Password: "h", Answer: "h"}
	require.NoError(t, db.Create(&buyer).Error)

	charges := &fakeCharges{charge: &stripe.Charge{ID: "ch_123", Status: stripe.ChargeStatusSucceeded}}
	h := &Handler{Charges: charges, Secret: "secret"}
	r := googlePayRouter(db, h, buyer.ID)

	w := postJSON(t, r, "/google-pay", gin.H{
		"token": "tok_googlepay",
		"cart": []gin.H{
			{"id": 1, "name": "Pen", "price": 10.0, "quantity": 1},
			{"id": 2, "name": "Notebook", "price": 25.0, "quantity": 2},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	// cart total in minor units
	require.EqualValues(t, 3500, *charges.got.Amount)
	require.Equal(t, "tok_googlepay", *charges.got.Source.Token)

	var order models.Order
	require.NoError(t, db.Preload("Items").First(&order).Error)
	require.Equal(t, buyer.ID, order.BuyerID)
	require.Equal(t, "ch_123", order.PaymentRef)
	require.Equal(t, 35.0, order.TotalAmount)
	require.Len(t, order.Items, 2)
	require.Equal(t, "Pen", order.Items[0].Name)
}

func TestGooglePayProcessorDeclined(t *testing.T) {
	db := setupTestDB(t)

	charges := &fakeCharges{charge: &stripe.Charge{ID: "ch_456", Status: stripe.ChargeStatusFailed}}
	h := &Handler{Charges: charges, Secret: "secret"}
	r := googlePayRouter(db, h, 1)

	w := postJSON(t, r, "/google-pay", gin.H{
		"token": "tok_declined",
		"cart":  []gin.H{{"id": 1, "name": "Pen", "price": 10.0, "quantity": 1}},
	})
	require.Equal(t, http.StatusPaymentRequired, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestGooglePayProcessorError(t *testing.T) {
	db := setupTestDB(t)

	charges := &fakeCharges{err: errors.New("stripe unreachable")}
	h := &Handler{Charges: charges, Secret: "secret"}
	r := googlePayRouter(db, h, 1)

	w := postJSON(t, r, "/google-pay", gin.H{
		"token": "tok_any",
		"cart":  []gin.H{{"id": 1, "name": "Pen", "price": 10.0, "quantity": 1}},
	})
	require.Equal(t, http.StatusBadGateway, w.Code)
	require.NotContains(t, w.Body.String(), "stripe unreachable")
}

func TestGooglePayRequiresSignIn(t *testing.T) {
	db := setupTestDB(t)

	h := &Handler{Charges: &fakeCharges{}, Secret: "secret"}
	r := gin.New()
	r.POST("/google-pay", h.GooglePay(db)) // no user_id in context

	w := postJSON(t, r, "/google-pay", gin.H{
		"token": "tok_any",
		"cart":  []gin.H{{"id": 1, "name": "Pen", "price": 10.0, "quantity": 1}},
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
