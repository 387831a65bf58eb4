package remote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charliescheer/woocommerce-ios/internal/domain/commerce"
)

const orderBody = `{
	"id": 963,
	"number": "963",
	"status": "processing",
	"currency": "USD",
	"total": "31.20",
	"total_tax": "1.20",
	"shipping_total": "0.00",
	"discount_total": "3.00",
	"payment_method_title": "Credit Card (Stripe)",
	"customer_id": 11,
	"customer_note": "Leave at the door",
	"date_created_gmt": "2024-01-15T10:30:00",
	"date_modified_gmt": "2024-01-15T10:35:00",
	"date_paid_gmt": "2024-01-15T10:35:00",
	"billing": {"first_name":"Johnny","last_name":"Appleseed","city":"Cupertino","country":"US","email":"j@example.com"},
	"shipping": {"first_name":"Johnny","last_name":"Appleseed","city":"Cupertino","country":"US"},
	"line_items": [
		{"id":890,"product_id":21,"variation_id":0,"name":"Aluminum Shirt","sku":"ALU-S","quantity":2,"price":15.0,"subtotal":"30.00","total":"27.00","total_tax":"1.20"}
	]
}`

// tunnelQuery extracts the query the tunnel forwards to the site
func tunnelQuery(t *testing.T, r *http.Request) url.Values {
	t.Helper()
	forwarded, err := url.Parse(r.URL.Query().Get("path"))
	require.NoError(t, err)
	return forwarded.Query()
}

func TestOrders_List(t *testing.T) {
	t.Run("successful list", func(t *testing.T) {
		var query url.Values
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			query = tunnelQuery(t, r)
			w.Write([]byte(`{"data":[` + orderBody + `]}`))
		}))
		defer server.Close()

		orders := NewOrders(newTestDispatcher(t, server), nil)
		list, err := orders.List(context.Background(), 123, ListOrdersOptions{
			Status:   commerce.OrderStatusProcessing,
			Keyword:  "appleseed",
			Page:     2,
			PageSize: 25,
		})
		require.NoError(t, err)

		assert.Equal(t, "processing", query.Get("status"))
		assert.Equal(t, "appleseed", query.Get("search"))
		assert.Equal(t, "2", query.Get("page"))
		assert.Equal(t, "25", query.Get("per_page"))

		require.Len(t, list, 1)
		order := list[0]
		assert.Equal(t, int64(123), order.SiteID)
		assert.Equal(t, int64(963), order.ID)
		assert.Equal(t, commerce.OrderStatusProcessing, order.Status)
		assert.True(t, order.Total.Equal(decimal.NewFromFloat(31.20)))
		assert.Equal(t, "Johnny Appleseed", order.Billing.FullName())
		require.Len(t, order.Items, 1)
		assert.Equal(t, "Aluminum Shirt", order.Items[0].Name)
		assert.True(t, order.Items[0].Quantity.Equal(decimal.NewFromInt(2)))
		require.NotNil(t, order.DatePaid)
	})

	t.Run("defaults applied", func(t *testing.T) {
		var query url.Values
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			query = tunnelQuery(t, r)
			w.Write([]byte(`{"data":[]}`))
		}))
		defer server.Close()

		orders := NewOrders(newTestDispatcher(t, server), nil)
		list, err := orders.List(context.Background(), 123, ListOrdersOptions{})
		require.NoError(t, err)
		assert.Empty(t, list)

		assert.Equal(t, "any", query.Get("status"))
		assert.Equal(t, "1", query.Get("page"))
		assert.Equal(t, "25", query.Get("per_page"))
		assert.Empty(t, query.Get("search"))
	})

	t.Run("invalid site", func(t *testing.T) {
		orders := NewOrders(nil, nil)
		list, err := orders.List(context.Background(), 0, ListOrdersOptions{})
		assert.ErrorIs(t, err, commerce.ErrInvalidSiteID)
		assert.Nil(t, list)
	})
}

func TestOrders_Get(t *testing.T) {
	t.Run("successful get", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/wc/v3/orders/963", r.URL.Query().Get("path"))
			w.Write([]byte(`{"data":` + orderBody + `}`))
		}))
		defer server.Close()

		orders := NewOrders(newTestDispatcher(t, server), nil)
		order, err := orders.Get(context.Background(), 123, 963)
		require.NoError(t, err)
		assert.Equal(t, int64(963), order.ID)
		assert.Equal(t, "Leave at the door", order.CustomerNote)
		assert.Equal(t, "Credit Card (Stripe)", order.PaymentMethodTitle)
	})

	t.Run("order not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":"woocommerce_rest_shop_order_invalid_id","message":"Invalid ID."}`))
		}))
		defer server.Close()

		orders := NewOrders(newTestDispatcher(t, server), nil)
		order, err := orders.Get(context.Background(), 123, 1)
		assert.ErrorIs(t, err, commerce.ErrNotFound)
		assert.Nil(t, order)
	})

	t.Run("malformed body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data":{"number":"963"}}`)) // missing id
		}))
		defer server.Close()

		orders := NewOrders(newTestDispatcher(t, server), nil)
		order, err := orders.Get(context.Background(), 123, 963)
		assert.ErrorIs(t, err, commerce.ErrInvalidResponse)
		assert.Nil(t, order)
	})
}

func TestOrders_UpdateStatus(t *testing.T) {
	t.Run("successful update", func(t *testing.T) {
		var tunneledPath string
		var params map[string]string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			tunneledPath = r.PostFormValue("path")
			params = decodeTunneledParams(t, r)
			w.Write([]byte(`{"data":` + orderBody + `}`))
		}))
		defer server.Close()

		orders := NewOrders(newTestDispatcher(t, server), nil)
		order, err := orders.UpdateStatus(context.Background(), 123, 963, commerce.OrderStatusCompleted)
		require.NoError(t, err)

		assert.Equal(t, "/wc/v3/orders/963&_method=post", tunneledPath)
		assert.Equal(t, "completed", params["status"])
		assert.Equal(t, int64(963), order.ID)
	})

	t.Run("empty status rejected locally", func(t *testing.T) {
		orders := NewOrders(nil, nil)
		order, err := orders.UpdateStatus(context.Background(), 123, 963, "")
		assert.ErrorIs(t, err, commerce.ErrInvalidArgument)
		assert.Nil(t, order)
	})
}

func TestOrders_Get_FractionalQuantity(t *testing.T) {
	body := `{
		"id": 964,
		"status": "processing",
		"line_items": [
			{"id":891,"product_id":22,"name":"Loose Leaf Tea","quantity":2.5,"price":4.0,"subtotal":"10.00","total":"10.00","total_tax":"0.00"}
		]
	}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":` + body + `}`))
	}))
	defer server.Close()

	orders := NewOrders(newTestDispatcher(t, server), nil)
	order, err := orders.Get(context.Background(), 123, 964)
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.True(t, order.Items[0].Quantity.Equal(decimal.NewFromFloat(2.5)))
}

func TestMapOrderList_BareBody(t *testing.T) {
	// Responses that skip the tunnel envelope decode the same way.
	list, err := mapOrderList(123, []byte(`[`+orderBody+`]`))
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(963), list[0].ID)
}
