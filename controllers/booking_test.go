package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookingBody(serviceID string) gin.H {
	return gin.H{
		"serviceId":     serviceID,
		"customerName":  "Asha",
		"date":          "2024-05-01",
		"contactMethod": "phone",
		"phone":         "+91 9876543210",
		"timeSlot":      "morning",
	}
}

func TestCreateBookingPhone(t *testing.T) {
	r, _ := setupRouter(t)
	serviceID := createCatalogService(t, r, "Plumbing")

	w := doJSON(t, r, http.MethodPost, "/api/bookings", bookingBody(serviceID), "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decodeBody(t, w)
	assert.Equal(t, "+91 9876543210", body["phone"])
	assert.NotContains(t, body, "email")
	require.NotNil(t, body["service"])
	assert.Equal(t, "Plumbing", body["service"].(map[string]any)["name"])
}

func TestCreateBookingRejections(t *testing.T) {
	r, _ := setupRouter(t)
	serviceID := createCatalogService(t, r, "Plumbing")

	t.Run("invalid email", func(t *testing.T) {
		body := bookingBody(serviceID)
		body["contactMethod"] = "email"
		body["email"] = "not-an-email"
		delete(body, "phone")
		w := doJSON(t, r, http.MethodPost, "/api/bookings", body, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "valid email address")
	})

	t.Run("unknown service", func(t *testing.T) {
		body := bookingBody("018f3b1e-0000-7000-8000-000000000000")
		w := doJSON(t, r, http.MethodPost, "/api/bookings", body, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid service ID")
	})

	t.Run("missing time slot", func(t *testing.T) {
		body := bookingBody(serviceID)
		delete(body, "timeSlot")
		w := doJSON(t, r, http.MethodPost, "/api/bookings", body, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bad time slot enum", func(t *testing.T) {
		body := bookingBody(serviceID)
		body["timeSlot"] = "midnight"
		w := doJSON(t, r, http.MethodPost, "/api/bookings", body, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bad contact method enum", func(t *testing.T) {
		body := bookingBody(serviceID)
		body["contactMethod"] = "pigeon"
		w := doJSON(t, r, http.MethodPost, "/api/bookings", body, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestBookingOwnershipOverHTTP(t *testing.T) {
	r, _ := setupRouter(t)
	serviceID := createCatalogService(t, r, "Plumbing")

	tokenA := signup(t, r, "Asha", "asha@example.com")
	tokenB := signup(t, r, "Ravi", "ravi@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/bookings", bookingBody(serviceID), tokenA)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	bookingID := decodeBody(t, w)["id"].(string)

	// B cannot read, update or delete A's booking.
	w = doJSON(t, r, http.MethodGet, "/api/bookings/"+bookingID, nil, tokenB)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/bookings/"+bookingID, bookingBody(serviceID), tokenB)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/bookings/"+bookingID, nil, tokenB)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// B's list silently omits it.
	w = doJSON(t, r, http.MethodGet, "/api/bookings", nil, tokenB)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())

	// An anonymous caller sees it (public mode).
	w = doJSON(t, r, http.MethodGet, "/api/bookings/"+bookingID, nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	// The owner has full access.
	w = doJSON(t, r, http.MethodGet, "/api/bookings/"+bookingID, nil, tokenA)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateBookingSwitchesContact(t *testing.T) {
	r, _ := setupRouter(t)
	serviceID := createCatalogService(t, r, "Plumbing")

	w := doJSON(t, r, http.MethodPost, "/api/bookings", bookingBody(serviceID), "")
	require.Equal(t, http.StatusCreated, w.Code)
	bookingID := decodeBody(t, w)["id"].(string)

	update := gin.H{
		"customerName":  "Asha",
		"date":          "2024-05-02",
		"contactMethod": "email",
		"email":         "Asha@Example.com",
		"timeSlot":      "evening",
	}
	w = doJSON(t, r, http.MethodPut, "/api/bookings/"+bookingID, update, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decodeBody(t, w)
	assert.Equal(t, "asha@example.com", body["email"])
	assert.NotContains(t, body, "phone", "switching to email clears the stored phone")
	assert.Equal(t, "evening", body["timeSlot"])
	require.NotNil(t, body["service"], "service reference unchanged when omitted")
}

func TestDeleteBooking(t *testing.T) {
	r, _ := setupRouter(t)
	serviceID := createCatalogService(t, r, "Plumbing")

	w := doJSON(t, r, http.MethodPost, "/api/bookings", bookingBody(serviceID), "")
	require.Equal(t, http.StatusCreated, w.Code)
	bookingID := decodeBody(t, w)["id"].(string)

	w = doJSON(t, r, http.MethodDelete, "/api/bookings/"+bookingID, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, bookingID, decodeBody(t, w)["id"])

	w = doJSON(t, r, http.MethodDelete, "/api/bookings/"+bookingID, nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/bookings/"+bookingID, nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListBookingFilters(t *testing.T) {
	r, _ := setupRouter(t)
	plumbingID := createCatalogService(t, r, "Plumbing")
	cleaningID := createCatalogService(t, r, "Cleaning")

	first := bookingBody(plumbingID)
	first["customerName"] = "Asha Rao"
	second := bookingBody(cleaningID)
	second["customerName"] = "Ravi Kumar"

	for _, body := range []gin.H{first, second} {
		w := doJSON(t, r, http.MethodPost, "/api/bookings", body, "")
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, r, http.MethodGet, "/api/bookings?customerName=ravi", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Ravi Kumar")
	assert.NotContains(t, w.Body.String(), "Asha Rao")

	w = doJSON(t, r, http.MethodGet, "/api/bookings?serviceId="+plumbingID, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Asha Rao")
	assert.NotContains(t, w.Body.String(), "Ravi Kumar")

	w = doJSON(t, r, http.MethodGet, "/api/bookings?serviceId=not-a-uuid", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServiceCatalog(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/services", gin.H{"name": "Plumbing", "price": -5}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code, "negative price rejected")

	w = doJSON(t, r, http.MethodPost, "/api/services", gin.H{"price": 100}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code, "name required")

	createCatalogService(t, r, "Plumbing")
	createCatalogService(t, r, "Cleaning")

	w = doJSON(t, r, http.MethodGet, "/api/services", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Plumbing")
	assert.Contains(t, w.Body.String(), "Cleaning")
}
