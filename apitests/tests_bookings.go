package apitests

import (
	"fmt"
	"net/http"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bookingsPath = "/bookings"

func DoCreateBookingTest(t *T) {
	booking := newBookingRequest()
	t.Debug("Creating booking for %q on %s", booking.Name, booking.PreferredDate)

	resp := t.postJSON(bookingsPath, booking)
	require.Equal(t, 200, resp.StatusCode, "Status: %d, Response: %s", resp.StatusCode, resp.Text())

	data := t.requireFields(t.requireJSON(resp), bookingFields)

	id := data.GetByKey("id")
	if id.IsNull() {
		t.Debug("Created booking has a null id; it will not be looked for in the list")
		return
	}
	t.env.lastBookingID = ldvalue.NewOptionalString(idString(id))
	t.Debug("Created booking %s", idString(id))
}

func DoGetBookingsTest(t *T) {
	resp := t.get(bookingsPath)
	require.Equal(t, 200, resp.StatusCode, "Status: %d", resp.StatusCode)

	data := t.requireJSON(resp)
	require.Equal(t, ldvalue.ArrayType, data.Type(), "Response is not a list: %s", data.JSONString())

	switch {
	case data.Count() == 0:
		t.Notef("Empty bookings list returned")
	case !t.env.lastBookingID.IsDefined():
		t.Notef("Retrieved %d bookings", data.Count())
	case assert.True(t, containsID(data, t.env.lastBookingID.StringValue()), "Test booking not found in list"):
		t.Notef("Found %d bookings", data.Count())
	}
}

func DoBookingValidationTest(t *T) {
	resp := t.postJSON(bookingsPath, partialBookingRequest{Name: "Test User"})
	message := fmt.Sprintf("Status: %d (expected %d)", resp.StatusCode, http.StatusUnprocessableEntity)
	if assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode, message) {
		t.Notef("%s", message)
	}
}
