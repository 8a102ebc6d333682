package apitests

import (
	"context"

	"github.com/tribalxperience/api-smoke-tests/framework"
)

// Scenario names, as shown in the console output and matched by the --run and --skip filters.
const (
	ScenarioAPIRoot           = "API Root Endpoint"
	ScenarioCreateBooking     = "Create Booking"
	ScenarioGetBookings       = "Get Bookings"
	ScenarioBookingValidation = "Booking Validation"
	ScenarioCreateContact     = "Create Contact"
)

// RunTestSuite runs every scenario once, in a fixed order, against the API that client points
// to. The root check always comes first; the booking list check relies on the booking
// created just before it, if that scenario was run and succeeded.
func RunTestSuite(
	ctx context.Context,
	client *framework.APIClient,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	env := &environment{ctx: ctx, client: client}
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		t := &T{context: c, env: env}

		t.Run(ScenarioAPIRoot, DoAPIRootTest)
		t.Run(ScenarioCreateBooking, DoCreateBookingTest)
		t.Run(ScenarioGetBookings, DoGetBookingsTest)
		t.Run(ScenarioBookingValidation, DoBookingValidationTest)
		t.Run(ScenarioCreateContact, DoCreateContactTest)
	})
}
