package apitests

import (
	"context"
	"fmt"
	"time"

	"github.com/tribalxperience/api-smoke-tests/framework"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/stretchr/testify/require"
)

const (
	apiRootMessage      = "Tribal Xperience API"
	testPhone           = "+27821234567"
	experienceType      = "Off-Road Tracks"
	preferredDateInDays = 7

	uniqueSuffixFormat = "150405"
	dateFormat         = "2006-01-02"
)

// now is replaced in tests so that generated data is predictable.
var now = time.Now

// BookingRequest is the body of a POST to /bookings.
type BookingRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	ExperienceType string `json:"experience_type"`
	PreferredDate  string `json:"preferred_date"`
	Message        string `json:"message"`
}

// partialBookingRequest is a booking with all of the required fields except the name left out.
type partialBookingRequest struct {
	Name string `json:"name"`
}

// ContactRequest is the body of a POST to /contact.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

var bookingFields = []string{
	"id", "name", "email", "phone", "experience_type", "preferred_date", "status", "created_at",
}

var contactFields = []string{"id", "name", "email", "message", "created_at"}

type environment struct {
	ctx           context.Context
	client        *framework.APIClient
	lastBookingID ldvalue.OptionalString
}

// T represents a scenario in the API smoke test suite.
//
// It wraps a framework.Context, so it can be passed to the assert and require packages as if
// it were a *testing.T; the failure messages it records are the ones given to those assertions.
// It also holds the state that is shared between scenarios in one run,
// such as the ID of the booking that was created, and has helper methods for making requests
// and checking responses. The helpers that start with "require" stop the scenario immediately
// if their condition is not met.
type T struct {
	context *framework.Context
	env     *environment
}

func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

func (t *T) FailNow() {
	t.context.FailNow()
}

func (t *T) Notef(format string, args ...interface{}) {
	t.context.Notef(format, args...)
}

func (t *T) Debug(message string, args ...interface{}) {
	t.context.Debug(message, args...)
}

func (t *T) Run(name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		action(&T{context: c, env: t.env})
	})
}

func (t *T) client() *framework.APIClient {
	return t.env.client.WithLogger(t.context.DebugLogger())
}

// get makes a GET request; a transport error ends the scenario.
func (t *T) get(path string) framework.APIResponse {
	resp, err := t.client().Get(t.env.ctx, path)
	require.NoError(t, err, "Error: %s", err)
	return resp
}

// postJSON makes a POST request; a transport error ends the scenario.
func (t *T) postJSON(path string, payload interface{}) framework.APIResponse {
	resp, err := t.client().PostJSON(t.env.ctx, path, payload)
	require.NoError(t, err, "Error: %s", err)
	return resp
}

// requireJSON parses the response body; malformed JSON ends the scenario.
func (t *T) requireJSON(resp framework.APIResponse) ldvalue.Value {
	v, err := resp.JSON()
	require.NoError(t, err, "Error: %s", err)
	return v
}

// requireFields ends the scenario if the object v does not have all of the fields; otherwise it
// returns v.
func (t *T) requireFields(v ldvalue.Value, fields []string) ldvalue.Value {
	missing := missingFields(v, fields)
	require.Empty(t, missing, "Missing fields: %v", missing)
	return v
}

// missingFields returns the names in fields that are not properties of the JSON object v, in the
// order given. If v is not an object, all of them are missing. A property whose value is null
// still counts as present.
func missingFields(v ldvalue.Value, fields []string) []string {
	present := make(map[string]bool)
	for _, k := range v.Keys() {
		present[k] = true
	}
	var missing []string
	for _, f := range fields {
		if !present[f] {
			missing = append(missing, f)
		}
	}
	return missing
}

// idString normalizes a JSON id so that string and numeric IDs can both be compared.
func idString(v ldvalue.Value) string {
	if v.IsString() {
		return v.StringValue()
	}
	return v.JSONString()
}

func containsID(items ldvalue.Value, id string) bool {
	for i := 0; i < items.Count(); i++ {
		itemID := items.GetByIndex(i).GetByKey("id")
		if !itemID.IsNull() && idString(itemID) == id {
			return true
		}
	}
	return false
}

func uniqueSuffix() string {
	return now().Format(uniqueSuffixFormat)
}

func newBookingRequest() BookingRequest {
	suffix := uniqueSuffix()
	return BookingRequest{
		Name:           "Test User " + suffix,
		Email:          fmt.Sprintf("test%s@example.com", suffix),
		Phone:          testPhone,
		ExperienceType: experienceType,
		PreferredDate:  now().AddDate(0, 0, preferredDateInDays).Format(dateFormat),
		Message:        "Test booking from automated test",
	}
}

func newContactRequest() ContactRequest {
	suffix := uniqueSuffix()
	return ContactRequest{
		Name:    "Test Contact " + suffix,
		Email:   fmt.Sprintf("contact%s@example.com", suffix),
		Message: "Test contact message from automated test",
	}
}
