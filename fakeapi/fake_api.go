// Package fakeapi is an in-memory imitation of the Tribal Xperience API, for testing the smoke
// tests themselves. Its behavior can be altered to simulate a broken backend.
package fakeapi

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// PathPrefix is the path under which the fake serves its endpoints, like the real API.
const PathPrefix = "/api"

const defaultRootMessage = "Tribal Xperience API"

var requiredBookingFields = []string{"name", "email", "phone", "experience_type", "preferred_date"}

var requiredContactFields = []string{"name", "email", "message"}

var jsonHeaders = http.Header{"Content-Type": {"application/json"}}

// API is an http.Handler. The exported fields may be changed before the handler is used.
type API struct {
	// RootMessage is the "message" property returned by GET /.
	RootMessage string
	// OmitFields are properties to leave out of booking and contact responses.
	OmitFields []string
	// HideBookings makes GET /bookings return an empty list.
	HideBookings bool
	// ForeignBookings are returned by GET /bookings in addition to the ones created.
	ForeignBookings []ldvalue.Value
	// ValidationStatus, if nonzero, replaces the 422 status for invalid bookings.
	ValidationStatus int

	bookings []ldvalue.Value
	lastID   int
	lock     sync.Mutex
}

// New returns a fake that behaves like a healthy backend.
func New() *API {
	return &API{RootMessage: defaultRootMessage}
}

// BaseURL returns the base URL for a server that is running the fake.
func BaseURL(serverURL string) string {
	return serverURL + PathPrefix
}

// Bookings returns the bookings that have been created so far.
func (a *API) Bookings() []ldvalue.Value {
	a.lock.Lock()
	defer a.lock.Unlock()
	return append([]ldvalue.Value(nil), a.bookings...)
}

func (a *API) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	notFound := httphelpers.HandlerWithStatus(http.StatusNotFound)
	notAllowed := httphelpers.HandlerWithStatus(http.StatusMethodNotAllowed)
	bookings := httphelpers.HandlerForMethod("GET", http.HandlerFunc(a.listBookings),
		httphelpers.HandlerForMethod("POST", http.HandlerFunc(a.createBooking), notAllowed))
	contact := httphelpers.HandlerForMethod("POST", http.HandlerFunc(a.createContact), notAllowed)
	root := httphelpers.HandlerForMethod("GET",
		httphelpers.HandlerWithJSONResponse(map[string]string{"message": a.RootMessage}, nil), notAllowed)

	httphelpers.HandlerForPath(PathPrefix+"/", root,
		httphelpers.HandlerForPath(PathPrefix+"/bookings", bookings,
			httphelpers.HandlerForPath(PathPrefix+"/contact", contact, notFound))).ServeHTTP(w, r)
}

func (a *API) listBookings(w http.ResponseWriter, r *http.Request) {
	a.lock.Lock()
	items := append([]ldvalue.Value(nil), a.ForeignBookings...)
	if !a.HideBookings {
		items = append(items, a.bookings...)
	}
	a.lock.Unlock()
	httphelpers.HandlerWithJSONResponse(ldvalue.ArrayOf(items...), nil).ServeHTTP(w, r)
}

func (a *API) createBooking(w http.ResponseWriter, r *http.Request) {
	props, ok := a.readEntity(w, r, requiredBookingFields)
	if !ok {
		return
	}
	props["status"] = ldvalue.String("pending")
	if _, ok := props["message"]; !ok {
		props["message"] = ldvalue.Null()
	}

	a.lock.Lock()
	booking := a.newEntity(props)
	a.bookings = append(a.bookings, booking)
	a.lock.Unlock()

	httphelpers.HandlerWithJSONResponse(a.omit(booking), nil).ServeHTTP(w, r)
}

func (a *API) createContact(w http.ResponseWriter, r *http.Request) {
	props, ok := a.readEntity(w, r, requiredContactFields)
	if !ok {
		return
	}
	a.lock.Lock()
	contact := a.newEntity(props)
	a.lock.Unlock()

	httphelpers.HandlerWithJSONResponse(a.omit(contact), nil).ServeHTTP(w, r)
}

// readEntity parses a request body and checks that it has the required properties. If not, it
// writes a validation error response and returns false.
func (a *API) readEntity(w http.ResponseWriter, r *http.Request, required []string) (map[string]ldvalue.Value, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		httphelpers.HandlerWithStatus(http.StatusBadRequest).ServeHTTP(w, r)
		return nil, false
	}
	var props map[string]ldvalue.Value
	if err := json.Unmarshal(body, &props); err != nil {
		httphelpers.HandlerWithStatus(http.StatusBadRequest).ServeHTTP(w, r)
		return nil, false
	}
	var problems []ldvalue.Value
	for _, f := range required {
		if _, ok := props[f]; !ok {
			problems = append(problems, ldvalue.ObjectBuild().
				Set("loc", ldvalue.ArrayOf(ldvalue.String("body"), ldvalue.String(f))).
				Set("msg", ldvalue.String("field required")).
				Build())
		}
	}
	if len(problems) > 0 {
		status := http.StatusUnprocessableEntity
		if a.ValidationStatus != 0 {
			status = a.ValidationStatus
		}
		body := ldvalue.ObjectBuild().Set("detail", ldvalue.ArrayOf(problems...)).Build()
		httphelpers.HandlerWithResponse(status, jsonHeaders, []byte(body.JSONString())).ServeHTTP(w, r)
		return nil, false
	}
	return props, true
}

// newEntity must be called with the lock held.
func (a *API) newEntity(props map[string]ldvalue.Value) ldvalue.Value {
	a.lastID++
	b := ldvalue.ObjectBuild()
	for k, v := range props {
		b.Set(k, v)
	}
	b.Set("id", ldvalue.String(strconv.Itoa(a.lastID)))
	b.Set("created_at", ldvalue.String(time.Now().UTC().Format(time.RFC3339)))
	return b.Build()
}

func (a *API) omit(entity ldvalue.Value) ldvalue.Value {
	if len(a.OmitFields) == 0 {
		return entity
	}
	b := ldvalue.ObjectBuild()
	for _, k := range entity.Keys() {
		if !contains(a.OmitFields, k) {
			b.Set(k, entity.GetByKey(k))
		}
	}
	return b.Build()
}

func contains(ss []string, s string) bool {
	for _, x := range ss {
		if x == s {
			return true
		}
	}
	return false
}
