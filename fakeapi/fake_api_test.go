package fakeapi

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/tribalxperience/api-smoke-tests/framework"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withClient(api *API, action func(*framework.APIClient)) {
	httphelpers.WithServer(api, func(server *httptest.Server) {
		action(framework.NewAPIClient(BaseURL(server.URL), 0, nil))
	})
}

func TestRouting(t *testing.T) {
	withClient(New(), func(client *framework.APIClient) {
		ctx := context.Background()

		resp, err := client.Get(ctx, "/")
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.JSONEq(t, `{"message":"Tribal Xperience API"}`, resp.Text())

		resp, err = client.Get(ctx, "/contact")
		require.NoError(t, err)
		assert.Equal(t, 405, resp.StatusCode)

		resp, err = client.Get(ctx, "/nowhere")
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})
}

func TestCreateAndListBookings(t *testing.T) {
	api := New()
	withClient(api, func(client *framework.APIClient) {
		ctx := context.Background()

		resp, err := client.Get(ctx, "/bookings")
		require.NoError(t, err)
		assert.Equal(t, "[]", resp.Text())

		resp, err = client.PostJSON(ctx, "/bookings", map[string]string{
			"name": "a", "email": "b", "phone": "c", "experience_type": "d", "preferred_date": "e",
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		created, err := resp.JSON()
		require.NoError(t, err)
		assert.Equal(t, "1", created.GetByKey("id").StringValue())
		assert.Equal(t, "pending", created.GetByKey("status").StringValue())

		resp, err = client.Get(ctx, "/bookings")
		require.NoError(t, err)
		list, err := resp.JSON()
		require.NoError(t, err)
		assert.Equal(t, 1, list.Count())
		assert.Len(t, api.Bookings(), 1)
	})
}

func TestInvalidBookingIsRejected(t *testing.T) {
	withClient(New(), func(client *framework.APIClient) {
		resp, err := client.PostJSON(context.Background(), "/bookings", map[string]string{"name": "x"})
		require.NoError(t, err)
		assert.Equal(t, 422, resp.StatusCode)
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
		body, err := resp.JSON()
		require.NoError(t, err)
		assert.Equal(t, 4, body.GetByKey("detail").Count())
	})
}
