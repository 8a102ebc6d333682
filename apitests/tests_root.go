package apitests

import (
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func DoAPIRootTest(t *T) {
	resp := t.get("/")
	require.Equal(t, 200, resp.StatusCode, "Status: %d", resp.StatusCode)

	data := t.requireJSON(resp)
	assert.True(t, data.GetByKey("message").Equal(ldvalue.String(apiRootMessage)),
		"Response: %s", data.JSONString())
}
