package apitests

import (
	"github.com/stretchr/testify/require"
)

const contactPath = "/contact"

func DoCreateContactTest(t *T) {
	contact := newContactRequest()
	t.Debug("Sending contact message as %q", contact.Name)

	resp := t.postJSON(contactPath, contact)
	require.Equal(t, 200, resp.StatusCode, "Status: %d", resp.StatusCode)

	t.requireFields(t.requireJSON(resp), contactFields)
}
