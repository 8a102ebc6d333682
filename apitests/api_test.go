package apitests

import (
	"testing"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/stretchr/testify/assert"
)

func TestMissingFields(t *testing.T) {
	v := ldvalue.Parse([]byte(`{"id":"1","name":"x","message":null}`))
	assert.Nil(t, missingFields(v, []string{"id", "name", "message"}))
	assert.Equal(t, []string{"email", "created_at"}, missingFields(v, []string{"id", "email", "created_at"}))
}

func TestMissingFieldsOfNonObject(t *testing.T) {
	fields := []string{"id", "name"}
	assert.Equal(t, fields, missingFields(ldvalue.Parse([]byte(`[1,2]`)), fields))
	assert.Equal(t, fields, missingFields(ldvalue.Null(), fields))
}

func TestContainsID(t *testing.T) {
	items := ldvalue.Parse([]byte(`[{"id":"a"},{"id":42},{"name":"no id"}]`))
	assert.True(t, containsID(items, "a"))
	assert.True(t, containsID(items, "42"))
	assert.False(t, containsID(items, "b"))
	assert.False(t, containsID(ldvalue.ArrayOf(), "a"))
}

func TestIDString(t *testing.T) {
	assert.Equal(t, "abc", idString(ldvalue.String("abc")))
	assert.Equal(t, "7", idString(ldvalue.Int(7)))
}
