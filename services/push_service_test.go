package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFcmPayloadEncodesGCMAsString(t *testing.T) {
	raw, err := fcmPayload("New Alert", "over your kcal goal", map[string]string{"type": "warning"})
	require.NoError(t, err)

	// with MessageStructure=json, SNS expects every protocol key to hold a
	// JSON-encoded string, never a nested object
	var envelope map[string]string
	require.NoError(t, json.Unmarshal([]byte(raw), &envelope))
	assert.Equal(t, "over your kcal goal", envelope["default"])

	var gcm struct {
		Notification map[string]string `json:"notification"`
		Data         map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(envelope["GCM"]), &gcm))
	assert.Equal(t, "New Alert", gcm.Notification["title"])
	assert.Equal(t, "over your kcal goal", gcm.Notification["body"])
	assert.Equal(t, "warning", gcm.Data["type"])
}
