package callbacks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	tele "gopkg.in/telebot.v4"
)

func TestParseCallbackData(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		key     string
		payload string
	}{
		{"key only", "\fcat", "cat", ""},
		{"key with payload", "\fcat|Food", "cat", "Food"},
		{"escaped prefix", "\\fexp_sel|42", "exp_sel", "42"},
		{"payload keeps separators", "\fclear_ask|week|extra", "clear_ask", "week|extra"},
		{"empty", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, payload := ParseCallbackData(&tele.Callback{Data: tt.data})
			assert.Equal(t, tt.key, key)
			assert.Equal(t, tt.payload, payload)
		})
	}
}

func TestParseCallbackDataNil(t *testing.T) {
	key, payload := ParseCallbackData(nil)
	assert.Empty(t, key)
	assert.Empty(t, payload)
}
