package shared

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type decodeTarget struct {
	Date string `json:"date" validate:"required"`
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "valid", body: `{"date":"2025-01-01"}`},
		{name: "unknown field", body: `{"date":"2025-01-01","extra":1}`, wantErr: true},
		{name: "malformed", body: `{"date":`, wantErr: true},
		{name: "trailing object", body: `{"date":"a"}{"date":"b"}`, wantErr: true},
		{name: "empty", body: ``, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var v decodeTarget
			err := DecodeJSON(r, &v)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "2025-01-01", v.Date)
		})
	}
}

func TestValidateRequest(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateRequest(decodeTarget{Date: "2025-01-01"}))
	assert.Error(t, ValidateRequest(decodeTarget{}))
}
