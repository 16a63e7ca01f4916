package domain

import (
	"testing"

	"github.com/go-notify-client/internal/pkg/validate"
	"github.com/stretchr/testify/assert"
)

func TestDeleteConfig_Validation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     DeleteConfig
		wantErr bool
	}{
		{"ids", DeleteConfig{IDs: []string{"a"}, Token: "t"}, false},
		{"all without ids", DeleteConfig{DeleteAll: true, Token: "t"}, false},
		{"all with empty ids", DeleteConfig{IDs: []string{}, DeleteAll: true, Token: "t"}, false},
		{"nil ids", DeleteConfig{Token: "t"}, true},
		{"empty ids", DeleteConfig{IDs: []string{}, Token: "t"}, true},
		{"blank id", DeleteConfig{IDs: []string{""}, Token: "t"}, true},
		{"no token", DeleteConfig{DeleteAll: true}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestReadConfig_Validation(t *testing.T) {
	assert.NoError(t, validate.Struct(ReadConfig{IDs: []string{"1"}, Token: "t"}))
	assert.Error(t, validate.Struct(ReadConfig{IDs: []string{}, Token: "t"}))
	assert.Error(t, validate.Struct(ReadConfig{Token: "t"}))
}
