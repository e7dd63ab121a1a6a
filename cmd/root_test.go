package cmd

import (
	"testing"
)

func TestColorMode(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
		want    colorMode
	}{
		{
			name:    "auto",
			value:   "auto",
			wantErr: false,
			want:    colorAuto,
		},
		{
			name:    "always",
			value:   "always",
			wantErr: false,
			want:    colorAlways,
		},
		{
			name:    "never",
			value:   "never",
			wantErr: false,
			want:    colorNever,
		},
		{
			name:    "invalid value",
			value:   "invalid",
			wantErr: true,
		},
		{
			name:    "empty string",
			value:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c colorMode
			err := c.Set(tt.value)

			if tt.wantErr {
				if err == nil {
					t.Errorf("colorMode.Set(%q) expected error, got nil", tt.value)
				}
				return
			}

			if err != nil {
				t.Errorf("colorMode.Set(%q) unexpected error: %v", tt.value, err)
				return
			}

			if c != tt.want {
				t.Errorf("colorMode.Set(%q) = %v, want %v", tt.value, c, tt.want)
			}

			// Test String() method
			if c.String() != tt.value {
				t.Errorf("colorMode.String() = %q, want %q", c.String(), tt.value)
			}

			// Test Type() method
			if c.Type() != "colorMode" {
				t.Errorf("colorMode.Type() = %q, want %q", c.Type(), "colorMode")
			}
		})
	}
}
