package sizeparse

import "testing"

func TestParseBytes(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		// Plain bytes
		{name: "plain number", input: "1024", want: 1024},
		{name: "zero", input: "0", want: 0},
		{name: "bytes suffix", input: "500b", want: 500},
		{name: "bytes uppercase", input: "500B", want: 500},

		// Kilobytes
		{name: "kilobytes", input: "1k", want: 1024},
		{name: "kilobytes kb", input: "10kb", want: 10240},
		{name: "kilobytes uppercase", input: "5K", want: 5120},
		{name: "kilobytes kib", input: "2kib", want: 2048},
		{name: "kilobytes uppercase KB", input: "3KB", want: 3072},

		// Megabytes
		{name: "megabytes", input: "1m", want: 1048576},
		{name: "megabytes mb", input: "5mb", want: 5242880},
		{name: "megabytes uppercase", input: "2M", want: 2097152},
		{name: "megabytes MiB", input: "3MiB", want: 3145728},

		// Gigabytes
		{name: "gigabytes", input: "1g", want: 1073741824},
		{name: "gigabytes gb", input: "2gb", want: 2147483648},
		{name: "gigabytes uppercase", input: "1G", want: 1073741824},
		{name: "gigabytes GiB", input: "1GiB", want: 1073741824},

		// Terabytes
		{name: "terabytes", input: "1t", want: 1099511627776},
		{name: "terabytes tb", input: "2tb", want: 2199023255552},
		{name: "terabytes TiB", input: "1TiB", want: 1099511627776},

		// Petabytes
		{name: "petabytes", input: "1p", want: 1125899906842624},
		{name: "petabytes pb", input: "1pb", want: 1125899906842624},
		{name: "petabytes PiB", input: "1PiB", want: 1125899906842624},

		// Decimal numbers
		{name: "decimal kilobytes", input: "1.5k", want: 1536},
		{name: "decimal megabytes", input: "2.5m", want: 2621440},
		{name: "decimal gigabytes", input: "0.5g", want: 536870912},

		// Whitespace handling
		{name: "leading whitespace", input: "  10m", want: 10485760},
		{name: "trailing whitespace", input: "10m  ", want: 10485760},
		{name: "whitespace around", input: "  10m  ", want: 10485760},
		{name: "whitespace before unit", input: "10 m", want: 10485760},

		// Error cases
		{name: "empty string", input: "", wantErr: true},
		{name: "invalid number", input: "abc", wantErr: true},
		{name: "invalid unit", input: "10x", wantErr: true},
		{name: "negative number", input: "-10m", wantErr: true},
		{name: "just a unit", input: "mb", wantErr: true},
		{name: "multiple decimals", input: "1.5.5m", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBytes(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseBytes(%q) expected error, got nil", tt.input)
				}
				return
			}

			if err != nil {
				t.Errorf("ParseBytes(%q) unexpected error: %v", tt.input, err)
				return
			}

			if got != tt.want {
				t.Errorf("ParseBytes(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}
