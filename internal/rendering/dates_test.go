package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "january", input: "2020-01", want: "January 2020"},
		{name: "december", input: "1999-12", want: "December 1999"},
		{name: "empty", input: "", want: ""},
		{name: "not stored form", input: "Spring 2020", want: "Spring 2020"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDate(tt.input))
		})
	}
}

func TestFormatDateRange(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  string
	}{
		{name: "empty end is present", start: "2020-01", end: "", want: "January 2020 - Present"},
		{name: "present sentinel", start: "2020-01", end: "Present", want: "January 2020 - Present"},
		{name: "closed range", start: "2016-09", end: "2020-05", want: "September 2016 - May 2020"},
		{name: "empty start", start: "", end: "2020-05", want: ""},
		{name: "empty start and present", start: "", end: "Present", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDateRange(tt.start, tt.end))
		})
	}
}
