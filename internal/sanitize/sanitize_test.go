package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainText(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain text unchanged", input: "졸업 축하해!", want: "졸업 축하해!"},
		{name: "tags stripped", input: "<b>hello</b>", want: "hello"},
		{name: "script stripped", input: "<script>alert(1)</script>hi", want: "hi"},
		{name: "ampersand survives", input: "me & you", want: "me & you"},
		{name: "empty", input: "", want: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, PlainText(tc.input))
		})
	}
}
