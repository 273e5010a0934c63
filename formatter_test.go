package httpstatus_test

import (
	"testing"

	"github.com/fwojciec/httpstatus"
	"github.com/stretchr/testify/assert"
)

func TestFormatStatuses(t *testing.T) {
	t.Parallel()

	t.Run("formats single status as four lines", func(t *testing.T) {
		t.Parallel()

		statuses := []httpstatus.Status{
			{
				Code:        "404",
				Phrase:      "Not Found",
				Description: "indicates that the origin server did not find a current representation.",
				SpecTitle:   "RFC7231#6.5.4",
				SpecHref:    "http://tools.ietf.org/html/rfc7231#section-6.5.4",
			},
		}

		result := httpstatus.FormatStatuses(statuses)

		expected := "404 Not Found\n" +
			"indicates that the origin server did not find a current representation.\n" +
			"RFC7231#6.5.4 (http://tools.ietf.org/html/rfc7231#section-6.5.4)\n" +
			"\n"
		assert.Equal(t, expected, result)
	})

	t.Run("formats multiple statuses in order", func(t *testing.T) {
		t.Parallel()

		statuses := []httpstatus.Status{
			{Code: "200", Phrase: "OK", Description: "first", SpecTitle: "A", SpecHref: "a"},
			{Code: "201", Phrase: "Created", Description: "second", SpecTitle: "B", SpecHref: "b"},
		}

		result := httpstatus.FormatStatuses(statuses)

		expected := "200 OK\nfirst\nA (a)\n\n201 Created\nsecond\nB (b)\n\n"
		assert.Equal(t, expected, result)
	})

	t.Run("returns empty string for nil slice", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, httpstatus.FormatStatuses(nil))
	})
}
