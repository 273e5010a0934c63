package httpstatus_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/httpstatus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStatuses() []httpstatus.Status {
	return []httpstatus.Status{
		{Code: "100", Phrase: "Continue", Description: "interim response"},
		{Code: "100", Phrase: "Continue", Description: "informational variant"},
		{Code: "200", Phrase: "OK", Description: "foobar"},
		{Code: "404", Phrase: "Not Found", Description: "did not find a current representation"},
		{Code: "500", Phrase: "Internal Server Error", Description: "unexpected condition"},
	}
}

func TestFindByCode(t *testing.T) {
	t.Parallel()

	t.Run("returns matching status", func(t *testing.T) {
		t.Parallel()

		found, err := httpstatus.FindByCode(testStatuses(), "404")

		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Not Found", found[0].Phrase)
	})

	t.Run("returns all duplicates in dataset order", func(t *testing.T) {
		t.Parallel()

		found, err := httpstatus.FindByCode(testStatuses(), "100")

		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.Equal(t, "interim response", found[0].Description)
		assert.Equal(t, "informational variant", found[1].Description)
	})

	t.Run("does not match phrase", func(t *testing.T) {
		t.Parallel()

		_, err := httpstatus.FindByCode(testStatuses(), "OK")

		require.Error(t, err)
		assert.Equal(t, httpstatus.ENOTFOUND, httpstatus.ErrorCode(err))
	})

	t.Run("does not normalize input", func(t *testing.T) {
		t.Parallel()

		_, err := httpstatus.FindByCode(testStatuses(), " 404")

		assert.Equal(t, httpstatus.ENOTFOUND, httpstatus.ErrorCode(err))
	})

	t.Run("returns not found for empty dataset", func(t *testing.T) {
		t.Parallel()

		_, err := httpstatus.FindByCode(nil, "200")

		require.Error(t, err)
		assert.Equal(t, httpstatus.ENOTFOUND, httpstatus.ErrorCode(err))
		assert.Equal(t, httpstatus.NotFoundMessage, httpstatus.ErrorMessage(err))
	})

	t.Run("returns exactly the subset with equal code", func(t *testing.T) {
		t.Parallel()

		statuses := testStatuses()
		for _, code := range []string{"100", "200", "404", "500"} {
			found, err := httpstatus.FindByCode(statuses, code)
			require.NoError(t, err)

			var want []httpstatus.Status
			for _, s := range statuses {
				if s.Code == code {
					want = append(want, s)
				}
			}
			assert.Equal(t, want, found, "code %s", code)
		}
	})
}

func TestFindByKeyword(t *testing.T) {
	t.Parallel()

	t.Run("matches description substring", func(t *testing.T) {
		t.Parallel()

		found, err := httpstatus.FindByKeyword(testStatuses(), "foo")

		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "200", found[0].Code)
	})

	t.Run("returns not found when nothing contains keyword", func(t *testing.T) {
		t.Parallel()

		_, err := httpstatus.FindByKeyword(testStatuses(), "bar2")

		require.Error(t, err)
		assert.Equal(t, httpstatus.ENOTFOUND, httpstatus.ErrorCode(err))
	})

	t.Run("matches phrase", func(t *testing.T) {
		t.Parallel()

		found, err := httpstatus.FindByKeyword(testStatuses(), "OK")

		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "200", found[0].Code)
	})

	t.Run("matches code substring in dataset order", func(t *testing.T) {
		t.Parallel()

		found, err := httpstatus.FindByKeyword(testStatuses(), "0")

		require.NoError(t, err)
		assert.Equal(t, testStatuses(), found)
	})

	t.Run("is case-sensitive", func(t *testing.T) {
		t.Parallel()

		_, err := httpstatus.FindByKeyword(testStatuses(), "FOOBAR")

		assert.Equal(t, httpstatus.ENOTFOUND, httpstatus.ErrorCode(err))
	})

	t.Run("returns not found for empty dataset", func(t *testing.T) {
		t.Parallel()

		_, err := httpstatus.FindByKeyword([]httpstatus.Status{}, "")

		assert.Equal(t, httpstatus.ENOTFOUND, httpstatus.ErrorCode(err))
	})

	t.Run("every result contains keyword and none is missed", func(t *testing.T) {
		t.Parallel()

		statuses := testStatuses()
		for _, keyword := range []string{"Continue", "e", "5", "current", "zzz"} {
			found, _ := httpstatus.FindByKeyword(statuses, keyword)

			var want []httpstatus.Status
			for _, s := range statuses {
				if strings.Contains(s.Code, keyword) ||
					strings.Contains(s.Phrase, keyword) ||
					strings.Contains(s.Description, keyword) {
					want = append(want, s)
				}
			}
			assert.Equal(t, want, found, "keyword %q", keyword)
		}
	})
}

func TestListAll(t *testing.T) {
	t.Parallel()

	statuses := testStatuses()

	assert.Equal(t, testStatuses(), httpstatus.ListAll(statuses))
}

func TestFindStatuses(t *testing.T) {
	t.Parallel()

	t.Run("lists all without filter", func(t *testing.T) {
		t.Parallel()

		found, err := httpstatus.FindStatuses(testStatuses(), httpstatus.StatusFilter{})

		require.NoError(t, err)
		assert.Equal(t, testStatuses(), found)
	})

	t.Run("filters by code", func(t *testing.T) {
		t.Parallel()

		code := "500"
		found, err := httpstatus.FindStatuses(testStatuses(), httpstatus.StatusFilter{Code: &code})

		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Internal Server Error", found[0].Phrase)
	})

	t.Run("keyword takes precedence over code", func(t *testing.T) {
		t.Parallel()

		code := "500"
		keyword := "foo"
		found, err := httpstatus.FindStatuses(testStatuses(), httpstatus.StatusFilter{Code: &code, Keyword: &keyword})

		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "200", found[0].Code)
	})

	t.Run("does not mutate input", func(t *testing.T) {
		t.Parallel()

		statuses := testStatuses()
		keyword := "Continue"
		_, err := httpstatus.FindStatuses(statuses, httpstatus.StatusFilter{Keyword: &keyword})

		require.NoError(t, err)
		assert.Equal(t, testStatuses(), statuses)
	})
}
