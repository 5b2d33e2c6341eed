package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(45, 2, 20)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 20, p.PerPage)
	assert.Equal(t, int64(45), p.Total)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	// halaman terakhir
	last := BuildPaginationFromPage(45, 3, 20)
	assert.False(t, last.HasNext)
	assert.True(t, last.HasPrev)

	// kosong tetap 1 halaman
	empty := BuildPaginationFromPage(0, 1, 20)
	assert.Equal(t, 1, empty.Page)
	assert.Equal(t, 1, empty.TotalPages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrev)

	// input aneh dinormalkan
	weird := BuildPaginationFromPage(10, 0, 0)
	assert.Equal(t, 1, weird.Page)
	assert.Equal(t, 20, weird.PerPage)
}

func TestResolvePaging(t *testing.T) {
	app := fiber.New()
	var got Paging
	app.Get("/items", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, 20, 100)
		return c.SendStatus(fiber.StatusOK)
	})

	run := func(target string) {
		resp, err := app.Test(httptest.NewRequest("GET", target, nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	run("/items?page=3&per_page=10")
	assert.Equal(t, 3, got.Page)
	assert.Equal(t, 10, got.PerPage)
	assert.Equal(t, 20, got.Offset)

	// default
	run("/items")
	assert.Equal(t, 1, got.Page)
	assert.Equal(t, 20, got.PerPage)
	assert.Equal(t, 0, got.Offset)

	// alias ?limit=
	run("/items?limit=5")
	assert.Equal(t, 5, got.PerPage)

	// di-cap ke max
	run("/items?per_page=500")
	assert.Equal(t, 100, got.PerPage)

	// nilai negatif dinormalkan
	run("/items?page=-2&per_page=-1")
	assert.Equal(t, 1, got.Page)
	assert.Equal(t, 20, got.PerPage)
}
