package pagination

import "github.com/gofiber/fiber/v2"

const (
	DefaultTake = 10
	MaxTake     = 100
)

type Params struct {
	Skip int
	Take int
}

type Page struct {
	Total int64 `json:"total"`
	Skip  int   `json:"skip"`
	Take  int   `json:"take"`
}

// Parse reads skip/take query parameters. Absent or negative values fall
// back to 0/10; take is capped at MaxTake.
func Parse(c *fiber.Ctx) Params {
	skip := c.QueryInt("skip", 0)
	if skip < 0 {
		skip = 0
	}
	take := c.QueryInt("take", DefaultTake)
	if take <= 0 {
		take = DefaultTake
	}
	if take > MaxTake {
		take = MaxTake
	}
	return Params{Skip: skip, Take: take}
}

// Page builds the response envelope metadata. Total reflects the full
// matching set, not the page size.
func (p Params) Page(total int64) Page {
	return Page{Total: total, Skip: p.Skip, Take: p.Take}
}
