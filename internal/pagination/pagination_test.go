package pagination

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func parseVia(t *testing.T, url string) Params {
	t.Helper()

	var got Params
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		got = Parse(c)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", url, nil))
	if err != nil {
		t.Fatalf("Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	return got
}

func TestParseDefaults(t *testing.T) {
	got := parseVia(t, "/")
	if got.Skip != 0 || got.Take != DefaultTake {
		t.Fatalf("expected defaults 0/%d, got %d/%d", DefaultTake, got.Skip, got.Take)
	}
}

func TestParseExplicit(t *testing.T) {
	got := parseVia(t, "/?skip=20&take=5")
	if got.Skip != 20 || got.Take != 5 {
		t.Fatalf("expected 20/5, got %d/%d", got.Skip, got.Take)
	}
}

func TestParseCapsTake(t *testing.T) {
	got := parseVia(t, "/?take=10000")
	if got.Take != MaxTake {
		t.Fatalf("expected take capped at %d, got %d", MaxTake, got.Take)
	}
}

func TestParseNegativeValues(t *testing.T) {
	got := parseVia(t, "/?skip=-3&take=-1")
	if got.Skip != 0 || got.Take != DefaultTake {
		t.Fatalf("expected negatives to fall back to 0/%d, got %d/%d", DefaultTake, got.Skip, got.Take)
	}
}

func TestPageEnvelope(t *testing.T) {
	page := Params{Skip: 10, Take: 25}.Page(137)

	raw, err := json.Marshal(page)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"total":137,"skip":10,"take":25}`
	if string(raw) != want {
		t.Fatalf("expected %s, got %s", want, raw)
	}
}
