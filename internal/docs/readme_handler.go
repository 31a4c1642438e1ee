package docs

import (
	"bytes"
	"fmt"
	"os"

	"envanter-backend/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/yuin/goldmark"
)

const pageShell = `<html><head><meta charset="utf-8"><title>README</title><style>body { font-family: sans-serif; padding: 2rem; background: #f9f9f9; color: #333; max-width: 800px; margin: auto; line-height: 1.7; } h1, h2 { color: #1e88e5; } pre { background: #eee; padding: 1rem; overflow-x: auto; } code { background: #eee; padding: 0.2rem 0.4rem; border-radius: 4px; }</style></head><body>%s</body></html>`

// GET /
// README.md her istekte diskten okunup HTML'e çevrilir, dosya yoksa 500.
func ReadmeHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		source, err := os.ReadFile(cfg.ReadmePath)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "README.md bulunamadı")
		}

		var buf bytes.Buffer
		if err := goldmark.Convert(source, &buf); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "README.md dönüştürülemedi")
		}

		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.SendString(fmt.Sprintf(pageShell, buf.String()))
	}
}
