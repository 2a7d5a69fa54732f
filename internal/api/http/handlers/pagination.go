package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clubhub/club-service/internal/api/dto"
)

// parsePage normalizes the page/pageSize query parameters.
func parsePage(c *fiber.Ctx) dto.Page {
	return dto.NormalizePage(
		c.QueryInt("page", dto.DefaultPage),
		c.QueryInt("pageSize", dto.DefaultPageSize),
	)
}

// pageResponse is the uniform paginated list envelope.
func pageResponse(data any, page dto.Page, total int64) fiber.Map {
	return fiber.Map{
		"data":     data,
		"page":     page.Page,
		"pageSize": page.PageSize,
		"total":    total,
	}
}
