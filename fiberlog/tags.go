package fiberlog

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	TagStatus  = "status"
	TagLatency = "latency"
	TagMethod  = "method"
	TagPath    = "path"
	TagIP      = "ip"
	TagPid     = "pid"
)

// FuncTag resolves one log field value for a finished request.
type FuncTag func(c *fiber.Ctx, d *data) interface{}

type data struct {
	pid   int
	start time.Time
	end   time.Time
}

var funcTags = map[string]FuncTag{
	TagStatus: func(c *fiber.Ctx, d *data) interface{} {
		return c.Response().StatusCode()
	},
	TagLatency: func(c *fiber.Ctx, d *data) interface{} {
		return d.end.Sub(d.start).String()
	},
	TagMethod: func(c *fiber.Ctx, d *data) interface{} {
		return c.Method()
	},
	TagPath: func(c *fiber.Ctx, d *data) interface{} {
		return c.Path()
	},
	TagIP: func(c *fiber.Ctx, d *data) interface{} {
		return c.IP()
	},
	TagPid: func(c *fiber.Ctx, d *data) interface{} {
		return d.pid
	},
}

// getFuncTagMap keeps only the resolvers for the configured tags.
func getFuncTagMap(cfg Config, d *data) map[string]FuncTag {
	ftm := make(map[string]FuncTag, len(cfg.Tags))
	for _, tag := range cfg.Tags {
		if ft, ok := funcTags[tag]; ok {
			ftm[tag] = ft
		}
	}
	return ftm
}
