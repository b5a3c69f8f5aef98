package http

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"github.com/jhoicas/catalogo-inventario/internal/application/dto"
)

const limiterTTL = 5 * time.Minute

// RateLimit aplica un token bucket por IP de cliente. perSecond <= 0 deshabilita el límite.
func RateLimit(perSecond float64, burst int) fiber.Handler {
	if perSecond <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	type bucket struct {
		lim *rate.Limiter
		ts  time.Time
	}
	var (
		mu        sync.Mutex
		buckets   = make(map[string]*bucket)
		lastSweep = time.Now()
	)
	allow := func(ip string) bool {
		mu.Lock()
		defer mu.Unlock()
		now := time.Now()
		if now.Sub(lastSweep) > time.Minute {
			for k, b := range buckets {
				if now.Sub(b.ts) > limiterTTL {
					delete(buckets, k)
				}
			}
			lastSweep = now
		}
		b, ok := buckets[ip]
		if !ok {
			b = &bucket{lim: rate.NewLimiter(rate.Limit(perSecond), burst)}
			buckets[ip] = b
		}
		b.ts = now
		return b.lim.Allow()
	}

	return func(c *fiber.Ctx) error {
		ip := c.IP()
		if ip == "" {
			ip = "unknown"
		}
		if !allow(ip) {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{Code: "RATE_LIMITED", Message: "demasiadas peticiones, intente más tarde"})
		}
		return c.Next()
	}
}
