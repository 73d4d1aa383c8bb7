package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"megapos_terminal/internal/database"
)

const (
	// Limites par endpoint
	FaceLoginMaxAttempts = 5
	RefreshMaxRequests   = 10 // Rafraîchissements catalogue par minute

	// Durées de cooldown
	FaceLoginCooldown = 2 * time.Minute
	RefreshCooldown   = 1 * time.Minute
)

// FaceLoginRateLimit limite les tentatives de scan facial par poste. Un
// visage non reconnu en boucle ne doit pas marteler le backend.
func FaceLoginRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()
		ip := c.ClientIP()
		key := "face_login_attempts:" + ip

		// Vérifier si le poste est en cooldown
		cooldownKey := "face_login_cooldown:" + ip
		if database.Redis.Exists(ctx, cooldownKey).Val() > 0 {
			ttl := database.Redis.TTL(ctx, cooldownKey).Val()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       fmt.Sprintf("Trop de tentatives de scan. Réessayez dans %d secondes", int(ttl.Seconds())),
				"retry_after": int(ttl.Seconds()),
			})
			c.Abort()
			return
		}

		// Vérifier le nombre de tentatives
		attempts, _ := database.Redis.Get(ctx, key).Int()
		if attempts >= FaceLoginMaxAttempts {
			// Activer le cooldown
			database.Redis.Set(ctx, cooldownKey, "1", FaceLoginCooldown)
			database.Redis.Del(ctx, key)

			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       fmt.Sprintf("Trop de tentatives de scan. Réessayez dans %d minutes", int(FaceLoginCooldown.Minutes())),
				"retry_after": int(FaceLoginCooldown.Seconds()),
			})
			c.Abort()
			return
		}

		c.Next()

		// Scan non reconnu (401) : incrémenter, scan réussi : réinitialiser
		if c.Writer.Status() == http.StatusUnauthorized {
			database.Redis.Incr(ctx, key)
			database.Redis.Expire(ctx, key, FaceLoginCooldown)
		} else if c.Writer.Status() == http.StatusOK {
			database.Redis.Del(ctx, key)
			database.Redis.Del(ctx, cooldownKey)
		}
	}
}

// RefreshRateLimit limite les rafraîchissements manuels du catalogue.
func RefreshRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()
		ip := c.ClientIP()
		key := "catalog_refresh:" + ip

		requests, _ := database.Redis.Get(ctx, key).Int()
		if requests >= RefreshMaxRequests {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Trop de rafraîchissements. Réessayez dans 1 minute",
				"retry_after": 60,
			})
			c.Abort()
			return
		}

		// Incrémenter le compteur
		pipe := database.Redis.Pipeline()
		pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, RefreshCooldown)
		pipe.Exec(ctx)

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", RefreshMaxRequests))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", RefreshMaxRequests-requests-1))

		c.Next()
	}
}
