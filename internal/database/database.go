package database

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// --- Variables Globales ---
var Redis *redis.Client

// ConnectDatabases initialise les connexions locales du terminal. Redis est le
// seul stockage propre à la caisse : drapeau d'administration du poste et
// cache du dernier instantané catalogue. Tout le reste vit chez le backend.
func ConnectDatabases() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	connectRedis(ctx)

	log.Println("✅ Toutes les bases de données sont connectées")
}

// =============================================
// REDIS
// =============================================
func connectRedis(ctx context.Context) {
	Redis = redis.NewClient(&redis.Options{
		Addr:     os.Getenv("REDIS_HOST"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
	if err := Redis.Ping(ctx).Err(); err != nil {
		log.Fatal("❌ Erreur connexion Redis:", err)
	}
	log.Println("✅ Connecté à Redis")
}
