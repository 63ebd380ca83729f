package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Lewis3ai/INFOA1test/config"
	"github.com/Lewis3ai/INFOA1test/repositories"
	"github.com/Lewis3ai/INFOA1test/routes"
	"github.com/Lewis3ai/INFOA1test/services"
	"github.com/Lewis3ai/INFOA1test/utils"
	"github.com/Lewis3ai/INFOA1test/utils/redislog"
)

func main() {
	// 1) Load config from file and/or env.
	cfg := config.Load()
	log.Printf("[boot] %s starting in %s on :%s", cfg.AppName, cfg.Env, cfg.HTTPPort)

	// 2) Initialize infrastructure (DB and Redis).
	db := config.InitDB(cfg)
	rdb := config.InitRedis(cfg)

	// 3) Build the Redis logger (list key: logs:pokeapi).
	rlog := redislog.New(rdb, "logs:pokeapi", 1000, 7*24*time.Hour)
	rlog.Info("app boot", map[string]string{
		"env":   cfg.Env,
		"port":  cfg.HTTPPort,
		"redis": cfg.RedisAddr,
	})

	// 4) Construct repositories and services (dependency injection).
	tokens := utils.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL())
	userRepo := repositories.NewUserRepository(db)
	pokemonRepo := repositories.NewPokemonRepository(db)
	collectionRepo := repositories.NewUserPokemonRepository(db)

	authSvc := services.NewAuthService(userRepo, tokens, rlog)
	colSvc := services.NewCollectionService(collectionRepo, pokemonRepo, rdb, rlog)

	// 5) Create the Gin engine and wire routes.
	r := gin.New()
	_ = r.SetTrustedProxies(nil) // trust none (safe default)
	routes.Setup(r, authSvc, colSvc, tokens, cfg.AuthCookie, cfg.TokenTTL(), cfg.CookieSecure())

	// 6) Start the HTTP server; fatal if it fails to bind.
	rlog.Info("http server start", map[string]string{"port": cfg.HTTPPort})
	if err := r.Run(":" + cfg.HTTPPort); err != nil {
		rlog.Error("http server error", map[string]string{"err": err.Error()})
		log.Fatal(err)
	}
}
