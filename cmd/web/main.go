package main

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/aleksanderWitek/simplybank-web/internal/backend"
	"github.com/aleksanderWitek/simplybank-web/internal/config"
	"github.com/aleksanderWitek/simplybank-web/internal/handler"
	"github.com/aleksanderWitek/simplybank-web/internal/logging"
	redisclient "github.com/aleksanderWitek/simplybank-web/internal/redis"
	"github.com/aleksanderWitek/simplybank-web/internal/txview"
	"github.com/aleksanderWitek/simplybank-web/internal/wizard"
)

const entryCacheTTL = 10 * time.Minute

func main() {
	cfg := config.Load()

	logging.Setup(cfg.IsProd)
	logrus.Info("simplybank-web starting")

	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}
	if cfg.SessionSecret == "" {
		logrus.Fatal("SESSION_SECRET environment variable is not set")
	}

	rdb, err := redisclient.Connect(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		logrus.WithError(err).Fatal("redis connect")
	}
	defer rdb.Close()

	api := backend.New(cfg.BackendURL)
	store := wizard.NewRedisStore(rdb)
	entries := redisclient.NewViewCache[[]txview.Entry](rdb, entryCacheTTL)

	h, err := handler.New(api, store, entries)
	if err != nil {
		logrus.WithError(err).Fatal("handler setup")
	}

	router := handler.NewRouter(h, cfg.SessionSecret, cfg.IsProd)

	logrus.WithField("port", cfg.Port).Info("listening")
	if err := router.Run(":" + cfg.Port); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
