package app

import (
	"errors"
	"hbnb-api/auth"
	"hbnb-api/db"
	"hbnb-api/handler"
	"hbnb-api/logger"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// ErrBoundElsewhere is returned when an Extensions value already serving one
// App is asked to bind to another.
var ErrBoundElsewhere = errors.New("extensions already bound to another app")

// Extensions holds the shared handles an App is built on. Redis is nil when
// no REDIS_URL is configured.
type Extensions struct {
	DB     *gorm.DB
	Bcrypt *auth.Hasher
	JWT    *auth.TokenManager
	CORS   *handler.CORS
	Redis  *redis.Client

	app *App
}

func NewExtensions() *Extensions {
	return &Extensions{}
}

// InitApp binds every handle from the app's configuration. Calling it again
// for the same app does nothing.
func (e *Extensions) InitApp(a *App) error {
	if e.app == a {
		return nil
	}
	if e.app != nil {
		return ErrBoundElsewhere
	}

	cfg := a.Config
	gdb, err := db.Open(cfg.DatabaseURL, cfg.Debug)
	if err != nil {
		return err
	}

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		rdb, err = db.NewRedis(cfg.RedisURL)
		if err != nil {
			db.Close(gdb)
			return err
		}
	}

	e.DB = gdb
	e.Redis = rdb
	e.Bcrypt = auth.NewHasher(cfg.BcryptCost)
	e.JWT = auth.NewTokenManager(cfg.JWT.SecretKey, cfg.JWT.AccessTTL)
	e.CORS = handler.NewCORS("/api/", "*")
	e.app = a
	a.Extensions = e

	logger.Log.WithField("cache", rdb != nil).Debug("Extensions initialised")
	return nil
}

// Close releases the database pool and the Redis client.
func (e *Extensions) Close() error {
	var errs []error
	if e.DB != nil {
		errs = append(errs, db.Close(e.DB))
	}
	if e.Redis != nil {
		errs = append(errs, e.Redis.Close())
	}
	return errors.Join(errs...)
}
