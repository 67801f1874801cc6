package server

import (
	"github.com/russelescultura/sk-barangay-sub000/internal/auth"
	"github.com/russelescultura/sk-barangay-sub000/internal/config"
	"github.com/russelescultura/sk-barangay-sub000/internal/db"
	"github.com/russelescultura/sk-barangay-sub000/internal/event"
	"github.com/russelescultura/sk-barangay-sub000/internal/location"
	"github.com/russelescultura/sk-barangay-sub000/internal/mapview"
	"github.com/russelescultura/sk-barangay-sub000/internal/route"
	"github.com/russelescultura/sk-barangay-sub000/internal/storage"
	"github.com/russelescultura/sk-barangay-sub000/internal/stream"
	"github.com/russelescultura/sk-barangay-sub000/internal/tracker"
	"github.com/russelescultura/sk-barangay-sub000/internal/youth"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	App    *fiber.App
	Cfg    config.Config
	DB     *pgxpool.Pool
	Redis  *redis.Client
	Stream *stream.Hub
}

func NewServer(cfg config.Config, pool *pgxpool.Pool, redisClient *redis.Client) *Server {
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	s := &Server{
		App:    app,
		Cfg:    cfg,
		DB:     pool,
		Redis:  redisClient,
		Stream: stream.NewHub(redisClient),
	}

	registerRoutes(s)
	return s
}

// querier keeps a missing database as a nil interface so services can
// detect it and fall back to seed data.
func (s *Server) querier() db.Querier {
	if s.DB == nil {
		return nil
	}
	return s.DB
}

// routeProviders builds the routing chain in fallback order from
// whatever providers the config enables.
func routeProviders(cfg config.Config) []route.Provider {
	var providers []route.Provider
	if cfg.OSRMURL != "" {
		providers = append(providers, route.NewOSRM(cfg.OSRMURL))
	}
	if cfg.GraphHopperURL != "" {
		providers = append(providers, route.NewGraphHopper(cfg.GraphHopperURL, cfg.GraphHopperKey))
	}
	if cfg.DirectionsURL != "" {
		providers = append(providers, route.NewDirections(cfg.DirectionsURL, cfg.DirectionsKey))
	}
	return providers
}

func registerRoutes(s *Server) {
	s.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	jwtMiddleware := auth.JWTMiddleware(s.Cfg.JWTSecret)
	querier := s.querier()

	locations := location.NewService(querier)
	events := event.NewService(querier)
	youthSvc := youth.NewService(querier)

	cache := route.NewCache(s.Redis, s.Cfg.RouteCacheTTL)
	planner := route.NewPlanner(cache, routeProviders(s.Cfg)...)
	dispatcher := route.NewDispatcher(planner)

	auth.RegisterRoutes(s.App.Group("/auth"), auth.NewService(s.Cfg.JWTSecret, querier))
	location.RegisterRoutes(s.App.Group("/api/locations"), locations, jwtMiddleware)
	event.RegisterRoutes(s.App.Group("/api/events"), events)
	youth.RegisterRoutes(s.App.Group("/api/youth"), youthSvc)
	route.RegisterRoutes(s.App.Group("/api/route"), dispatcher, locations)
	tracker.RegisterRoutes(s.App.Group("/api/geolocation"), tracker.New(s.Stream))
	mapview.RegisterRoutes(s.App.Group("/api/map"), mapview.NewManager(locations, events, youthSvc), jwtMiddleware)
	storage.RegisterRoutes(s.App.Group("/storage"), storage.NewService(querier, s.Cfg.UploadDir), jwtMiddleware)
	stream.RegisterRoutes(s.App.Group("/stream"), s.Stream)

	if s.Cfg.UploadDir != "" {
		s.App.Static("/uploads", s.Cfg.UploadDir)
	}
}
