package httpapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/skarut/landing-api/internal/auth"
	"github.com/skarut/landing-api/internal/store"
)

// Options collects everything the HTTP surface depends on
type Options struct {
	Auther     *auth.Auther
	Banks      store.Banks
	Titles     store.Titles
	Abouts     store.Abouts
	ContextKey string
	AuthScheme string
	Logger     auth.Logger
}

// Server owns the fiber app and route table
type Server struct {
	app    *fiber.App
	logger auth.Logger
}

// New builds the fiber app and registers all routes
func New(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = noopLogger{}
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	// registered ahead of the token gate so preflight requests are answered
	// without credentials
	app.Use(cors.New())

	s := &Server{
		app:    app,
		logger: logger,
	}

	authCtl := &AuthController{
		Auther: opts.Auther,
		Logger: logger,
	}

	contentCtl := &ContentController{
		Banks:  opts.Banks,
		Titles: opts.Titles,
		Abouts: opts.Abouts,
		Logger: logger,
	}

	gate := TokenGate(GateConfig{
		Validator:  opts.Auther.TokenService(),
		ContextKey: opts.ContextKey,
		AuthScheme: opts.AuthScheme,
		Logger:     logger,
	})

	app.Post("/auth/register", authCtl.RegisterPost)
	app.Post("/auth/login", authCtl.LoginPost)

	// public mirrors of the content records
	app.Get("/bank", contentCtl.BankShow)
	app.Get("/title", contentCtl.TitleShow)
	app.Get("/about", contentCtl.AboutShow)

	admin := app.Group("/admin", gate)
	admin.Post("/logout", authCtl.LogoutPost)

	admin.Get("/bank", contentCtl.BankShow)
	admin.Put("/bank", contentCtl.BankUpsert)
	admin.Delete("/bank/:id", contentCtl.BankDelete)

	admin.Get("/title", contentCtl.TitleShow)
	admin.Put("/title", contentCtl.TitleUpsert)
	admin.Delete("/title/:id", contentCtl.TitleDelete)

	admin.Get("/about", contentCtl.AboutShow)
	admin.Put("/about", contentCtl.AboutUpsert)
	admin.Delete("/about/:id", contentCtl.AboutDelete)

	return s
}

// App exposes the fiber app for tests
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen blocks serving requests on addr
func (s *Server) Listen(addr string) error {
	s.logger.Info("http server listening", "addr", addr)
	return s.app.Listen(addr)
}

// Shutdown drains connections and stops the server
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
