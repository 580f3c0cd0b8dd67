package handlers

import (
	"net/http"

	"getapet-backend/internal/middleware"
	"getapet-backend/internal/services"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// RouterOptions carries everything the HTTP surface needs
type RouterOptions struct {
	Users          *UserHandler
	Pets           *PetHandler
	Tokens         *services.TokenService
	PublicDir      string
	FrontendOrigin string
}

// NewRouter builds the chi router with the full route table
func NewRouter(opts RouterOptions) chi.Router {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(corsMiddleware(opts.FrontendOrigin))

	requireAuth := middleware.RequireAuth(opts.Tokens)

	r.Route("/users", func(r chi.Router) {
		r.Post("/register", opts.Users.Register)
		r.Post("/login", opts.Users.Login)
		r.Get("/checkuser", opts.Users.CheckUser)
		r.Get("/{id}", opts.Users.GetUserByID)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Patch("/edit", opts.Users.EditUser)
		})
	})

	r.Route("/pets", func(r chi.Router) {
		r.Get("/", opts.Pets.GetAll)
		r.Get("/{id}", opts.Pets.GetPetByID)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/create", opts.Pets.Create)
			r.Get("/mypets", opts.Pets.GetMyPets)
			r.Get("/myadoptions", opts.Pets.GetMyAdoptions)
			r.Delete("/{id}", opts.Pets.RemovePet)
			r.Patch("/{id}", opts.Pets.UpdatePet)
			r.Patch("/schedule/{id}", opts.Pets.ScheduleVisit)
			r.Patch("/conclude/{id}", opts.Pets.ConcludeAdoption)
		})
	})

	// Uploaded images are public static files
	if opts.PublicDir != "" {
		fs := http.StripPrefix("/images/", http.FileServer(http.Dir(opts.PublicDir+"/images")))
		r.Get("/images/*", fs.ServeHTTP)
	}

	return r
}

// corsMiddleware handles CORS for the configured frontend origin
func corsMiddleware(origin string) func(http.Handler) http.Handler {
	if origin == "" {
		origin = "*"
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
			if origin != "*" {
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			}

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
