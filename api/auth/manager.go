package auth

import (
	"bcspace_server/services"
	"bcspace_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type AuthRoutesManager struct {
	logger       *gecho.Logger
	cfg          *structs.Config
	authService  *services.AuthService
	cacheService *services.CacheService
}

func NewAuthRoutesManager(
	logger *gecho.Logger,
	cfg *structs.Config,
	authService *services.AuthService,
	cacheService *services.CacheService,
) *AuthRoutesManager {
	return &AuthRoutesManager{
		logger:       logger,
		cfg:          cfg,
		authService:  authService,
		cacheService: cacheService,
	}
}

func (arm *AuthRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", arm.HandleLogin)
		r.Post("/logout", arm.HandleLogout)
		r.Get("/me", arm.HandleMe)
	})
}
