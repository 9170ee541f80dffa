package handlers

import (
	"ubermelon/internal/repos"
	"ubermelon/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	MelonHandler    *MelonHandler
	CartHandler     *CartHandler
	AuthHandler     *AuthHandler
	CheckoutHandler *CheckoutHandler
	Auth            *services.AuthService
}

func NewDeps(db *sqlx.DB) *Deps {
	melonRepo := repos.NewMelonRepo(db)
	custRepo := repos.NewCustomerRepo(db)
	sessRepo := repos.NewSessionRepo(db)

	catalogSvc := services.NewCatalogService(melonRepo)
	cartSvc := services.NewCartService(sessRepo, catalogSvc)
	authSvc := services.NewAuthService(custRepo, sessRepo)

	rn := &Renderer{Sessions: sessRepo}

	return &Deps{
		MelonHandler:    &MelonHandler{Catalog: catalogSvc, Renderer: rn},
		CartHandler:     &CartHandler{Cart: cartSvc, Sessions: sessRepo, Renderer: rn},
		AuthHandler:     &AuthHandler{Auth: authSvc, Sessions: sessRepo, Renderer: rn},
		CheckoutHandler: &CheckoutHandler{Sessions: sessRepo},
		Auth:            authSvc,
	}
}
