package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	catalogHTTP "tutorial-api/internal/catalog/delivery/http"
	catalogUC "tutorial-api/internal/catalog/usecase"
	itemHTTP "tutorial-api/internal/item/delivery/http"
	itemRepo "tutorial-api/internal/item/repository/memory"
	itemUC "tutorial-api/internal/item/usecase"
	userHTTP "tutorial-api/internal/user/delivery/http"
	userUC "tutorial-api/internal/user/usecase"
)

// setupItemDomain wires the item demos on top of the in-memory sample store.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(..., srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(repo, srv.l)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(r, h)
func (srv HTTPServer) setupItemDomain(ctx context.Context, r gin.IRouter) error {
	repo := itemRepo.New(nil, srv.l)
	uc := itemUC.New(repo, srv.l)
	h := itemHTTP.New(srv.l, uc)
	itemHTTP.RegisterRoutes(r, h)

	srv.l.Infof(ctx, "Item domain registered")
	return nil
}

func (srv HTTPServer) setupCatalogDomain(ctx context.Context, r gin.IRouter) error {
	uc := catalogUC.New(srv.l)
	h := catalogHTTP.New(srv.l, uc)
	catalogHTTP.RegisterRoutes(r, h)

	srv.l.Infof(ctx, "Catalog domain registered")
	return nil
}

func (srv HTTPServer) setupUserDomain(ctx context.Context, r gin.IRouter) error {
	uc := userUC.New(srv.l)
	h := userHTTP.New(srv.l, uc)
	userHTTP.RegisterRoutes(r, h)

	srv.l.Infof(ctx, "User domain registered")
	return nil
}
