package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"storesapi/internal/delivery/http/controllers"
	"storesapi/internal/delivery/http/middleware"
	"storesapi/internal/domain"
)

// Controllers groups the handlers mounted by NewRouter.
type Controllers struct {
	Stores *controllers.StoreController
	Items  *controllers.ItemController
	Tags   *controllers.TagController
	Users  *controllers.UserController
	Health *controllers.HealthController
}

// NewRouter initializes the HTTP router with all application routes. Each route is
// wrapped with the authorization requirement of its operation.
func NewRouter(c Controllers, auth *middleware.Authenticator) *http.ServeMux {
	mux := http.NewServeMux()
	route := func(pattern string, op domain.Operation, h http.HandlerFunc) {
		mux.HandleFunc(pattern, auth.Require(op)(h))
	}

	// Stores
	route("GET /store", domain.OpStoreList, c.Stores.List)
	route("POST /store", domain.OpStoreCreate, c.Stores.Create)
	route("GET /store/{id}", domain.OpStoreRead, c.Stores.Get)
	route("DELETE /store/{id}", domain.OpStoreDelete, c.Stores.Delete)

	// Items
	route("GET /item", domain.OpItemList, c.Items.List)
	route("POST /item", domain.OpItemCreate, c.Items.Create)
	route("GET /item/{id}", domain.OpItemRead, c.Items.Get)
	route("PUT /item/{id}", domain.OpItemUpdate, c.Items.Put)
	route("DELETE /item/{id}", domain.OpItemDelete, c.Items.Delete)

	// Tags
	route("GET /store/{id}/tag", domain.OpTagList, c.Tags.ListByStore)
	route("POST /store/{id}/tag", domain.OpTagCreate, c.Tags.Create)
	route("GET /tag/{id}", domain.OpTagRead, c.Tags.Get)
	route("DELETE /tag/{id}", domain.OpTagDelete, c.Tags.Delete)
	route("POST /item/{item_id}/tag/{tag_id}", domain.OpTagLink, c.Tags.Link)
	route("DELETE /item/{item_id}/tag/{tag_id}", domain.OpTagUnlink, c.Tags.Unlink)

	// Auth and users
	mux.HandleFunc("POST /register", c.Users.Register)
	mux.HandleFunc("POST /login", c.Users.Login)
	route("POST /refresh", domain.OpAuthRefresh, c.Users.Refresh)
	route("POST /logout", domain.OpAuthLogout, c.Users.Logout)
	route("GET /user/{id}", domain.OpUserRead, c.Users.Get)
	route("DELETE /user/{id}", domain.OpUserDelete, c.Users.Delete)

	mux.HandleFunc("GET /healthz", c.Health.Check)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
