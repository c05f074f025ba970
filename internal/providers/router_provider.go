package providers

import (
	"net/http"

	"github.com/gorilla/mux"

	"arenastreams/internal/structures"
)

type RouterProviderInterface interface {
	Get(url string, handler http.Handler)
	Post(url string, handler http.Handler)
	Put(url string, handler http.Handler)
	Delete(url string, handler http.Handler)
	Use(mw func(http.Handler) http.Handler)
	Handler() http.Handler
	GetRoutes() []structures.Route
}

// RouterProvider registers method-scoped routes on a gorilla mux. Path
// variables ({slug}, {id}) are extracted by the handlers via mux.Vars.
type RouterProvider struct {
	router *mux.Router
	routes []structures.Route
}

func NewRouterProvider() RouterProviderInterface {
	return &RouterProvider{router: mux.NewRouter()}
}

func (rp *RouterProvider) handle(method, url string, handler http.Handler) {
	rp.router.Handle(url, handler).Methods(method)
	rp.routes = append(rp.routes, structures.Route{
		Method:  method,
		Url:     url,
		Handler: handler,
	})
}

func (rp *RouterProvider) Get(url string, handler http.Handler) {
	rp.handle(http.MethodGet, url, handler)
}

func (rp *RouterProvider) Post(url string, handler http.Handler) {
	rp.handle(http.MethodPost, url, handler)
}

func (rp *RouterProvider) Put(url string, handler http.Handler) {
	rp.handle(http.MethodPut, url, handler)
}

func (rp *RouterProvider) Delete(url string, handler http.Handler) {
	rp.handle(http.MethodDelete, url, handler)
}

// Use attaches middleware inside the router, after route matching, so the
// middleware can read the matched route template.
func (rp *RouterProvider) Use(mw func(http.Handler) http.Handler) {
	rp.router.Use(mux.MiddlewareFunc(mw))
}

func (rp *RouterProvider) Handler() http.Handler {
	return rp.router
}

func (rp *RouterProvider) GetRoutes() []structures.Route {
	return rp.routes
}
