package http

import (
	"log"
	"net/http"

	"github.com/go-openapi/runtime/middleware"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/toyshop/internal/domain"
	websocketTransport "github.com/kahvecikaan/toyshop/internal/transport/websocket"
)

// imageFilename restricts uploaded file names to a safe character set
const imageFilename = "{filename:[A-Za-z0-9][A-Za-z0-9._-]*}"

func NewRouter(
	th *ToyHandler,
	ch *CategoryHandler,
	sh *SystemHandler,
	ih *ImageHandler,
	validator *domain.Validation,
	logger hclog.Logger,
	wsh *websocketTransport.Handler,
	corsConfig *CORSConfig,
) http.Handler {
	router := mux.NewRouter()

	mw := NewMiddleware(logger, validator, corsConfig)

	bodyOf := func(newBody func() any, h http.HandlerFunc) http.Handler {
		return mw.ValidationMiddleware(newBody)(h)
	}

	// Root group
	router.HandleFunc("/", sh.Root).Methods(http.MethodGet)
	router.HandleFunc("/health", sh.Health).Methods(http.MethodGet)
	router.HandleFunc("/ws", wsh.HandleWebSocket).Methods(http.MethodGet)

	// Toys; the literal paths are registered before /toys/{slug}
	getRouter := router.Methods(http.MethodGet).Subrouter()
	getRouter.HandleFunc("/toys", th.GetToys)
	getRouter.HandleFunc("/toys/search", th.SearchToys)
	getRouter.HandleFunc("/toys/category/{categoryId}", th.GetToysByCategory)
	getRouter.HandleFunc("/toys/{slug}", th.GetToyBySlug)
	getRouter.HandleFunc("/categories", ch.GetCategories)
	getRouter.HandleFunc("/categories/{slug}", ch.GetToysByCategorySlug)
	getRouter.HandleFunc("/images/{id}/"+imageFilename, ih.GetImage)

	postRouter := router.Methods(http.MethodPost).Subrouter()
	postRouter.Handle("/toys", bodyOf(func() any { return &domain.CreateToyRequest{} }, th.AddToy))
	postRouter.Handle("/categories", bodyOf(func() any { return &domain.CreateCategoryRequest{} }, ch.AddCategory))

	patchRouter := router.Methods(http.MethodPatch).Subrouter()
	patchRouter.Handle("/toys/{id}", bodyOf(func() any { return &domain.UpdateToyRequest{} }, th.UpdateToy))

	putRouter := router.Methods(http.MethodPut).Subrouter()
	putRouter.Handle("/toys/{id}", bodyOf(func() any { return &domain.ReplaceToyRequest{} }, th.ReplaceToy))
	putRouter.HandleFunc("/toys/{id}/image/"+imageFilename, ih.UploadImage)

	for _, sr := range []*mux.Router{getRouter, postRouter, patchRouter, putRouter} {
		sr.Use(mw.ContentTypeMiddleware)
	}

	// Delete route (no request body, so validation middleware not needed)
	router.HandleFunc("/toys/{id}", th.DeleteToy).Methods(http.MethodDelete)

	// OpenAPI document and Redoc UI
	router.HandleFunc("/openapi.yaml", serveOpenAPI).Methods(http.MethodGet)
	docs := middleware.Redoc(middleware.RedocOpts{SpecURL: "/openapi.yaml", Title: "Toy Catalog API"}, nil)
	router.Handle("/docs", docs).Methods(http.MethodGet)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Route not found"})
	})

	recoveryLog := logger.StandardLogger(&hclog.StandardLoggerOptions{ForceLevel: hclog.Error})

	// Logging and CORS wrap the router so that unmatched routes and
	// preflight requests pass through them too
	var h http.Handler = router
	h = mw.CORSMiddleware(h)
	h = mw.LoggingMiddleware(h)
	h = handlers.CompressHandler(h)

	return recovery(recoveryLog)(h)
}

// recovery turns a panicking handler into a 500 instead of a dropped
// connection
func recovery(l *log.Logger) func(http.Handler) http.Handler {
	return handlers.RecoveryHandler(
		handlers.RecoveryLogger(l),
		handlers.PrintRecoveryStack(true),
	)
}
