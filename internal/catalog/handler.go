package catalog

import (
	"net/http"

	"github.com/2beens/gymsphere/internal/auth"
	"github.com/2beens/gymsphere/internal/telemetry/tracing"
	"github.com/2beens/gymsphere/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type ListResponse struct {
	Exercises []Exercise `json:"exercises"`
	Products  []Product  `json:"products"`
}

type Handler struct {
	exercises *ExerciseCatalog
	products  *ProductCatalog
}

func NewHandler(exercises *ExerciseCatalog, products *ProductCatalog) *Handler {
	return &Handler{
		exercises: exercises,
		products:  products,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/admin/catalog", handler.HandleList).Methods("GET", "OPTIONS").Name("admin-catalog")
	router.HandleFunc("/admin/catalog/reload", handler.HandleReload).Methods("POST", "OPTIONS").Name("admin-catalog-reload")
}

func isAdmin(r *http.Request) bool {
	session, ok := auth.SessionFromContext(r.Context())
	return ok && session.IsAdmin
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.list")
	defer span.End()

	if !isAdmin(r) {
		http.Error(w, "admins only", http.StatusForbidden)
		return
	}

	exercises, err := handler.exercises.All(ctx)
	if err != nil {
		log.Errorf("admin catalog, list exercises: %s", err)
		http.Error(w, "failed to get exercises", http.StatusInternalServerError)
		return
	}
	products, err := handler.products.All(ctx)
	if err != nil {
		log.Errorf("admin catalog, list products: %s", err)
		http.Error(w, "failed to get products", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONOK(w, ListResponse{
		Exercises: exercises,
		Products:  products,
	})
}

// HandleReload drops the cached tables so the next read goes to postgres.
func (handler *Handler) HandleReload(w http.ResponseWriter, r *http.Request) {
	if !isAdmin(r) {
		http.Error(w, "admins only", http.StatusForbidden)
		return
	}

	handler.exercises.Invalidate()
	handler.products.Invalidate()
	log.Debugln("catalog cache invalidated")
	pkg.WriteJSONResponseOK(w, `{"status":"ok"}`)
}
