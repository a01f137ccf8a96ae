package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds the service counters behind a private prometheus registry
// so tests can create isolated instances.
type Registry struct {
	reg *prometheus.Registry

	CartMutations  *prometheus.CounterVec // op, outcome (applied / no-op reason)
	ListMutations  *prometheus.CounterVec // list, outcome
	PersistErrors  prometheus.Counter
	CatalogFetches prometheus.Counter
	OrdersPlaced   prometheus.Counter
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()

	cartMutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_cart_mutations_total",
		Help: "Cart operations, by operation and outcome.",
	}, []string{"op", "outcome"})
	listMutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_list_mutations_total",
		Help: "Wishlist/compare operations, by list and outcome.",
	}, []string{"list", "outcome"})
	persistErrors := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "storefront_persist_errors_total",
		Help: "Failed writes to the persistent store.",
	})
	catalogFetches := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "storefront_catalog_remote_fetches_total",
		Help: "Cache-miss fetches against the remote product API.",
	})
	ordersPlaced := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "storefront_orders_placed_total",
	})

	r.MustRegister(cartMutations, listMutations, persistErrors, catalogFetches, ordersPlaced)
	return &Registry{
		reg:            r,
		CartMutations:  cartMutations,
		ListMutations:  listMutations,
		PersistErrors:  persistErrors,
		CatalogFetches: catalogFetches,
		OrdersPlaced:   ordersPlaced,
	}
}

func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
