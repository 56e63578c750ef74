package transport

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"inventory/pkg/inventory/domain/model"
)

const requestIDHeader = "X-Request-ID"

type Inventory interface {
	AddProduct(id int, name string, quantity int, price float64) (model.Product, error)
	FindProduct(id int) (model.Product, error)
	Purchase(id, quantity int) (int, error)
	Sell(id, quantity int) (int, error)
	RemoveProduct(id int) error
	ListProducts() []model.Product
	History() []model.Transaction
}

type productJSON struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type transactionJSON struct {
	ProductID       int    `json:"product_id"`
	Kind            string `json:"kind"`
	QuantityChanged int    `json:"quantity_changed"`
}

type stockChangeJSON struct {
	Quantity int `json:"quantity"`
}

type stockLevelJSON struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

type errorJSON struct {
	Error     string `json:"error"`
	Available *int   `json:"available,omitempty"`
}

type Handler struct {
	inventory Inventory
}

func Router(inventory Inventory) http.Handler {
	handler := &Handler{inventory: inventory}

	r := mux.NewRouter()
	s := r.PathPrefix("/api/v1").Subrouter()

	s.HandleFunc("/products", handler.listProducts).Methods(http.MethodGet)
	s.HandleFunc("/products", handler.addProduct).Methods(http.MethodPost)
	s.HandleFunc("/products/{id:-?[0-9]+}", handler.findProduct).Methods(http.MethodGet)
	s.HandleFunc("/products/{id:-?[0-9]+}", handler.removeProduct).Methods(http.MethodDelete)
	s.HandleFunc("/products/{id:-?[0-9]+}/purchase", handler.purchase).Methods(http.MethodPost)
	s.HandleFunc("/products/{id:-?[0-9]+}/sale", handler.sell).Methods(http.MethodPost)
	s.HandleFunc("/transactions", handler.history).Methods(http.MethodGet)

	return logMiddleware(r)
}

func (h *Handler) listProducts(w http.ResponseWriter, _ *http.Request) {
	products := h.inventory.ListProducts()
	out := make([]productJSON, 0, len(products))
	for _, p := range products {
		out = append(out, toProductJSON(p))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) addProduct(w http.ResponseWriter, r *http.Request) {
	var in productJSON
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, errorJSON{Error: "invalid request body"})
		return
	}

	product, err := h.inventory.AddProduct(in.ID, in.Name, in.Quantity, in.Price)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toProductJSON(product))
}

func (h *Handler) findProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	product, err := h.inventory.FindProduct(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductJSON(product))
}

func (h *Handler) removeProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	if err := h.inventory.RemoveProduct(id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) purchase(w http.ResponseWriter, r *http.Request) {
	h.changeStock(w, r, h.inventory.Purchase)
}

func (h *Handler) sell(w http.ResponseWriter, r *http.Request) {
	h.changeStock(w, r, h.inventory.Sell)
}

func (h *Handler) changeStock(w http.ResponseWriter, r *http.Request, change func(id, quantity int) (int, error)) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	var in stockChangeJSON
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, errorJSON{Error: "invalid request body"})
		return
	}

	quantity, err := change(id, in.Quantity)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stockLevelJSON{ProductID: id, Quantity: quantity})
}

func (h *Handler) history(w http.ResponseWriter, _ *http.Request) {
	transactions := h.inventory.History()
	out := make([]transactionJSON, 0, len(transactions))
	for _, t := range transactions {
		out = append(out, transactionJSON{
			ProductID:       t.ProductID,
			Kind:            t.Kind.String(),
			QuantityChanged: t.QuantityChanged,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func productID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorJSON{Error: "invalid product id"})
		return 0, false
	}
	return id, true
}

func toProductJSON(p model.Product) productJSON {
	return productJSON{ID: p.ID, Name: p.Name, Quantity: p.Quantity, Price: p.Price}
}

func writeError(w http.ResponseWriter, err error) {
	var stockErr *model.InsufficientStockError
	switch {
	case errors.As(err, &stockErr):
		writeJSON(w, http.StatusConflict, errorJSON{Error: err.Error(), Available: &stockErr.Available})
	case errors.Is(err, model.ErrProductNotFound):
		writeJSON(w, http.StatusNotFound, errorJSON{Error: err.Error()})
	case errors.Is(err, model.ErrProductExists):
		writeJSON(w, http.StatusConflict, errorJSON{Error: err.Error()})
	case errors.Is(err, model.ErrInvalidProduct), errors.Is(err, model.ErrInvalidQuantity):
		writeJSON(w, http.StatusBadRequest, errorJSON{Error: err.Error()})
	default:
		log.WithError(err).Error("unexpected inventory error")
		writeJSON(w, http.StatusInternalServerError, errorJSON{Error: "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.WithField("err", err).Error("write response body")
	}
}

func logMiddleware(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, requestID)

		log.WithFields(log.Fields{
			"method":     r.Method,
			"url":        r.URL,
			"remoteAddr": r.RemoteAddr,
			"userAgent":  r.UserAgent(),
			"requestID":  requestID,
		}).Info("got a new request")
		h.ServeHTTP(w, r)
	})
}
