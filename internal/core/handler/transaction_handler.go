package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/monapi/ledger/internal/core/logger"
	"github.com/monapi/ledger/internal/core/models"
	"github.com/monapi/ledger/internal/core/usecase"
)

// Response is the uniform envelope every endpoint answers with.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

const (
	msgTransactionNotFound = "Transaction non trouvée"
	msgRouteNotFound       = "Route non trouvée"
	msgTransactionCreated  = "Transaction créée"
	msgTransactionUpdated  = "Transaction mise à jour"
	msgTransactionDeleted  = "Transaction supprimée"
)

type TransactionHandler struct {
	usecase usecase.TransactionUsecase
	log     logger.Logger
}

func NewTransactionHandler(usecase usecase.TransactionUsecase, log logger.Logger) *TransactionHandler {
	return &TransactionHandler{usecase: usecase, log: log}
}

func (h *TransactionHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/health", h.Health).Methods("GET")
	router.HandleFunc("/api/transactions", h.ListTransactions).Methods("GET")
	router.HandleFunc("/api/transactions", h.CreateTransaction).Methods("POST")
	router.HandleFunc("/api/transactions/{id}", h.GetTransaction).Methods("GET")
	router.HandleFunc("/api/transactions/{id}", h.UpdateTransaction).Methods("PUT")
	router.HandleFunc("/api/transactions/{id}", h.DeleteTransaction).Methods("DELETE")
	router.HandleFunc("/api/stats", h.GetStats).Methods("GET")
}

func (h *TransactionHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, Response{Success: true, Message: "API is running"})
}

// NotFound answers requests that matched no route.
func (h *TransactionHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	respondWithError(w, http.StatusNotFound, msgRouteNotFound)
}

func (h *TransactionHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.usecase.List(r.Context())
	if err != nil {
		h.handleOperationError(w, err)
		return
	}

	count := len(transactions)
	respondWithJSON(w, http.StatusOK, Response{Success: true, Count: &count, Data: transactions})
}

func (h *TransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	transaction, err := h.usecase.GetByID(r.Context(), id)
	if err != nil {
		h.handleOperationError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, Response{Success: true, Data: transaction})
}

func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	input, err := h.decodeInput(w, r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.usecase.Create(r.Context(), *input)
	if err != nil {
		h.handleOperationError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, Response{Success: true, Message: msgTransactionCreated, Data: created})
}

func (h *TransactionHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	input, err := h.decodeInput(w, r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.usecase.Update(r.Context(), id, *input)
	if err != nil {
		h.handleOperationError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, Response{Success: true, Message: msgTransactionUpdated, Data: updated})
}

func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.usecase.Delete(r.Context(), id); err != nil {
		h.handleOperationError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, Response{Success: true, Message: msgTransactionDeleted})
}

func (h *TransactionHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.usecase.Stats(r.Context())
	if err != nil {
		h.handleOperationError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, Response{Success: true, Data: stats})
}

// parseID reads the id path variable. A syntactically invalid id cannot
// name an existing record, so it answers 404 like a missing one.
func (h *TransactionHandler) parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := mux.Vars(r)["id"]
	id, err := uuid.Parse(raw)
	if err != nil {
		h.log.Warn("Invalid transaction id", logger.StringField("id", raw))
		respondWithError(w, http.StatusNotFound, msgTransactionNotFound)
		return uuid.Nil, false
	}
	return id, true
}

func (h *TransactionHandler) decodeInput(w http.ResponseWriter, r *http.Request) (*models.TransactionInput, error) {
	var input models.TransactionInput
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.log.Warn("Failed to decode request body", logger.ErrorField("error", err))
		return nil, errors.New("invalid request payload")
	}
	defer r.Body.Close()
	return &input, nil
}

func (h *TransactionHandler) handleOperationError(w http.ResponseWriter, err error) {
	var validationErr *usecase.ValidationError
	switch {
	case errors.As(err, &validationErr):
		respondWithError(w, http.StatusBadRequest, validationErr.Error())
	case errors.Is(err, usecase.ErrTransactionNotFound):
		respondWithError(w, http.StatusNotFound, msgTransactionNotFound)
	default:
		h.log.Error("Failed to process request", logger.ErrorField("error", err))
		respondWithError(w, http.StatusInternalServerError, "Failed to process request")
	}
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, Response{Success: false, Message: message})
}

func respondWithJSON(w http.ResponseWriter, code int, resp Response) {
	body, err := json.Marshal(resp)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"success":false,"message":"Internal Server Error"}`)) // Fallback response
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(body)
}
