package items

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Lelo88/items-web-golang/internal/httpx"
)

// ServiceAPI define lo que los handlers necesitan.
// Permite testear handlers con stubs sin tocar DB.
type ServiceAPI interface {
	Create(ctx context.Context, input CreateItemInput) (Item, error)
	List(ctx context.Context) ([]Item, error)
	Get(ctx context.Context, id int) (*Item, error)
	Update(ctx context.Context, id int, input UpdateItemInput) (*Item, error)
	Delete(ctx context.Context, id int) (bool, error)
}

// Handler HTTP JSON para items.
// Solo traduce HTTP <-> dominio (service).
type Handler struct {
	service ServiceAPI
}

// NewHandler crea un handler de items.
func NewHandler(service ServiceAPI) *Handler {
	return &Handler{service: service}
}

// parseID valida que el id del path sea entero; en DB es serial.
func parseID(request *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(request, "id"))
	if err != nil {
		return 0, false
	}
	return id, true
}

// Create maneja POST /api/items.
func (handler *Handler) Create(writer http.ResponseWriter, request *http.Request) {
	var input CreateItemInput
	if err := json.NewDecoder(request.Body).Decode(&input); err != nil {
		httpx.Fail(writer, request, http.StatusBadRequest, "invalid_json", "invalid JSON body")
		return
	}

	item, err := handler.service.Create(request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, ErrorInvalidInput):
			httpx.Fail(writer, request, http.StatusBadRequest, "invalid_input", "invalid input data")
		default:
			// No filtramos detalles internos.
			httpx.Fail(writer, request, http.StatusInternalServerError, "internal_error", "unexpected error")
		}
		return
	}

	httpx.OK(writer, request, http.StatusCreated, item)
}

// List maneja GET /api/items. Devuelve todo, ordenado por id.
func (handler *Handler) List(writer http.ResponseWriter, request *http.Request) {
	list, err := handler.service.List(request.Context())
	if err != nil {
		httpx.Fail(writer, request, http.StatusInternalServerError, "internal_error", "unexpected error")
		return
	}

	httpx.OK(writer, request, http.StatusOK, map[string]any{"items": list})
}

// GetByID maneja GET /api/items/{id}.
func (handler *Handler) GetByID(writer http.ResponseWriter, request *http.Request) {
	id, ok := parseID(request)
	if !ok {
		httpx.Fail(writer, request, http.StatusBadRequest, "invalid_id", "id must be an integer")
		return
	}

	item, err := handler.service.Get(request.Context(), id)
	if err != nil {
		httpx.Fail(writer, request, http.StatusInternalServerError, "internal_error", "unexpected error")
		return
	}
	if item == nil {
		httpx.Fail(writer, request, http.StatusNotFound, "not_found", "item not found")
		return
	}

	httpx.OK(writer, request, http.StatusOK, item)
}

// Patch maneja PATCH /api/items/{id}.
// Campos ausentes del body conservan su valor actual; un body vacío
// ({}) es válido y devuelve la fila sin cambios.
func (handler *Handler) Patch(writer http.ResponseWriter, request *http.Request) {
	id, ok := parseID(request)
	if !ok {
		httpx.Fail(writer, request, http.StatusBadRequest, "invalid_id", "id must be an integer")
		return
	}

	var input UpdateItemInput
	if err := json.NewDecoder(request.Body).Decode(&input); err != nil {
		httpx.Fail(writer, request, http.StatusBadRequest, "invalid_json", "invalid JSON body")
		return
	}

	item, err := handler.service.Update(request.Context(), id, input)
	if err != nil {
		switch {
		case errors.Is(err, ErrorInvalidInput):
			httpx.Fail(writer, request, http.StatusBadRequest, "invalid_input", "invalid input data")
		default:
			httpx.Fail(writer, request, http.StatusInternalServerError, "internal_error", "unexpected error")
		}
		return
	}
	if item == nil {
		httpx.Fail(writer, request, http.StatusNotFound, "not_found", "item not found")
		return
	}

	httpx.OK(writer, request, http.StatusOK, item)
}

// Delete maneja DELETE /api/items/{id}.
func (handler *Handler) Delete(writer http.ResponseWriter, request *http.Request) {
	id, ok := parseID(request)
	if !ok {
		httpx.Fail(writer, request, http.StatusBadRequest, "invalid_id", "id must be an integer")
		return
	}

	deleted, err := handler.service.Delete(request.Context(), id)
	if err != nil {
		httpx.Fail(writer, request, http.StatusInternalServerError, "internal_error", "unexpected error")
		return
	}
	if !deleted {
		httpx.Fail(writer, request, http.StatusNotFound, "not_found", "item not found")
		return
	}

	// 204 No Content: respuesta vacía.
	writer.WriteHeader(http.StatusNoContent)
}
