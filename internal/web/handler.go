package web

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Lelo88/items-web-golang/internal/items"
)

//go:embed templates/*.html
var templateFS embed.FS

// Handler sirve las vistas HTML de items: listado, alta y edición
// por formulario. Consume el mismo service que la API JSON.
type Handler struct {
	service   items.ServiceAPI
	templates *template.Template
	log       *zap.Logger
}

// NewHandler crea el handler web parseando las plantillas embebidas.
func NewHandler(service items.ServiceAPI, log *zap.Logger) (*Handler, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Handler{service: service, templates: templates, log: log}, nil
}

type listData struct {
	Items []items.Item
}

type formData struct {
	Title  string
	Action string
	Item   *items.Item
}

// Root redirige "/" al listado.
func (handler *Handler) Root(writer http.ResponseWriter, request *http.Request) {
	http.Redirect(writer, request, "/items", http.StatusSeeOther)
}

// List maneja GET /items.
func (handler *Handler) List(writer http.ResponseWriter, request *http.Request) {
	list, err := handler.service.List(request.Context())
	if err != nil {
		handler.serverError(writer, "list items", err)
		return
	}

	handler.render(writer, "list.html", listData{Items: list})
}

// NewForm maneja GET /items/new: formulario vacío.
func (handler *Handler) NewForm(writer http.ResponseWriter, request *http.Request) {
	handler.render(writer, "form.html", formData{
		Title:  "Crear item",
		Action: "/items",
	})
}

// Create maneja POST /items.
func (handler *Handler) Create(writer http.ResponseWriter, request *http.Request) {
	form, err := parseItemForm(request)
	if err != nil {
		http.Error(writer, "datos de formulario inválidos", http.StatusBadRequest)
		return
	}

	input := items.CreateItemInput{
		Name:        form.name,
		Description: form.description,
		Quantity:    form.quantity,
		Price:       form.price,
	}

	if _, err := handler.service.Create(request.Context(), input); err != nil {
		if errors.Is(err, items.ErrorInvalidInput) {
			http.Error(writer, "datos de formulario inválidos", http.StatusBadRequest)
			return
		}
		handler.serverError(writer, "create item", err)
		return
	}

	http.Redirect(writer, request, "/items", http.StatusSeeOther)
}

// EditForm maneja GET /items/{id}/edit: formulario con datos actuales.
func (handler *Handler) EditForm(writer http.ResponseWriter, request *http.Request) {
	id, ok := parseID(request)
	if !ok {
		http.Error(writer, "id inválido", http.StatusBadRequest)
		return
	}

	item, err := handler.service.Get(request.Context(), id)
	if err != nil {
		handler.serverError(writer, "get item", err)
		return
	}
	if item == nil {
		http.Error(writer, "Item no encontrado", http.StatusNotFound)
		return
	}

	handler.render(writer, "form.html", formData{
		Title:  fmt.Sprintf("Editar item #%d", id),
		Action: fmt.Sprintf("/items/%d", id),
		Item:   item,
	})
}

// Update maneja POST /items/{id}.
// El formulario siempre manda name; los campos numéricos vacíos y la
// descripción vacía se tratan como ausentes (conservan el valor actual).
func (handler *Handler) Update(writer http.ResponseWriter, request *http.Request) {
	id, ok := parseID(request)
	if !ok {
		http.Error(writer, "id inválido", http.StatusBadRequest)
		return
	}

	form, err := parseItemForm(request)
	if err != nil {
		http.Error(writer, "datos de formulario inválidos", http.StatusBadRequest)
		return
	}

	input := items.UpdateItemInput{
		Name:        &form.name,
		Description: form.description,
		Quantity:    form.quantity,
		Price:       form.price,
	}

	item, err := handler.service.Update(request.Context(), id, input)
	if err != nil {
		if errors.Is(err, items.ErrorInvalidInput) {
			http.Error(writer, "datos de formulario inválidos", http.StatusBadRequest)
			return
		}
		handler.serverError(writer, "update item", err)
		return
	}
	if item == nil {
		http.Error(writer, "Item no encontrado", http.StatusNotFound)
		return
	}

	http.Redirect(writer, request, "/items", http.StatusSeeOther)
}

// Delete maneja POST /items/{id}/delete.
// Si el item ya no existía igual redirigimos al listado.
func (handler *Handler) Delete(writer http.ResponseWriter, request *http.Request) {
	id, ok := parseID(request)
	if !ok {
		http.Error(writer, "id inválido", http.StatusBadRequest)
		return
	}

	if _, err := handler.service.Delete(request.Context(), id); err != nil {
		handler.serverError(writer, "delete item", err)
		return
	}

	http.Redirect(writer, request, "/items", http.StatusSeeOther)
}

func (handler *Handler) render(writer http.ResponseWriter, name string, data any) {
	writer.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := handler.templates.ExecuteTemplate(writer, name, data); err != nil {
		// A esta altura ya puede haber bytes escritos; solo logueamos.
		handler.log.Error("render template", zap.String("template", name), zap.Error(err))
	}
}

func (handler *Handler) serverError(writer http.ResponseWriter, operation string, err error) {
	handler.log.Error(operation, zap.Error(err))
	http.Error(writer, "error interno", http.StatusInternalServerError)
}

func parseID(request *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(request, "id"))
	if err != nil {
		return 0, false
	}
	return id, true
}

// itemForm es el resultado de parsear el formulario HTML.
// Campo vacío => puntero nil (ausente).
type itemForm struct {
	name        string
	description *string
	quantity    *int
	price       *float64
}

func parseItemForm(request *http.Request) (itemForm, error) {
	if err := request.ParseForm(); err != nil {
		return itemForm{}, err
	}

	form := itemForm{name: strings.TrimSpace(request.PostFormValue("name"))}

	if value := strings.TrimSpace(request.PostFormValue("description")); value != "" {
		form.description = &value
	}

	if value := strings.TrimSpace(request.PostFormValue("quantity")); value != "" {
		quantity, err := strconv.Atoi(value)
		if err != nil {
			return itemForm{}, fmt.Errorf("quantity: %w", err)
		}
		form.quantity = &quantity
	}

	if value := strings.TrimSpace(request.PostFormValue("price")); value != "" {
		price, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return itemForm{}, fmt.Errorf("price: %w", err)
		}
		form.price = &price
	}

	return form, nil
}
