package httpx

import (
	"net/http"

	"github.com/google/uuid"
)

const headerRequestID = "X-Request-Id"

// RequestID asegura que todo request tenga un id de trazabilidad.
// Si el cliente no mandó uno, se genera un UUID. El id se refleja
// también en el header de la respuesta.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(headerRequestID)
		if id == "" {
			id = uuid.NewString()
			r.Header.Set(headerRequestID, id)
		}
		w.Header().Set(headerRequestID, id)
		next.ServeHTTP(w, r)
	})
}

// RequestIDFrom lee el request id para incluirlo en las respuestas.
func RequestIDFrom(request *http.Request) string {
	if request == nil {
		return ""
	}
	return request.Header.Get(headerRequestID)
}
