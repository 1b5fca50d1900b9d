package routes

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"

	"artfolio/artfolio/controllers"
	"artfolio/artfolio/sources/store"
	"artfolio/artfolio/utils/authctx"
	"artfolio/artfolio/utils/validate"
)

var validator = validate.New()

type errorBody struct {
	Kind    string            `json:"kind"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func statusFor(kind store.Kind) int {
	switch kind {
	case store.KindNotFound:
		return http.StatusNotFound
	case store.KindConflict:
		return http.StatusConflict
	case store.KindInvalid:
		return http.StatusBadRequest
	case store.KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError uses status when it is an error code, otherwise the status
// implied by err's kind. Internal details are not sent to clients.
func writeError(w http.ResponseWriter, status int, err error) {
	kind := store.KindOf(err)
	if status < 400 {
		status = statusFor(kind)
	}
	body := errorBody{Kind: string(kind), Message: err.Error()}
	switch status {
	case http.StatusUnauthorized:
		body.Kind = "unauthorized"
	case http.StatusForbidden:
		body.Kind = "forbidden"
	}
	if kind == store.KindInternal && status == http.StatusInternalServerError {
		body.Message = "internal error"
	}
	var verr *validate.ValidationError
	if errors.As(err, &verr) {
		body.Fields = verr.Fields
	}
	writeJSON(w, status, map[string]errorBody{"error": body})
}

// generic wrapper to reduce boilerplate. Handlers return status 0 with a
// controller error to let its kind pick the code.
func handleJSON(handler func(r *http.Request) (any, int, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, status, err := handler(r)
		if err != nil {
			writeError(w, status, err)
			return
		}
		if status == http.StatusNoContent {
			w.WriteHeader(status)
			return
		}
		writeJSON(w, status, res)
	}
}

// decode reads a JSON body into dst and validates it.
func decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return store.E(store.KindInvalid, "decode", err)
	}
	if err := validator.Struct(dst); err != nil {
		return store.E(store.KindInvalid, "validate", err)
	}
	return nil
}

// currentUser is only called behind AuthMiddleware.
func currentUser(r *http.Request) string {
	id, _ := authctx.UserIDFrom(r.Context())
	return id
}

var errNotFound = errors.New("not found")

func notFound(op string) (any, int, error) {
	return nil, http.StatusNotFound, store.E(store.KindNotFound, op, errNotFound)
}

// multipartFiles opens every part stored under field. Close the returned
// files when done.
func multipartFiles(r *http.Request, field string, maxMemory int64) ([]controllers.Upload, func(), error) {
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		return nil, func() {}, store.E(store.KindInvalid, "multipart", err)
	}
	var opened []multipart.File
	closeAll := func() {
		for _, f := range opened {
			f.Close()
		}
	}
	var uploads []controllers.Upload
	for _, fh := range r.MultipartForm.File[field] {
		f, err := fh.Open()
		if err != nil {
			closeAll()
			return nil, func() {}, store.E(store.KindInvalid, "multipart", err)
		}
		opened = append(opened, f)
		uploads = append(uploads, controllers.Upload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Body:        f,
		})
	}
	return uploads, closeAll, nil
}
