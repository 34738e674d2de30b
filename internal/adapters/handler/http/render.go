package http

import (
	"embed"
	"encoding/base64"
	"html/template"
	"log"
	"net/http"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

const flashCookieName = "flash"

// page carries the fields every template expects, filled in by render.
type page struct {
	Flash   string
	Session *Session
	Data    any
}

func render(w http.ResponseWriter, r *http.Request, name string, data any) {
	p := page{
		Flash: popFlash(w, r),
		Data:  data,
	}
	if sess, ok := SessionFromContext(r.Context()); ok {
		p.Session = sess
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.ExecuteTemplate(w, name, p); err != nil {
		log.Printf("failed to render %s: %v", name, err)
	}
}

// setFlash stores a one-shot message for the next rendered page. The
// value is base64 encoded so arbitrary text survives the cookie header.
func setFlash(w http.ResponseWriter, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    base64.URLEncoding.EncodeToString([]byte(message)),
		Path:     "/",
		HttpOnly: true,
		MaxAge:   60,
	})
}

func popFlash(w http.ResponseWriter, r *http.Request) string {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil || cookie.Value == "" {
		return ""
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	decoded, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return ""
	}
	return string(decoded)
}
