package handlers

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/umalmyha/crm/internal/middleware"
	"github.com/umalmyha/crm/internal/model"
	"github.com/umalmyha/crm/internal/pages"
)

const (
	pageSignup      = "signup"
	pageLogin       = "login"
	pageDashboard   = "dashboard"
	pageCustomers   = "customers"
	pageAddCustomer = "add_customer"
	pageCustomer    = "customer"
	pageError       = "error"
)

var pageNames = []string{pageSignup, pageLogin, pageDashboard, pageCustomers, pageAddCustomer, pageCustomer, pageError}

// page is data passed to layout, View is the view model of concrete page
type page struct {
	Title string
	CSRF  string
	Email string
	View  any
}

func newPage(c echo.Context, title string, view any) *page {
	p := &page{Title: title, View: view}
	if token, ok := c.Get(echomw.DefaultCSRFConfig.ContextKey).(string); ok {
		p.CSRF = token
	}

	if session, ok := middleware.SessionFrom(c); ok {
		p.Email = session.Email
	}
	return p
}

var templateFuncs = template.FuncMap{
	"badge": pages.InteractionBadge,
	"dueClass": func(d model.Due) string {
		switch d {
		case model.DueOverdue:
			return "badge-overdue"
		case model.DueToday:
			return "badge-today"
		default:
			return "badge-upcoming"
		}
	},
	"phone": func(phone string) string {
		if phone == "" {
			return "—"
		}
		return phone
	},
	"date": func(t time.Time) string {
		return t.Format(model.DateLayout)
	},
}

// TemplateRenderer renders pages, every page is executed within shared layout
type TemplateRenderer struct {
	templates map[string]*template.Template
}

// NewTemplateRenderer parses layout and page templates from fsys
func NewTemplateRenderer(fsys fs.FS) (*TemplateRenderer, error) {
	templates := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.New(name).Funcs(templateFuncs).ParseFS(fsys, "templates/layout.html", fmt.Sprintf("templates/%s.html", name))
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s - %w", name, err)
		}
		templates[name] = tmpl
	}
	return &TemplateRenderer{templates: templates}, nil
}

// Render implements echo.Renderer
func (r *TemplateRenderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	tmpl, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("unknown template %s", name)
	}
	return tmpl.ExecuteTemplate(w, "layout", data)
}
