package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/crm/internal/auth"
	"github.com/umalmyha/crm/internal/config"
	"github.com/umalmyha/crm/internal/middleware"
	"github.com/umalmyha/crm/internal/model"
	"github.com/umalmyha/crm/internal/pages"
)

// DashboardPath is the landing page of authenticated user
const DashboardPath = "/dashboard"

// PagesHTTPHandler serves html pages
type PagesHTTPHandler struct {
	authPages       *pages.AuthPages
	dashboardPage   *pages.DashboardPage
	customersPage   *pages.CustomersPage
	addCustomerPage *pages.AddCustomerPage
	detailsPage     *pages.CustomerDetailsPage
	cookies         config.CookieCfg
}

// NewPagesHTTPHandler builds PagesHTTPHandler
func NewPagesHTTPHandler(
	authPages *pages.AuthPages,
	dashboardPage *pages.DashboardPage,
	customersPage *pages.CustomersPage,
	addCustomerPage *pages.AddCustomerPage,
	detailsPage *pages.CustomerDetailsPage,
	cookies config.CookieCfg,
) *PagesHTTPHandler {
	return &PagesHTTPHandler{
		authPages:       authPages,
		dashboardPage:   dashboardPage,
		customersPage:   customersPage,
		addCustomerPage: addCustomerPage,
		detailsPage:     detailsPage,
		cookies:         cookies,
	}
}

func (h *PagesHTTPHandler) Root(c echo.Context) error {
	return c.Redirect(http.StatusFound, DashboardPath)
}

func (h *PagesHTTPHandler) SignupPage(c echo.Context) error {
	return h.render(c, http.StatusOK, pageSignup, "Sign up", &pages.AuthView{})
}

func (h *PagesHTTPHandler) Signup(c echo.Context) error {
	var form pages.SignupForm
	if err := c.Bind(&form); err != nil {
		return err
	}

	view := h.authPages.Signup(c.Request().Context(), form)

	code := http.StatusOK
	if view.Error != "" {
		code = http.StatusBadRequest
	}
	return h.render(c, code, pageSignup, "Sign up", view)
}

func (h *PagesHTTPHandler) LoginPage(c echo.Context) error {
	return h.render(c, http.StatusOK, pageLogin, "Log in", &pages.AuthView{})
}

func (h *PagesHTTPHandler) Login(c echo.Context) error {
	var form pages.LoginForm
	if err := c.Bind(&form); err != nil {
		return err
	}

	res, view := h.authPages.Login(c.Request().Context(), form, middleware.Fingerprint(c))
	if view != nil {
		return h.render(c, http.StatusUnauthorized, pageLogin, "Log in", view)
	}

	middleware.SetSessionCookies(c, h.cookies, res.Token, res.RefreshToken)
	return c.Redirect(http.StatusSeeOther, "/")
}

func (h *PagesHTTPHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(h.cookies.RefreshTokenName); err == nil {
		if err := h.authPages.Logout(c.Request().Context(), cookie.Value); err != nil {
			middleware.LoggerFrom(c).WithError(err).Warn("failed to revoke refresh token on logout")
		}
	}

	middleware.ClearSessionCookies(c, h.cookies)
	return c.Redirect(http.StatusSeeOther, middleware.LoginPath)
}

func (h *PagesHTTPHandler) Dashboard(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return err
	}

	view := h.dashboardPage.Load(c.Request().Context(), session)
	return h.render(c, http.StatusOK, pageDashboard, "Dashboard", view)
}

func (h *PagesHTTPHandler) Customers(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return err
	}

	return h.renderCustomers(c, h.customersPage.Load(c.Request().Context(), session, c.QueryParam("q")))
}

func (h *PagesHTTPHandler) UpdateCustomersStatus(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return err
	}

	status := model.Status(c.FormValue("status"))
	return h.renderCustomers(c, h.customersPage.UpdateStatus(c.Request().Context(), session, c.QueryParam("q"), c.Param("id"), status))
}

func (h *PagesHTTPHandler) AddCustomerPage(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return err
	}
	return h.render(c, http.StatusOK, pageAddCustomer, "Add Customer", h.addCustomerPage.New(session))
}

func (h *PagesHTTPHandler) AddCustomer(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return err
	}

	var form pages.CustomerForm
	if err := c.Bind(&form); err != nil {
		return err
	}

	if _, view := h.addCustomerPage.Submit(c.Request().Context(), session, form); view != nil {
		return h.render(c, http.StatusBadRequest, pageAddCustomer, "Add Customer", view)
	}
	return c.Redirect(http.StatusSeeOther, "/customers")
}

func (h *PagesHTTPHandler) CustomerDetails(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return err
	}
	return h.renderDetails(c, h.detailsPage.Load(c.Request().Context(), session, c.Param("id")))
}

func (h *PagesHTTPHandler) ChangeCustomerStatus(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return err
	}

	status := model.Status(c.FormValue("status"))
	return h.renderDetails(c, h.detailsPage.ChangeStatus(c.Request().Context(), session, c.Param("id"), status))
}

func (h *PagesHTTPHandler) AddInteraction(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return err
	}

	var form pages.InteractionForm
	if err := c.Bind(&form); err != nil {
		return err
	}
	return h.renderDetails(c, h.detailsPage.AddInteraction(c.Request().Context(), session, c.Param("id"), form))
}

func (h *PagesHTTPHandler) AddFollowup(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return err
	}

	var form pages.FollowupForm
	if err := c.Bind(&form); err != nil {
		return err
	}
	return h.renderDetails(c, h.detailsPage.AddFollowup(c.Request().Context(), session, c.Param("id"), form))
}

func (h *PagesHTTPHandler) CompleteFollowup(c echo.Context) error {
	session, err := sessionOf(c)
	if err != nil {
		return err
	}

	view := h.detailsPage.CompleteFollowup(c.Request().Context(), session, c.Param("id"), c.Param("followupId"))
	return h.renderDetails(c, view)
}

func (h *PagesHTTPHandler) renderCustomers(c echo.Context, view *pages.CustomersView) error {
	code := http.StatusOK
	if view.Error != "" {
		code = http.StatusInternalServerError
	}
	return h.render(c, code, pageCustomers, "Customers", view)
}

func (h *PagesHTTPHandler) renderDetails(c echo.Context, view *pages.CustomerDetailsView) error {
	code := http.StatusOK
	switch {
	case view.NotFound:
		code = http.StatusNotFound
	case view.Error != "":
		code = http.StatusInternalServerError
	}

	title := "Customer"
	if view.Customer != nil {
		title = view.Customer.Name
	}
	return h.render(c, code, pageCustomer, title, view)
}

// render skips responding when client has already gone, results of abandoned request are discarded
func (h *PagesHTTPHandler) render(c echo.Context, code int, name string, title string, view any) error {
	if err := c.Request().Context().Err(); err != nil {
		middleware.LoggerFrom(c).WithError(err).Debugf("request abandoned, %s page is not rendered", name)
		return nil
	}
	return c.Render(code, name, newPage(c, title, view))
}

func sessionOf(c echo.Context) (*auth.Session, error) {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "no active session")
	}
	return session, nil
}
