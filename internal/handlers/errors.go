package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	apperrors "github.com/umalmyha/crm/internal/errors"
	"github.com/umalmyha/crm/internal/middleware"
	"github.com/umalmyha/crm/internal/validation"
)

const msgInternalError = "Internal server error"

// ErrorHandler responds with json for api requests and with error page for web pages
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := middleware.LoggerFrom(c)
	code, body := errorResponse(logger, err)
	if code >= http.StatusInternalServerError {
		logger.WithError(err).Errorf("failed to process request %s %s", c.Request().Method, c.Request().URL.Path)
	} else {
		logger.WithError(err).Debugf("request %s %s rejected", c.Request().Method, c.Request().URL.Path)
	}

	var respErr error
	switch {
	case c.Request().Method == http.MethodHead:
		respErr = c.NoContent(code)
	case strings.HasPrefix(c.Request().URL.Path, "/api"):
		respErr = c.JSON(code, body)
	default:
		respErr = c.Render(code, pageError, newPage(c, http.StatusText(code), pageMessage(code, err)))
	}

	if respErr != nil {
		logger.WithError(respErr).Error("failed to send error response")
	}
}

func errorResponse(logger *logrus.Entry, err error) (int, any) {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Internal != nil {
			logger.WithError(httpErr.Internal).Debug("internal cause of http error")
		}
		return httpErr.Code, httpErr
	}

	var pldErr *validation.PayloadError
	if errors.As(err, &pldErr) {
		return http.StatusBadRequest, pldErr
	}

	var bizErr *apperrors.BusinessErr
	if errors.As(err, &bizErr) {
		return http.StatusBadRequest, bizErr
	}

	var notFoundErr *apperrors.EntryNotFoundErr
	if errors.As(err, &notFoundErr) {
		return http.StatusNotFound, echo.NewHTTPError(http.StatusNotFound, notFoundErr.Error())
	}

	return http.StatusInternalServerError, echo.NewHTTPError(http.StatusInternalServerError, msgInternalError)
}

func pageMessage(code int, err error) string {
	if code >= http.StatusInternalServerError {
		return "Something went wrong. Please try again."
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if msg, ok := httpErr.Message.(string); ok {
			return msg
		}
	}
	return err.Error()
}
