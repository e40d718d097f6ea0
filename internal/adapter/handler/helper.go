package handler

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/cnmi-csc/busybee/errors"
	pkgvalidator "github.com/cnmi-csc/busybee/pkg/validator"
)

// Response shapes
type success struct {
	Code    interface{} `json:"code"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type errs struct {
	Code    interface{}       `json:"code,omitempty"`
	Message string            `json:"message,omitempty"`
	Info    string            `json:"info,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// getRequestID reads X-Request-ID from the request, or from the response when
// the RequestID middleware generated one
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	if id := c.Request().Header.Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Response().Header().Get(echo.HeaderXRequestID)
}

// HandleSuccess writes a standardized success response using provided logger
func HandleSuccess(logger *zap.Logger, c echo.Context, data interface{}) error {
	resp := success{
		Code:    int(errors.ErrorCode_HTTP_OK),
		Message: "success",
		Data:    data,
	}

	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}

	return c.JSON(http.StatusOK, resp)
}

// HandleError centralizes error handling and logging using provided logger.
// Errors that are not AppErrors are reported as internal errors.
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	var appErr errors.AppError
	if !stdErrors.As(err, &appErr) {
		appErr = errors.ErrInternal(err)
	}

	if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.Any("app_code", appErr.Code),
			zap.Error(err),
		)
	}

	info := ""
	if appErr.Raw != nil {
		info = appErr.Raw.Error()
	}

	body := errs{
		Code:    appErr.Code,
		Message: appErr.Message,
		Info:    info,
		Details: appErr.Details,
	}

	return c.JSON(appErr.HTTPCode, body)
}

// validationError maps validator failures onto the application error codes.
// Title and transcript keep their dedicated codes so clients can show the
// matching prompt.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !stdErrors.As(err, &verrs) {
		return errors.ErrInvalidArgument(err.Error())
	}
	for _, fe := range verrs {
		switch fe.Field() {
		case "title":
			return errors.ErrTitleRequired()
		case "transcript":
			return errors.ErrTranscriptRequired()
		case "meeting_type":
			return errors.ErrInvalidMeetingType(fmt.Sprint(fe.Value()))
		case "document_kind":
			return errors.ErrInvalidDocumentKind(fmt.Sprint(fe.Value()))
		}
	}
	appErr := errors.ErrInvalidArgument("Validation failed")
	for field, rule := range pkgvalidator.FieldErrors(err) {
		appErr = appErr.WithDetail(field, rule)
	}
	return appErr
}

// bindAndValidate binds the request into dst and runs the registered validator
func bindAndValidate(c echo.Context, dst interface{}) error {
	if err := c.Bind(dst); err != nil {
		return errors.ErrInvalidPayload()
	}
	if err := c.Validate(dst); err != nil {
		return validationError(err)
	}
	return nil
}

// parseBoolForm reads an optional boolean form field
func parseBoolForm(c echo.Context, name string) (*bool, error) {
	raw := c.FormValue(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, errors.ErrInvalidArgument(name + " must be true or false").WithDetail(name, raw)
	}
	return &v, nil
}
