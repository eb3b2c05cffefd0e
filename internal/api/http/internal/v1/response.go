package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/stockology/backend/internal/domain"
	"github.com/stockology/backend/internal/service"
	"github.com/stockology/backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const authTokenHeader = "auth-token"

type authResponse struct {
	Status  bool         `json:"status"`
	Token   string       `json:"token"`
	Message string       `json:"message"`
	Data    *domain.User `json:"data"`
} // @name AuthResponse

type dataResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
} // @name DataResponse

type messageResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
} // @name MessageResponse

// newAuthResponse writes the session token to both the auth-token header and
// the body, alongside the user record.
func newAuthResponse(c *gin.Context, statusCode int, message string, result *service.AuthResult) {
	c.Header(authTokenHeader, result.Token)
	c.JSON(statusCode, authResponse{
		Status:  true,
		Token:   result.Token,
		Message: message,
		Data:    result.User,
	})
}

// errorResponse maps a service failure kind to its HTTP status. Unrecognized
// errors are logged and masked as a plain 500.
func errorResponse(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := unknownErrorMessage

	switch {
	case errors.Is(err, service.ErrRequiredFieldsMissing),
		errors.Is(err, service.ErrInvalidPhoneNumber):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, service.ErrUserAlreadyExist),
		errors.Is(err, service.ErrPhoneNumberTaken):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, service.ErrUserNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidOtp):
		status = http.StatusUnauthorized
		message = err.Error()
	case errors.Is(err, service.ErrOtpDeliveryFailed):
		status = http.StatusBadGateway
		message = service.ErrOtpDeliveryFailed.Error()
	default:
		logger.Error("unexpected service error", zap.Error(err))
	}

	c.AbortWithStatusJSON(status, messageResponse{Status: false, Message: message})
}

func validationErrorResponse(c *gin.Context, err error) {
	var verr validator.ValidationErrors
	if errors.As(err, &verr) {
		out := make([]ValidationError, len(verr))
		for i, ferr := range verr {
			out[i] = ValidationError{ferr.Field(), msgForTag(ferr.Tag(), ferr.Param())}
		}
		response := ValidationErrorStruct{
			Status:  false,
			Message: "validation error",
		}
		response.Errors = out
		c.AbortWithStatusJSON(http.StatusBadRequest, response)
		return
	}

	c.AbortWithStatusJSON(http.StatusBadRequest, messageResponse{Status: false, Message: "invalid request body"})
}

func msgForTag(tag string, value string) string {
	switch tag {
	case "required":
		return "this field is required"
	case "email":
		return "invalid email format"
	case "min":
		return fmt.Sprintf("must be at least %v characters", value)
	case "max":
		return fmt.Sprintf("must be at most %v characters", value)
	case "phonenumber":
		return "must be a valid phone number with 10 to 15 digits"
	}
	return tag
}
