package v1

import (
	"net/http"

	"github.com/stockology/backend/internal/service"

	"github.com/gin-gonic/gin"
)

func (h *Handler) initUsersRoutes(api *gin.RouterGroup) {
	users := api.Group("/users")

	users.POST("/register", h.userRegister)
	users.POST("/login", h.userLogin)

	authenticated := users.Group("", h.userIdentityMiddleware)
	authenticated.POST("/send-otp", h.userSendOtp)
	authenticated.POST("/verify-otp", h.userVerifyOtp)
	authenticated.GET("/profile", h.userProfile)
}

type userRegisterInput struct {
	FullName string `json:"full_name" binding:"required,max=64"`
	Email    string `json:"email" binding:"required,email,max=64"`
	Password string `json:"password" binding:"required,max=64"`
}

type userLoginInput struct {
	Email    string `json:"email" binding:"required,email,max=64"`
	Password string `json:"password" binding:"required,max=64"`
}

type userSendOtpInput struct {
	PhoneNumber string `json:"phone_number" binding:"required,phonenumber"`
}

type userVerifyOtpInput struct {
	Otp string `json:"otp" binding:"required"`
}

// @Summary Register
// @Tags Users
// @Description Create an account and issue a session token
// @ModuleID userRegister
// @Accept  json
// @Produce  json
// @Param input body userRegisterInput true "account info"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} ValidationErrorStruct
// @Failure 409 {object} MessageResponse
// @Router /users/register [post]
func (h *Handler) userRegister(c *gin.Context) {
	var input userRegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		validationErrorResponse(c, err)
		return
	}

	result, err := h.services.Users.SignUp(c.Request.Context(), service.SignUpInput{
		FullName: input.FullName,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		errorResponse(c, err)
		return
	}

	newAuthResponse(c, http.StatusCreated, UserRegisteredMessage, result)
}

// @Summary Login
// @Tags Users
// @Description Authenticate with email and password
// @ModuleID userLogin
// @Accept  json
// @Produce  json
// @Param input body userLoginInput true "credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} ValidationErrorStruct
// @Failure 401 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Router /users/login [post]
func (h *Handler) userLogin(c *gin.Context) {
	var input userLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		validationErrorResponse(c, err)
		return
	}

	result, err := h.services.Users.SignIn(c.Request.Context(), service.SignInInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		errorResponse(c, err)
		return
	}

	newAuthResponse(c, http.StatusOK, LoginSuccessMessage, result)
}

// @Summary Send OTP
// @Tags Users
// @Description Issue a one-time code for the given phone number
// @ModuleID userSendOtp
// @Accept  json
// @Produce  json
// @Param input body userSendOtpInput true "phone number"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ValidationErrorStruct
// @Failure 409 {object} MessageResponse
// @Failure 502 {object} MessageResponse
// @Security UserAuth
// @Router /users/send-otp [post]
func (h *Handler) userSendOtp(c *gin.Context) {
	var input userSendOtpInput
	if err := c.ShouldBindJSON(&input); err != nil {
		validationErrorResponse(c, err)
		return
	}

	userID, err := h.getUserUUID(c)
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	if err := h.services.Users.SendOtp(c.Request.Context(), userID, input.PhoneNumber); err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, messageResponse{Status: true, Message: OtpSentMessage})
}

// @Summary Verify OTP
// @Tags Users
// @Description Verify the pending one-time code and complete the profile
// @ModuleID userVerifyOtp
// @Accept  json
// @Produce  json
// @Param input body userVerifyOtpInput true "one-time code"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} ValidationErrorStruct
// @Failure 401 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Security UserAuth
// @Router /users/verify-otp [post]
func (h *Handler) userVerifyOtp(c *gin.Context) {
	var input userVerifyOtpInput
	if err := c.ShouldBindJSON(&input); err != nil {
		validationErrorResponse(c, err)
		return
	}

	userID, err := h.getUserUUID(c)
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	result, err := h.services.Users.VerifyOtp(c.Request.Context(), userID, input.Otp)
	if err != nil {
		errorResponse(c, err)
		return
	}

	newAuthResponse(c, http.StatusOK, PhoneVerifiedMessage, result)
}

// @Summary Profile
// @Tags Users
// @Description Fetch the authenticated user's profile
// @ModuleID userProfile
// @Produce  json
// @Success 200 {object} DataResponse
// @Failure 404 {object} MessageResponse
// @Security UserAuth
// @Router /users/profile [get]
func (h *Handler) userProfile(c *gin.Context) {
	userID, err := h.getUserUUID(c)
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	user, err := h.services.Users.GetOneByID(c.Request.Context(), userID)
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, dataResponse{Status: true, Message: UserProfileMessage, Data: user})
}
