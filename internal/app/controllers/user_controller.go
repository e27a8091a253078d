package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursedesk/internal/app/models"
	"github.com/yigit/coursedesk/internal/app/models/dto"
	"github.com/yigit/coursedesk/internal/app/services"
	"github.com/yigit/coursedesk/internal/middleware"
	"github.com/yigit/coursedesk/internal/pkg/auth"
	"github.com/yigit/coursedesk/internal/pkg/logger"
)

// Response headers carrying the access token issued on login and registration
const (
	HeaderAccessToken = "X-Access-Token"
	HeaderExpiresIn   = "X-Expires-In"
)

// UserController handles user registration and lookup
type UserController struct {
	userService services.UserService
	jwtService  *auth.JWTService
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService, jwtService *auth.JWTService) *UserController {
	return &UserController{
		userService: userService,
		jwtService:  jwtService,
	}
}

// FindUser resolves a user by email and password
// @Summary Find user by credentials
// @Description Looks up the user whose email and password match. A bearer token is returned in the X-Access-Token header.
// @Tags users
// @Produce json
// @Param email query string true "Email"
// @Param password query string true "Password"
// @Success 200 {object} dto.APIResponse{data=models.User} "User found"
// @Header 200 {string} X-Access-Token "Signed access token"
// @Failure 400 {object} dto.ErrorResponse "Missing email or password"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users [get]
func (c *UserController) FindUser(ctx *gin.Context) {
	var query dto.FindUserQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	user, err := c.userService.Authenticate(ctx.Request.Context(), query.Email, query.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.attachToken(ctx, user)
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(user))
}

// RegisterUser creates a new user
// @Summary Register a user
// @Description Creates a new user. The password is stored as a bcrypt hash.
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.RegisterUserRequest true "User information"
// @Success 201 {object} dto.APIResponse{data=models.User} "User created"
// @Header 201 {string} X-Access-Token "Signed access token"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users [post]
func (c *UserController) RegisterUser(ctx *gin.Context) {
	var req dto.RegisterUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	user, err := c.userService.Register(ctx.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.attachToken(ctx, user)
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(user))
}

// attachToken issues a token for user. A signing failure is logged and the
// response goes out without one.
func (c *UserController) attachToken(ctx *gin.Context, user *models.User) {
	token, expiresIn, err := c.jwtService.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		logger.Error().Err(err).Str("userID", user.ID).Msg("Error generating access token")
		return
	}
	ctx.Header(HeaderAccessToken, token)
	ctx.Header(HeaderExpiresIn, strconv.Itoa(expiresIn))
}
