package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"account-service/internal/managers"
	"account-service/internal/schemas"
	"account-service/internal/stores"
	"account-service/internal/usecases"
	"account-service/internal/utils"
)

type UserHdl interface {
	RegisterUser(c *gin.Context)
	LoginUser(c *gin.Context)
	VerifyEmail(c *gin.Context)
	GetUser(c *gin.Context)
}

// UserHandler translates HTTP requests into use-case calls and maps their
// outcomes to status codes. Business outcomes travel in the result DTOs,
// system faults are translated into generic error responses here.
type UserHandler struct {
	registerUseCase    *usecases.RegisterUseCase
	loginUseCase       *usecases.LoginUseCase
	verifyEmailUseCase *usecases.VerifyEmailUseCase
	getUserUseCase     *usecases.GetUserUseCase
	validator          *utils.Validator
}

func NewUserHandler(userStore stores.UserStore, tokenStore stores.TokenStore, passwordHasher managers.PasswordHasher,
	jwtManager managers.JWTMgr, mailManager managers.MailMgr) UserHdl {
	return &UserHandler{
		registerUseCase:    usecases.NewRegisterUseCase(userStore, tokenStore, passwordHasher, jwtManager, mailManager),
		loginUseCase:       usecases.NewLoginUseCase(userStore, passwordHasher, jwtManager),
		verifyEmailUseCase: usecases.NewVerifyEmailUseCase(jwtManager, tokenStore, userStore),
		getUserUseCase:     usecases.NewGetUserUseCase(userStore),
		validator:          utils.GetValidator(),
	}
}

// RegisterUser registers a new user and sends a verification link to the user's email.
func (handler *UserHandler) RegisterUser(c *gin.Context) {
	registrationRequest := &schemas.RegistrationRequest{}
	if err := c.ShouldBindJSON(registrationRequest); err != nil {
		utils.WriteAndLogError(c, schemas.BadRequest, http.StatusBadRequest, err)
		return
	}

	if err := handler.validator.Validate.Struct(registrationRequest); err != nil {
		handler.writeValidationError(c, err)
		return
	}

	result, err := handler.registerUseCase.Execute(c.Request.Context(), registrationRequest.Email, registrationRequest.Username, registrationRequest.Password)
	if err != nil {
		utils.WriteAndLogError(c, schemas.InternalServerError, http.StatusInternalServerError, err)
		return
	}

	if !result.Success {
		statusCode := http.StatusBadRequest
		if result.Message == "User already exists" {
			statusCode = http.StatusUnprocessableEntity
		}
		utils.WriteAndLogResponse(c, result, statusCode)
		return
	}

	utils.WriteAndLogResponse(c, result, http.StatusCreated)
}

// writeValidationError maps a failed field validation to the outcome message the
// client is supposed to see. Email and password failures carry dedicated messages.
func (handler *UserHandler) writeValidationError(c *gin.Context, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, fieldError := range validationErrors {
			switch fieldError.Field() {
			case "Email":
				utils.WriteAndLogResponse(c, schemas.RegisterResult{Success: false, Message: "Type a valid email address"}, http.StatusUnprocessableEntity)
				return
			case "Password":
				utils.WriteAndLogResponse(c, schemas.RegisterResult{Success: false, Message: "Password does not meet the requirements"}, http.StatusUnprocessableEntity)
				return
			}
		}
	}

	utils.WriteAndLogError(c, schemas.BadRequest, http.StatusBadRequest, err)
}

// LoginUser verifies the user's credentials and returns an access token.
func (handler *UserHandler) LoginUser(c *gin.Context) {
	loginRequest := &schemas.LoginRequest{}
	if err := c.ShouldBindJSON(loginRequest); err != nil {
		utils.WriteAndLogError(c, schemas.BadRequest, http.StatusBadRequest, err)
		return
	}

	if loginRequest.Email == "" || loginRequest.Password == "" {
		utils.WriteAndLogResponse(c, schemas.LoginResult{Success: false, Message: "All fields are required"}, http.StatusBadRequest)
		return
	}

	result, err := handler.loginUseCase.Execute(c.Request.Context(), loginRequest.Email, loginRequest.Password)
	if err != nil {
		utils.WriteAndLogError(c, schemas.InternalServerError, http.StatusInternalServerError, err)
		return
	}

	if !result.Success {
		utils.WriteAndLogResponse(c, result, http.StatusBadRequest)
		return
	}

	utils.WriteAndLogResponse(c, result, http.StatusOK)
}

// VerifyEmail confirms the email address belonging to the token in the path.
func (handler *UserHandler) VerifyEmail(c *gin.Context) {
	token := c.Param(utils.TokenKey)

	result, err := handler.verifyEmailUseCase.Execute(c.Request.Context(), token)
	if err != nil {
		utils.WriteAndLogError(c, schemas.InternalServerError, http.StatusInternalServerError, err)
		return
	}

	if !result.Success {
		utils.WriteAndLogResponse(c, result, http.StatusBadRequest)
		return
	}

	utils.WriteAndLogResponse(c, schemas.VerifyEmailResult{Success: true, Message: "Email verified"}, http.StatusOK)
}

// GetUser returns the user profile of the user specified in the path.
func (handler *UserHandler) GetUser(c *gin.Context) {
	username := c.Param(utils.UsernameKey)

	user, err := handler.getUserUseCase.Execute(c.Request.Context(), username)
	if err != nil {
		utils.WriteAndLogError(c, schemas.DatabaseError, http.StatusInternalServerError, err)
		return
	}

	if user == nil {
		utils.WriteAndLogResponse(c, schemas.RegisterResult{Success: false, Message: "User not found"}, http.StatusNotFound)
		return
	}

	response := schemas.GetUserResponse{
		Success: true,
		User: schemas.UserDTO{
			Username: user.Username,
			Email:    user.Email,
			Verified: user.Verified,
		},
	}

	utils.WriteAndLogResponse(c, response, http.StatusOK)
}
