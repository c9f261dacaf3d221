package controllers

import (
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fleetflow/internal/config"
	"fleetflow/internal/logger"
	"fleetflow/internal/middleware"
	"fleetflow/internal/models"
)

const resetTokenTTL = 15 * time.Minute

type signupInput struct {
	Name             string `json:"name" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	Password         string `json:"password" binding:"required"`
	Role             string `json:"role" binding:"required"`
	OrganisationName string `json:"organisationName"`
	OrganisationID   uint   `json:"organisationId"`
	AccessCode       string `json:"accessCode"` // accepted for contract compatibility, join is by organisationId
}

// SignupUser registers a manager (creating their organisation and access
// code) or a dispatcher (joining an existing manager's organisation). User
// and organisation rows are created in one transaction.
func SignupUser(c *gin.Context) {
	var input signupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	role, err := validateAndNormalizeRole(input.Role)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hashedPassword, err := hashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not hash password"})
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not start transaction"})
		return
	}

	user, err := createUserRecord(tx, input, role, hashedPassword)
	if err != nil {
		tx.Rollback()
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already exists"})
			return
		}
		logger.AppLogger().WithError(err).Error("signup: create user failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create user"})
		return
	}

	switch role {
	case "manager":
		accessCode, err := signupManager(tx, user, input.OrganisationName)
		if err != nil {
			tx.Rollback()
			logger.AppLogger().WithError(err).Error("signup: create organisation failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create organisation"})
			return
		}
		if err := tx.Commit().Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not commit transaction"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message":     "Manager registered",
			"access_code": accessCode,
			"user":        user,
		})
	case "dispatcher":
		if err := signupDispatcher(tx, user, input.OrganisationID); err != nil {
			tx.Rollback()
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Invalid organisation ID"})
				return
			}
			if errors.Is(err, errMissingOrganisationID) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Organisation ID is required"})
				return
			}
			logger.AppLogger().WithError(err).Error("signup: join organisation failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not join organisation"})
			return
		}
		if err := tx.Commit().Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not commit transaction"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message": "Dispatcher registered",
			"user":    user,
		})
	}
}

// LoginUser checks credentials and issues a token whose organisation_id is
// the canonical (manager row) id for the user's access code, so everyone
// sharing a code sees the same fleet.
func LoginUser(c *gin.Context) {
	var body struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password required"})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", normalizeEmail(body.Email)).First(&user).Error; err != nil {
		// Same message for unknown email and wrong password.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	var ownOrg models.Organisation
	if err := config.DB.Where("user_id = ?", user.ID).First(&ownOrg).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.AppLogger().WithError(err).Error("login: organisation lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	organisationID := ownOrg.ID
	if ownOrg.AccessCode != "" {
		var managerOrg models.Organisation
		err := config.DB.Where("access_code = ? AND role = ?", ownOrg.AccessCode, "manager").First(&managerOrg).Error
		if err == nil {
			organisationID = managerOrg.ID
		}
	}

	token, err := middleware.GenerateToken(user.ID, user.Role, ownOrg.AccessCode, organisationID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":              user.ID,
			"name":            user.Name,
			"email":           user.Email,
			"role":            user.Role,
			"access_code":     ownOrg.AccessCode,
			"organisation_id": organisationID,
		},
	})
}

// ForgotPassword issues a short-lived 6-digit reset code. Only the bcrypt
// hash is persisted; the code itself is returned in the response, standing
// in for email delivery.
func ForgotPassword(c *gin.Context) {
	var body struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", normalizeEmail(body.Email)).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No account found with this email"})
		return
	}

	code := randomSixDigitCode()
	codeHash, err := hashPassword(code)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate reset code"})
		return
	}
	expiry := time.Now().Add(resetTokenTTL)

	err = config.DB.Model(&user).Updates(map[string]interface{}{
		"reset_token_hash":   codeHash,
		"reset_token_expiry": expiry,
	}).Error
	if err != nil {
		logger.AppLogger().WithError(err).Error("forgot-password: persist reset code failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save reset code"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Password reset code sent to your email",
		"resetToken": code,
	})
}

// VerifyResetCode confirms a reset code is valid and unexpired.
func VerifyResetCode(c *gin.Context) {
	var body struct {
		Email      string `json:"email" binding:"required,email"`
		ResetToken string `json:"resetToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and reset code are required"})
		return
	}

	if _, ok := userWithValidResetCode(body.Email, body.ResetToken); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired reset code"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Reset code verified successfully",
		"email":   body.Email,
	})
}

// ResetPassword re-validates the reset code, stores the new password hash
// and clears the code and its expiry in the same update.
func ResetPassword(c *gin.Context) {
	var body struct {
		Email           string `json:"email" binding:"required,email"`
		ResetToken      string `json:"resetToken" binding:"required"`
		NewPassword     string `json:"newPassword" binding:"required"`
		ConfirmPassword string `json:"confirmPassword" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	if body.NewPassword != body.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Passwords do not match"})
		return
	}
	if len(body.NewPassword) < 8 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 8 characters"})
		return
	}

	user, ok := userWithValidResetCode(body.Email, body.ResetToken)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired reset code"})
		return
	}

	hashed, err := hashPassword(body.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not hash password"})
		return
	}

	err = config.DB.Model(user).Updates(map[string]interface{}{
		"password_hash":      hashed,
		"reset_token_hash":   nil,
		"reset_token_expiry": nil,
	}).Error
	if err != nil {
		logger.AppLogger().WithError(err).Error("reset-password: update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not reset password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Password reset successfully. Please login with your new password.",
	})
}

var errMissingOrganisationID = errors.New("organisation id is required")

// userWithValidResetCode loads the user for email and checks the supplied
// code against the stored hash and expiry.
func userWithValidResetCode(email, code string) (*models.User, bool) {
	var user models.User
	if err := config.DB.Where("email = ?", normalizeEmail(email)).First(&user).Error; err != nil {
		return nil, false
	}
	if user.ResetTokenHash == nil || user.ResetTokenExpiry == nil {
		return nil, false
	}
	if time.Now().After(*user.ResetTokenExpiry) {
		return nil, false
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.ResetTokenHash), []byte(code)); err != nil {
		return nil, false
	}
	return &user, true
}

func validateAndNormalizeRole(roleInput string) (string, error) {
	role := strings.ToLower(strings.TrimSpace(roleInput))
	switch role {
	case "manager", "dispatcher":
		return role, nil
	default:
		return "", errors.New("Invalid role")
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func randomSixDigitCode() string {
	return fmt.Sprintf("%06d", 100000+rand.Intn(900000))
}

func createUserRecord(tx *gorm.DB, input signupInput, role, hashedPassword string) (models.User, error) {
	user := models.User{
		Name:         strings.TrimSpace(input.Name),
		Email:        normalizeEmail(input.Email),
		PasswordHash: hashedPassword,
		Role:         role,
	}
	if err := tx.Create(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

// signupManager creates the canonical organisation row owning a freshly
// generated unique access code.
func signupManager(tx *gorm.DB, user models.User, organisationName string) (string, error) {
	orgName := strings.TrimSpace(organisationName)
	if orgName == "" {
		orgName = "My Organisation"
	}

	accessCode, err := generateAccessCode(tx)
	if err != nil {
		return "", err
	}

	org := models.Organisation{
		Name:       orgName,
		AccessCode: accessCode,
		UserID:     user.ID,
		Role:       "manager",
	}
	if err := tx.Create(&org).Error; err != nil {
		return "", err
	}
	return accessCode, nil
}

// signupDispatcher copies the referenced manager row's name and access code
// into a membership row for the new user.
func signupDispatcher(tx *gorm.DB, user models.User, organisationID uint) error {
	if organisationID == 0 {
		return errMissingOrganisationID
	}

	var managerOrg models.Organisation
	err := tx.Where("id = ? AND role = ?", organisationID, "manager").First(&managerOrg).Error
	if err != nil {
		return err
	}

	org := models.Organisation{
		Name:       managerOrg.Name,
		AccessCode: managerOrg.AccessCode,
		UserID:     user.ID,
		Role:       "dispatcher",
	}
	return tx.Create(&org).Error
}

// generateAccessCode retries random 6-digit codes until one is unused.
func generateAccessCode(tx *gorm.DB) (string, error) {
	for {
		code := randomSixDigitCode()
		var count int64
		if err := tx.Model(&models.Organisation{}).Where("access_code = ?", code).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return code, nil
		}
	}
}
