package cli

import (
	"bytes"
	"errors"
	"fmt"
	"net/mail"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/molarhq/molarlog/internal/db"
	"github.com/molarhq/molarlog/internal/models"
	"github.com/molarhq/molarlog/internal/security"
	"github.com/molarhq/molarlog/internal/services"
)

// RunResetPasswordCommand resets a user's password from the command line.
// With interactive set, the new password is read from the terminal with
// echo disabled. Otherwise a temporary password is generated and the user
// is forced to change it on next login.
func RunResetPasswordCommand(dbPath string, email string, interactive bool) error {
	normalizedEmail := strings.ToLower(strings.TrimSpace(email))
	if normalizedEmail == "" {
		return errors.New("email is required")
	}
	if _, err := mail.ParseAddress(normalizedEmail); err != nil {
		return fmt.Errorf("invalid email address: %w", err)
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	var user models.User
	if err := database.Where("email = ?", normalizedEmail).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("user %s not found", normalizedEmail)
		}
		return fmt.Errorf("load user: %w", err)
	}

	if interactive {
		return resetWithPromptedPassword(database, &user)
	}
	return resetWithTemporaryPassword(database, &user)
}

func resetWithTemporaryPassword(database *gorm.DB, user *models.User) error {
	temporaryPassword, err := generateTemporaryPassword(12)
	if err != nil {
		return fmt.Errorf("generate temporary password: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(temporaryPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash temporary password: %w", err)
	}

	user.PasswordHash = string(passwordHash)
	user.MustChangePassword = true
	if err := database.Save(user).Error; err != nil {
		return fmt.Errorf("update user password: %w", err)
	}

	fmt.Println("Password reset successful")
	fmt.Printf("Temporary password: %s\n", temporaryPassword)
	fmt.Println("User must change password on next login.")

	return nil
}

func resetWithPromptedPassword(database *gorm.DB, user *models.User) error {
	fmt.Print("New password: ")
	password, err := readPasswordNoEcho(os.Stdin)
	fmt.Println()
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}

	fmt.Print("Confirm password: ")
	confirmation, err := readPasswordNoEcho(os.Stdin)
	fmt.Println()
	if err != nil {
		return fmt.Errorf("read password confirmation: %w", err)
	}

	if !bytes.Equal(password, confirmation) {
		return errors.New("passwords do not match")
	}
	if err := services.ValidatePasswordStrength(string(password)); err != nil {
		return fmt.Errorf("password rejected: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword(password, bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user.PasswordHash = string(passwordHash)
	user.MustChangePassword = false
	if err := database.Save(user).Error; err != nil {
		return fmt.Errorf("update user password: %w", err)
	}

	fmt.Println("Password reset successful")
	return nil
}

func generateTemporaryPassword(length int) (string, error) {
	if length < 8 {
		length = 8
	}

	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"
	return security.RandomString(length, alphabet)
}
