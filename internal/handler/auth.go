package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/todotask/backend/internal/config"
	"github.com/todotask/backend/internal/mailer"
	"github.com/todotask/backend/internal/middleware"
	"github.com/todotask/backend/internal/model"
	"github.com/todotask/backend/internal/repository"
	"github.com/todotask/backend/internal/utils"
)

// AuthHandler bundles dependencies for the auth endpoints: signup,
// login, profile, password change and the OTP-backed forgot/reset
// password flow.
type AuthHandler struct {
	Cfg        config.Config
	Users      *repository.UserRepo
	OTPs       *repository.OTPRepo
	Activities *repository.ActivityRepo
	Mail       *mailer.Mailer
}

func NewAuthHandler(cfg config.Config, u *repository.UserRepo, o *repository.OTPRepo, a *repository.ActivityRepo, m *mailer.Mailer) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u, OTPs: o, Activities: a, Mail: m}
}

// ----- DTOs -----

type signupReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
type profileUpdateReq struct {
	Name       *string `json:"name"`
	Bio        *string `json:"bio"`
	ProfilePic *string `json:"profile_pic"`
}
type changePasswordReq struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}
type forgotPasswordReq struct {
	Email string `json:"email"`
}
type resetPasswordReq struct {
	Email       string `json:"email"`
	OTP         string `json:"otp"`
	NewPassword string `json:"new_password"`
}

type userPart struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Signup: create user, reject duplicate email.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = repository.NormalizeEmail(req.Email)
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name/email/password required"})
	}

	hash, err := utils.HashPassword(req.Password, h.Cfg.BcryptCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "hash password failed"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	uid, err := h.Users.Create(ctx, req.Name, req.Email, hash)
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "email already registered"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
	}

	h.record(c, uid, "signup", "User created an account")

	return c.JSON(http.StatusOK, echo.Map{"message": "Signup successful", "user_id": uid})
}

// Login: verify credentials and return a bearer token.  Unknown email
// and wrong password are reported separately, matching the product's
// existing behavior.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = repository.NormalizeEmail(req.Email)
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "incorrect password"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, h.Cfg.TokenTTLHours)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}

	h.record(c, u.ID, "login", "User logged in")

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Login successful",
		"token":   access.Token,
		"user":    userPart{ID: u.ID, Name: u.Name, Email: u.Email},
	})
}

// Me returns the authenticated user's profile.
func (h *AuthHandler) Me(c echo.Context) error {
	uid := middleware.CurrentUserID(c)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"name":        u.Name,
		"email":       u.Email,
		"bio":         u.Bio,
		"profile_pic": u.ProfilePic,
	})
}

// UpdateProfile applies a partial profile patch.
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	uid := middleware.CurrentUserID(c)

	var req profileUpdateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Users.UpdateProfile(ctx, uid, req.Name, req.Bio, req.ProfilePic); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "update failed"})
	}

	h.record(c, uid, "profile_update", "User updated profile")

	return c.JSON(http.StatusOK, echo.Map{"message": "Profile updated successfully"})
}

// ChangePassword verifies the current password before hashing and
// storing the new one.
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	uid := middleware.CurrentUserID(c)

	var req changePasswordReq
	if err := c.Bind(&req); err != nil || req.CurrentPassword == "" || req.NewPassword == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "current_password/new_password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !utils.VerifyPassword(u.PasswordHash, req.CurrentPassword) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "incorrect current password"})
	}

	hash, err := utils.HashPassword(req.NewPassword, h.Cfg.BcryptCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "hash password failed"})
	}
	if err := h.Users.UpdatePassword(ctx, uid, hash); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update password failed"})
	}

	h.record(c, uid, "password_change", "User changed password")

	return c.JSON(http.StatusOK, echo.Map{"message": "Password updated successfully"})
}

// ForgotPassword starts the reset flow: generate a code, persist it,
// mail it.  The 404 for unknown addresses reveals account existence;
// that matches the current product behavior and is kept deliberately.
// Email delivery is best effort — a failed send is logged, the caller
// still gets 200, and they can simply request another code.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	email := repository.NormalizeEmail(req.Email)
	if email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "email not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	code, err := utils.GenerateOTP()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "generate otp failed"})
	}
	if err := h.OTPs.Insert(ctx, email, code); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save otp failed"})
	}

	go func() {
		if err := h.Mail.SendOTP(email, code); err != nil {
			log.Printf("forgot-password: send otp to %s failed: %v", email, err)
		}
	}()

	h.record(c, u.ID, "forgot_password", "User requested a password reset code")

	return c.JSON(http.StatusOK, echo.Map{"message": "OTP sent to your email"})
}

// ResetPassword finishes the flow.  The OTP is consumed with an atomic
// conditional update before the password is written: of two concurrent
// attempts with the same code, exactly one wins and the other sees an
// invalid/expired OTP.  Should the password write then fail, the code
// is already spent and the user must request a new one — the narrow
// failure window we accept in exchange for single-use codes.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	email := repository.NormalizeEmail(req.Email)
	code := strings.TrimSpace(req.OTP)
	if email == "" || code == "" || req.NewPassword == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/otp/new_password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	ok, err := h.OTPs.Consume(ctx, email, code)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "verify otp failed"})
	}
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid or expired OTP"})
	}

	hash, err := utils.HashPassword(req.NewPassword, h.Cfg.BcryptCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "hash password failed"})
	}
	if err := h.Users.UpdatePassword(ctx, u.ID, hash); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update password failed"})
	}

	h.record(c, u.ID, "password_reset", "User reset password via OTP")

	return c.JSON(http.StatusOK, echo.Map{"message": "Password reset successful"})
}

// Logout clears the caller's activity trail.  The bearer token itself
// stays valid until its natural expiry; there is no server-side
// revocation list.
func (h *AuthHandler) Logout(c echo.Context) error {
	uid := middleware.CurrentUserID(c)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Activities.DeleteByUser(ctx, uid); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "logout failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Logout successful, activity cleared"})
}

// record writes an activity entry on a best-effort basis.
func (h *AuthHandler) record(c echo.Context, userID uint64, action, description string) {
	recordActivity(h.Activities, c, userID, action, description)
}

// recordActivity is shared by the auth and task handlers.  Failures are
// logged and swallowed; the audit trail never blocks a request.
func recordActivity(repo *repository.ActivityRepo, c echo.Context, userID uint64, action, description string) {
	device := c.Request().Header.Get("X-Device")
	if device == "" {
		device = c.Request().UserAgent()
	}
	a := model.Activity{
		UserID:      userID,
		Action:      action,
		Description: description,
		Device:      device,
		IP:          c.RealIP(),
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := repo.Insert(ctx, a); err != nil {
		log.Printf("activity log: insert %s for user %d failed: %v", action, userID, err)
	}
}
