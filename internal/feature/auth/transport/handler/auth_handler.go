// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"car_rental_backend/internal/feature/auth/domain/entity"
	"car_rental_backend/internal/feature/auth/transport/http/dto"
	"car_rental_backend/internal/feature/auth/usecase"
	"car_rental_backend/internal/platform/session"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Register は新規ユーザーを登録し、セッションを確立します。
	Register(ctx context.Context, email, password, confirmPassword, name string) (*entity.User, *entity.Session, error)
	// Login はユーザーを認証し、成功時に新しいセッションを返します。
	Login(ctx context.Context, email, password string) (*entity.User, *entity.Session, error)
	// CheckSession はトークンに対応する有効なセッションを返します。
	CheckSession(ctx context.Context, token string) (*entity.Session, error)
	// Logout はセッションを破棄します（冪等）。
	Logout(ctx context.Context, token string) error
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
// AuthUsecaseインターフェースに依存し、JSONリクエスト/レスポンスを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からAuthUsecaseを注入します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// setSessionCookie はセッショントークンをHttpOnlyクッキーとして設定します。
func setSessionCookie(c *gin.Context, s *entity.Session) {
	maxAge := int(time.Until(s.ExpiresAt).Seconds())
	c.SetCookie(session.CookieName, s.Token, maxAge, "/", "", false, true)
}

// clearSessionCookie はセッションクッキーを削除します。
func clearSessionCookie(c *gin.Context) {
	c.SetCookie(session.CookieName, "", -1, "/", "", false, true)
}

// registerErrorMessage はRegisterのユースケースエラーをクライアント向けメッセージに変換します。
// バリデーションエラーはそのままUIに表示されるため、メッセージは固定文字列です。
func registerErrorMessage(err error) (int, string) {
	switch {
	case errors.Is(err, usecase.ErrFieldsRequired):
		return http.StatusBadRequest, "All fields are required"
	case errors.Is(err, usecase.ErrInvalidEmail):
		return http.StatusBadRequest, "Invalid email format"
	case errors.Is(err, usecase.ErrPasswordTooShort):
		return http.StatusBadRequest, "Password must be at least 6 characters"
	case errors.Is(err, usecase.ErrPasswordMismatch):
		return http.StatusBadRequest, "Passwords do not match"
	case errors.Is(err, usecase.ErrEmailAlreadyExists):
		return http.StatusBadRequest, "Email already exists"
	default:
		return http.StatusInternalServerError, "Registration failed"
	}
}

// Register はユーザー登録APIエンドポイントを処理します。
// - リクエストJSONをRegisterReqにバインド
// - バリデーションエラー時は400を返却
// - 成功時はセッションクッキーを設定し200を返却
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		// JSONが不正な場合は全フィールドが空として扱う
		slog.Warn("register bind failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	user, sess, err := h.auth.Register(c.Request.Context(), req.Email, req.Password, req.ConfirmPassword, req.Name)
	if err != nil {
		status, msg := registerErrorMessage(err)
		slog.Warn("register failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(status, gin.H{"error": msg})
		return
	}

	setSessionCookie(c, sess)
	slog.Info("user registered", "user_id", user.ID, "email", user.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.RegisterRes{
		Success: true,
		User:    dto.RegisteredUser{ID: user.ID, Email: user.Email},
	})
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - 認証失敗時は401を返却（未知のメールアドレスとパスワード誤りは区別しない）
// - 認証成功時はセッションクッキーを設定し200を返却
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login bind failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	user, sess, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmailPasswordRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		case errors.Is(err, usecase.ErrInvalidCredentials):
			// ユーザー列挙攻撃を防止するため、実際のエラーを公開しない
			slog.Warn("login failed", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		default:
			slog.Error("login error", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		}
		return
	}

	setSessionCookie(c, sess)
	slog.Info("user login successful", "user_id", user.ID, "email", user.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.LoginRes{
		Success: true,
		User:    dto.SessionUser{ID: user.ID, Name: user.Name, Email: user.Email},
	})
}

// CheckSession は現在のセッション状態を返します。副作用はありません。
// 有効なセッションがない場合も200で {authenticated: false} を返します。
func (h *AuthHandler) CheckSession(c *gin.Context) {
	token, err := c.Cookie(session.CookieName)
	if err != nil || token == "" {
		c.JSON(http.StatusOK, dto.CheckSessionRes{Authenticated: false})
		return
	}

	sess, err := h.auth.CheckSession(c.Request.Context(), token)
	if err != nil {
		c.JSON(http.StatusOK, dto.CheckSessionRes{Authenticated: false})
		return
	}

	c.JSON(http.StatusOK, dto.CheckSessionRes{
		Authenticated: true,
		User: &dto.SessionUser{
			ID:    sess.UserID,
			Name:  sess.UserName,
			Email: sess.UserEmail,
		},
	})
}

// Logout はセッションを破棄し、クッキーを削除します。
// 既にログアウト済みでもエラーにはなりません（冪等）。
func (h *AuthHandler) Logout(c *gin.Context) {
	token, _ := c.Cookie(session.CookieName)
	if err := h.auth.Logout(c.Request.Context(), token); err != nil {
		// セッション破棄失敗はクライアントには影響しないため、ログのみ残す
		slog.Warn("logout failed", "error", err, "remote_addr", c.ClientIP())
	}
	clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
