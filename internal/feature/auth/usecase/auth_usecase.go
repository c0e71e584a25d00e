// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"car_rental_backend/internal/feature/auth/domain/entity"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

const (
	// minPasswordLength はパスワードの最低文字数を定義します。
	minPasswordLength = 6

	// sessionTTL はセッションの有効期間を定義します。
	sessionTTL = 7 * 24 * time.Hour
)

// validate はメールアドレス形式チェックに使用する共有バリデータです。
var validate = validator.New()

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// 同じメールアドレスのユーザーが既に存在する場合、ErrEmailAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users    UserRepository
	sessions SessionRepository
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, sessions SessionRepository) *authUsecase {
	return &authUsecase{
		users:    users,
		sessions: sessions,
	}
}

// newSessionToken は暗号論的乱数から64文字の16進セッショントークンを生成します。
func newSessionToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// createSession はユーザー情報のスナップショットを持つ新しいセッションを発行します。
func (u *authUsecase) createSession(ctx context.Context, user *entity.User) (*entity.Session, error) {
	token, err := newSessionToken()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	session := &entity.Session{
		Token:     token,
		UserID:    user.ID,
		UserEmail: user.Email,
		UserName:  user.Name,
		CreatedAt: now,
		ExpiresAt: now.Add(sessionTTL),
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return session, nil
}

// Register はハッシュ化されたパスワードで新規ユーザーを登録し、セッションを確立します。
// バリデーション失敗時はErrFieldsRequired / ErrInvalidEmail / ErrPasswordTooShort /
// ErrPasswordMismatchを、メール重複時はErrEmailAlreadyExistsを返します。
func (u *authUsecase) Register(ctx context.Context, email, password, confirmPassword, name string) (*entity.User, *entity.Session, error) {
	if email == "" || password == "" || confirmPassword == "" {
		return nil, nil, ErrFieldsRequired
	}
	if err := validate.Var(email, "email"); err != nil {
		return nil, nil, ErrInvalidEmail
	}
	if len(password) < minPasswordLength {
		return nil, nil, ErrPasswordTooShort
	}
	if password != confirmPassword {
		return nil, nil, ErrPasswordMismatch
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{Email: email, Password: string(hashed), Name: name}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, nil, err
	}

	session, err := u.createSession(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, session, nil
}

// Login はユーザーを認証し、成功時に新しいセッションを返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *authUsecase) Login(ctx context.Context, email, password string) (*entity.User, *entity.Session, error) {
	if email == "" || password == "" {
		return nil, nil, ErrEmailPasswordRequired
	}

	// メールアドレスでユーザーを検索
	user, err := u.users.FindByEmail(ctx, email)

	// ユーザーが存在しない場合のタイミング攻撃緩和用ダミーハッシュ
	// bcrypt.CompareHashAndPasswordが常に呼ばれることを保証する
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy" // ダミーハッシュ
	if err == nil {
		passwordHash = user.Password
	}

	// タイミング攻撃防止のため、常にパスワードを検証
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	// ユーザー未検出またはパスワード不一致の場合、汎用エラーを返す
	if err != nil || compareErr != nil {
		return nil, nil, ErrInvalidCredentials
	}

	session, err := u.createSession(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, session, nil
}

// CheckSession はトークンに対応する有効なセッションを返します。
// セッションが存在しない、または期限切れの場合はErrSessionNotFoundを返します。
// 副作用はありません。
func (u *authUsecase) CheckSession(ctx context.Context, token string) (*entity.Session, error) {
	session, err := u.sessions.FindByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if !session.IsValid() {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// Logout はセッションを破棄します。
// セッションが既に存在しない場合もエラーにはなりません（冪等）。
func (u *authUsecase) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := u.sessions.Delete(ctx, token); err != nil && err != ErrSessionNotFound {
		return err
	}
	return nil
}
