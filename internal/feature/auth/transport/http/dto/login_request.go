// Package dto はauthフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// LoginReq は/auth/loginエンドポイントのリクエストボディを表します。
// フィールドの必須チェックはユースケース層で行います。
type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
