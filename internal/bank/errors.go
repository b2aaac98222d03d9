// internal/bank/errors.go
//
// 集中定義領域錯誤。這些錯誤由上層 handler 轉換為 HTTP 狀態碼與在地化訊息。

package bank

import "errors"

var (
	// ErrWrongPassword 代表密碼不符（登入或變更密碼時）。可重試，不改變狀態。
	ErrWrongPassword = errors.New("wrong password")

	// ErrNotAuthenticated 代表目前沒有已登入的工作階段。
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrInvalidAmount 代表金額 <= 0。
	ErrInvalidAmount = errors.New("amount must be > 0")

	// ErrInsufficient 代表餘額不足。
	ErrInsufficient = errors.New("insufficient balance")

	// ErrInvalidCard 代表目的卡號不是純數字。
	ErrInvalidCard = errors.New("invalid card number")
)
