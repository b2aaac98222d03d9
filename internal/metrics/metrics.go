// Package metrics 定義 ATM 操作的指標記錄介面。
// 實作可輸出到 Prometheus（metrics/prometheus）或保留在記憶體中供測試（metrics/memory）。
package metrics

import "time"

// 操作名稱，作為 operation 標籤。
const (
	OpAuthenticate   = "authenticate"
	OpLogout         = "logout"
	OpWithdraw       = "withdraw"
	OpTransfer       = "transfer"
	OpChangePassword = "change_password"
	OpBalance        = "balance"
	OpPersist        = "persist"
)

// Recorder 記錄每次操作的結果與耗時。outcome 為 "ok" 或錯誤分類。
type Recorder interface {
	RecordOperation(op, outcome string, duration time.Duration)
	SetSessionActive(active bool)
}

// Nop 為不記錄任何東西的 Recorder。
type Nop struct{}

func (Nop) RecordOperation(string, string, time.Duration) {}
func (Nop) SetSessionActive(bool)                        {}
