// internal/storage/model.go
//
// 定義帳戶檔的持久化格式：每行一筆 `cardNumber,password,balance`，無標頭列。
// 欄位不做跳脫，卡號或密碼內含逗號會導致解析錯誤（已知限制）。
package storage

// Delimiter 為欄位分隔字元。
const Delimiter = ","

// fieldCount 為每行固定欄位數。
const fieldCount = 3

// Record 為單一帳戶在檔案中的序列化格式。
// 僅保存資料狀態，不含任何商業邏輯。
type Record struct {
	CardNumber string
	Password   string
	Balance    int64 // 最小貨幣單位
}
