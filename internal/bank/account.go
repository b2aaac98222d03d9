// Package bank 定義核心領域模型：帳戶與單一使用者工作階段。
// 本檔定義 Account 以及與儲存層 Record 之間的轉換，不含任何 HTTP 細節。
package bank

import "atm/internal/storage"

// Account represents one card and its balance.
type Account struct {
	CardNumber string `json:"card_number"`
	Password   string `json:"-"`
	Balance    int64  `json:"balance"`
}

// FromRecords 將載入的 Record 依原順序轉為帳戶切片。
func FromRecords(recs []storage.Record) []Account {
	out := make([]Account, len(recs))
	for i, r := range recs {
		out[i] = Account{CardNumber: r.CardNumber, Password: r.Password, Balance: r.Balance}
	}
	return out
}

// ToRecords 將帳戶切片轉回 Record，供 storage.Save 使用。
func ToRecords(accts []Account) []storage.Record {
	out := make([]storage.Record, len(accts))
	for i, a := range accts {
		out[i] = storage.Record{CardNumber: a.CardNumber, Password: a.Password, Balance: a.Balance}
	}
	return out
}
