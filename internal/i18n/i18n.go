// Package i18n 提供 ATM 介面的雙語（波斯語／英語）文字與金額格式。
// 找不到的鍵值直接回傳鍵本身。
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// 支援的語言代碼。
const (
	Persian = "fa"
	English = "en"
)

var tags = map[string]language.Tag{
	Persian: language.Persian,
	English: language.English,
}

var matcher = language.NewMatcher([]language.Tag{language.Persian, language.English})

// Supported 回報 lang 是否為支援的語言代碼。
func Supported(lang string) bool {
	_, ok := tags[lang]
	return ok
}

// Match 依序以明確指定的 lang、Accept-Language 標頭決定語言，皆無法判斷時回傳 fallback。
func Match(lang, acceptLanguage, fallback string) string {
	if Supported(lang) {
		return lang
	}
	if acceptLanguage == "" {
		return fallback
	}
	prefs, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(prefs) == 0 {
		return fallback
	}
	_, idx, conf := matcher.Match(prefs...)
	if conf == language.No {
		return fallback
	}
	if idx == 0 {
		return Persian
	}
	return English
}

// Text 回傳 key 在 lang 下的文字。
func Text(lang, key string) string {
	table, ok := catalog[lang]
	if !ok {
		table = catalog[Persian]
	}
	if s, ok := table[key]; ok {
		return s
	}
	return key
}

// FormatAmount 以 lang 的千分位格式輸出金額。
func FormatAmount(lang string, n int64) string {
	return printer(lang).Sprintf("%d", n)
}

// WithdrawResult 組出提款成功訊息。
func WithdrawResult(lang string, amount, balance int64) string {
	return printer(lang).Sprintf(Text(lang, "withdraw_result"), amount, balance)
}

// TransferResult 組出轉帳成功訊息。
func TransferResult(lang string, amount int64, card string, balance int64) string {
	return printer(lang).Sprintf(Text(lang, "transfer_result"), amount, card, balance)
}

// BalanceText 組出餘額查詢訊息。
func BalanceText(lang string, balance int64) string {
	return Text(lang, "your_balance") + " " + FormatAmount(lang, balance)
}

func printer(lang string) *message.Printer {
	tag, ok := tags[lang]
	if !ok {
		tag = language.Persian
	}
	return message.NewPrinter(tag)
}
