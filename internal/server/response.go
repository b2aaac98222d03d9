// internal/server/response.go
//
// 統一 HTTP 回應格式：成功回應一律 JSON，錯誤回應為 {"error": 在地化訊息, "code": 訊息鍵值}。
package server

import (
	"encoding/json"
	"net/http"
)

// writeJSON 統一輸出成功回應。
func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// errorBody 為錯誤回應內容。
type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// writeErr 統一輸出錯誤回應。
func writeErr(w http.ResponseWriter, code int, key, msg string) {
	writeJSON(w, code, errorBody{Error: msg, Code: key})
}
