// internal/server/handler.go
//
// Package server 提供 HTTP/JSON 介面，取代原本的桌面畫面，作為 bank 核心的呼叫端。
// 每個 handler 只負責：
//  1. 解析請求與決定介面語言
//  2. 在互斥鎖內呼叫 bank.Service
//  3. 回傳在地化的 JSON 回應並記錄日誌與指標
//
// bank.Service 本身不加鎖，所以所有核心呼叫都經過 s.mu 序列化。
// 只有結束工作階段（DELETE /session）才會呼叫 persist 寫回帳戶檔。
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"atm/internal/bank"
	"atm/internal/i18n"
	"atm/internal/metrics"

	"github.com/sasha-s/go-deadlock"
	"go.uber.org/zap"
)

// 自訂金額的範圍與預設提款金額，沿用原本提款畫面的設定。
const (
	CustomMin  int64 = 10000
	CustomMax  int64 = 10000000
	CustomStep int64 = 10000
)

// Presets 為提款畫面提供的固定金額。
var Presets = []int64{500000, 1000000, 1500000, 2000000}

// Options 為 Server 的可選依賴；零值皆有合理預設。
type Options struct {
	Logger         *zap.Logger
	Metrics        metrics.Recorder
	Language       string       // 預設語言，空字串為 fa
	MetricsHandler http.Handler // 非 nil 時掛在 GET /metrics
}

// Server 為 HTTP 層核心結構：
//   - svc：注入的工作階段服務。
//   - persist：持久化鉤子，由 main 決定寫到哪裡。
type Server struct {
	mu      deadlock.Mutex
	svc     *bank.Service
	persist func() error

	log      *zap.Logger
	metrics  metrics.Recorder
	lang     string
	promHTTP http.Handler
}

// NewServer 建立新的 HTTP 伺服器。persist 可為 nil。
func NewServer(svc *bank.Service, persist func() error, opts Options) *Server {
	s := &Server{
		svc:      svc,
		persist:  persist,
		log:      opts.Logger,
		metrics:  opts.Metrics,
		lang:     opts.Language,
		promHTTP: opts.MetricsHandler,
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	if s.metrics == nil {
		s.metrics = metrics.Nop{}
	}
	if !i18n.Supported(s.lang) {
		s.lang = i18n.Persian
	}
	return s
}

// language 依 ?lang= 與 Accept-Language 決定回應語言。
func (s *Server) language(r *http.Request) string {
	return i18n.Match(r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"), s.lang)
}

// observe 記錄一次操作的結果與耗時。
func (s *Server) observe(op string, start time.Time, err error) {
	outcome := "ok"
	switch {
	case errors.Is(err, bank.ErrWrongPassword):
		outcome = "wrong_password"
	case err != nil:
		_, outcome = classify(err)
	}
	s.metrics.RecordOperation(op, outcome, time.Since(start))
}

// login 處理 POST /session：以密碼登入。
func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	lang := s.language(r)
	var req struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid_request", i18n.Text(lang, "invalid_request"))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	a, err := s.svc.Authenticate(req.Password)
	s.observe(metrics.OpAuthenticate, start, err)
	if err != nil {
		s.log.Info("login rejected")
		writeErr(w, http.StatusUnauthorized, "wrong_password", i18n.Text(lang, "wrong_password"))
		return
	}
	s.metrics.SetSessionActive(true)
	s.log.Info("login", zap.String("session", s.svc.SessionID()), zap.String("card", a.CardNumber))

	writeJSON(w, http.StatusOK, map[string]any{
		"card_number": a.CardNumber,
		"session_id":  s.svc.SessionID(),
		"message":     i18n.Text(lang, "login_success"),
	})
}

// logout 處理 DELETE /session：寫回帳戶檔後結束工作階段。
// 寫檔失敗時保留工作階段，讓操作者可以重試。
func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	lang := s.language(r)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.svc.CurrentAccount() == nil {
		s.fail(w, lang, bank.ErrNotAuthenticated)
		return
	}
	sid := s.svc.SessionID()

	if s.persist != nil {
		start := time.Now()
		err := s.persist()
		s.observe(metrics.OpPersist, start, err)
		if err != nil {
			s.log.Error("persist accounts", zap.String("session", sid), zap.Error(err))
			s.fail(w, lang, err)
			return
		}
	}

	start := time.Now()
	s.svc.Logout()
	s.observe(metrics.OpLogout, start, nil)
	s.metrics.SetSessionActive(false)
	s.log.Info("logout", zap.String("session", sid))

	writeJSON(w, http.StatusOK, map[string]string{"message": i18n.Text(lang, "goodbye")})
}

// balance 處理 GET /balance。
func (s *Server) balance(w http.ResponseWriter, r *http.Request) {
	lang := s.language(r)

	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	if s.svc.CurrentAccount() == nil {
		s.observe(metrics.OpBalance, start, bank.ErrNotAuthenticated)
		s.fail(w, lang, bank.ErrNotAuthenticated)
		return
	}
	bal := s.svc.Balance()
	s.observe(metrics.OpBalance, start, nil)

	writeJSON(w, http.StatusOK, map[string]any{
		"balance":   bal,
		"formatted": i18n.FormatAmount(lang, bal),
		"message":   i18n.BalanceText(lang, bal),
	})
}

// withdrawOptions 處理 GET /withdraw/options：提款畫面的固定金額與自訂範圍。
func (s *Server) withdrawOptions(w http.ResponseWriter, r *http.Request) {
	lang := s.language(r)
	formatted := make([]string, len(Presets))
	for i, p := range Presets {
		formatted[i] = i18n.FormatAmount(lang, p)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"presets":     Presets,
		"formatted":   formatted,
		"custom_min":  CustomMin,
		"custom_max":  CustomMax,
		"custom_step": CustomStep,
	})
}

// withdraw 處理 POST /withdraw。custom=true 時金額須落在自訂範圍內。
func (s *Server) withdraw(w http.ResponseWriter, r *http.Request) {
	lang := s.language(r)
	var req struct {
		Amount int64 `json:"amount"`
		Custom bool  `json:"custom"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid_request", i18n.Text(lang, "invalid_request"))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	var err error
	if req.Custom && (req.Amount < CustomMin || req.Amount > CustomMax) {
		err = bank.ErrInvalidAmount
	} else {
		err = s.svc.Withdraw(req.Amount)
	}
	s.observe(metrics.OpWithdraw, start, err)
	if err != nil {
		s.log.Info("withdraw rejected", zap.String("session", s.svc.SessionID()), zap.Int64("amount", req.Amount), zap.Error(err))
		s.fail(w, lang, err)
		return
	}

	bal := s.svc.Balance()
	s.log.Info("withdraw", zap.String("session", s.svc.SessionID()), zap.Int64("amount", req.Amount), zap.Int64("balance", bal))
	writeJSON(w, http.StatusOK, map[string]any{
		"balance": bal,
		"message": i18n.WithdrawResult(lang, req.Amount, bal),
	})
}

// transfer 處理 POST /transfer。只從目前帳戶扣款，目的帳戶不會入帳。
func (s *Server) transfer(w http.ResponseWriter, r *http.Request) {
	lang := s.language(r)
	var req struct {
		Amount          int64  `json:"amount"`
		DestinationCard string `json:"destination_card"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid_amount", i18n.Text(lang, "invalid_amount"))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	err := s.svc.Transfer(req.Amount, req.DestinationCard)
	s.observe(metrics.OpTransfer, start, err)
	if err != nil {
		s.log.Info("transfer rejected", zap.String("session", s.svc.SessionID()), zap.Int64("amount", req.Amount),
			zap.String("to", req.DestinationCard), zap.Error(err))
		s.fail(w, lang, err)
		return
	}

	bal := s.svc.Balance()
	s.log.Info("transfer", zap.String("session", s.svc.SessionID()), zap.Int64("amount", req.Amount),
		zap.String("to", req.DestinationCard), zap.Int64("balance", bal))
	writeJSON(w, http.StatusOK, map[string]any{
		"balance": bal,
		"message": i18n.TransferResult(lang, req.Amount, req.DestinationCard, bal),
	})
}

// changePassword 處理 POST /password。
func (s *Server) changePassword(w http.ResponseWriter, r *http.Request) {
	lang := s.language(r)
	var req struct {
		Current string `json:"current"`
		New     string `json:"new"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid_request", i18n.Text(lang, "invalid_request"))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	err := s.svc.ChangePassword(req.Current, req.New)
	s.observe(metrics.OpChangePassword, start, err)
	if err != nil {
		s.log.Info("change password rejected", zap.String("session", s.svc.SessionID()), zap.Error(err))
		s.fail(w, lang, err)
		return
	}
	s.log.Info("password changed", zap.String("session", s.svc.SessionID()))
	writeJSON(w, http.StatusOK, map[string]string{"message": i18n.Text(lang, "password_changed")})
}

// health 提供健康檢查端點：GET /health。
func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// fail 將錯誤轉為狀態碼與在地化訊息。
func (s *Server) fail(w http.ResponseWriter, lang string, err error) {
	code, key := classify(err)
	writeErr(w, code, key, i18n.Text(lang, key))
}

// classify 集中錯誤與 HTTP 狀態碼、訊息鍵值的對應。
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, bank.ErrNotAuthenticated):
		return http.StatusUnauthorized, "not_authenticated"
	case errors.Is(err, bank.ErrWrongPassword):
		return http.StatusForbidden, "password_change_failed"
	case errors.Is(err, bank.ErrInvalidAmount):
		return http.StatusBadRequest, "invalid_amount"
	case errors.Is(err, bank.ErrInvalidCard):
		return http.StatusBadRequest, "invalid_card"
	case errors.Is(err, bank.ErrInsufficient):
		return http.StatusConflict, "insufficient_balance"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}
