// internal/server/router.go
//
// 本檔負責 HTTP 路由註冊，與 handler.go 分離。
// 同一組端點同時掛在根路徑與 /api/v1 下。
package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Router 建立並回傳整個 HTTP 處理鏈。
// 路徑相符但方法不符時由 mux 回傳 405。
func (s *Server) Router() http.Handler {
	root := mux.NewRouter()
	s.routes(root.PathPrefix("/api/v1").Subrouter())
	s.routes(root)
	return root
}

func (s *Server) routes(r *mux.Router) {
	// 健康檢查
	r.HandleFunc("/health", s.health).Methods(http.MethodGet)

	// 工作階段：
	//   - POST   /session → 以密碼登入
	//   - DELETE /session → 保存並登出
	r.HandleFunc("/session", s.login).Methods(http.MethodPost)
	r.HandleFunc("/session", s.logout).Methods(http.MethodDelete)

	// 帳戶操作
	r.HandleFunc("/balance", s.balance).Methods(http.MethodGet)
	r.HandleFunc("/withdraw/options", s.withdrawOptions).Methods(http.MethodGet)
	r.HandleFunc("/withdraw", s.withdraw).Methods(http.MethodPost)
	r.HandleFunc("/transfer", s.transfer).Methods(http.MethodPost)
	r.HandleFunc("/password", s.changePassword).Methods(http.MethodPost)

	if s.promHTTP != nil {
		r.Handle("/metrics", s.promHTTP).Methods(http.MethodGet)
	}
}
