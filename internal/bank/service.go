// internal/bank/service.go
//
// Service 持有已載入的帳戶切片與「目前登入帳戶」的索引。
// 帳戶切片由呼叫端擁有，Service 只是借用：所有變更都直接寫入 accts[idx]，
// 呼叫端之後交給 storage.Save 的同一個切片即可看到結果。
//
// Service 本身不加鎖，同一時間只允許一個呼叫者；並行存取由上層負責序列化。

package bank

import (
	"unicode"

	"github.com/google/uuid"
)

const noSession = -1

// Service 為單一使用者的 ATM 工作階段服務。
//   - accts：借用的帳戶切片（arena）。
//   - cur：目前登入帳戶在 accts 中的索引，未登入時為 -1。
//   - sid：每次成功登入產生的工作階段 ID，僅供日誌關聯使用。
type Service struct {
	accts []Account
	cur   int
	sid   string
}

// NewService 以呼叫端的帳戶切片建立服務，初始為未登入狀態。
func NewService(accts []Account) *Service {
	return &Service{accts: accts, cur: noSession}
}

// Accounts 回傳借用的帳戶切片（非拷貝），供保存使用。
func (s *Service) Accounts() []Account {
	return s.accts
}

// Authenticate 依切片順序找出第一個密碼完全相符的帳戶並設為目前工作階段。
// 僅以密碼驗證、不比對卡號：若兩個帳戶共用密碼，永遠是排在前面的那個勝出。
// 找不到時回傳 ErrWrongPassword，既有的工作階段保持不變。
func (s *Service) Authenticate(password string) (*Account, error) {
	for i := range s.accts {
		if s.accts[i].Password == password {
			s.cur = i
			s.sid = uuid.NewString()
			return &s.accts[i], nil
		}
	}
	return nil, ErrWrongPassword
}

// CurrentAccount 回傳目前登入帳戶的指標（指向切片內部），未登入時為 nil。
func (s *Service) CurrentAccount() *Account {
	if s.cur == noSession {
		return nil
	}
	return &s.accts[s.cur]
}

// SessionID 回傳目前工作階段 ID，未登入時為空字串。
func (s *Service) SessionID() string {
	return s.sid
}

// Logout 結束目前工作階段。
func (s *Service) Logout() {
	s.cur = noSession
	s.sid = ""
}

// ChangePassword 需已登入且 current 與現有密碼相符；新密碼不做任何複雜度檢查，空字串亦可。
func (s *Service) ChangePassword(current, next string) error {
	a := s.CurrentAccount()
	if a == nil {
		return ErrNotAuthenticated
	}
	if a.Password != current {
		return ErrWrongPassword
	}
	a.Password = next
	return nil
}

// Withdraw 提款：金額需 > 0 且不得超過餘額。
func (s *Service) Withdraw(amount int64) error {
	a := s.CurrentAccount()
	if a == nil {
		return ErrNotAuthenticated
	}
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if a.Balance < amount {
		return ErrInsufficient
	}
	a.Balance -= amount
	return nil
}

// Transfer 轉帳：只從目前帳戶扣款。
// 目的卡號只檢查是否為純數字，不確認是否存在，也不會入帳到任何帳戶。
func (s *Service) Transfer(amount int64, destCard string) error {
	a := s.CurrentAccount()
	if a == nil {
		return ErrNotAuthenticated
	}
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if !isDigits(destCard) {
		return ErrInvalidCard
	}
	if a.Balance < amount {
		return ErrInsufficient
	}
	a.Balance -= amount
	return nil
}

// Balance 回傳目前帳戶餘額；未登入時回傳 0（與餘額為 0 無法區分）。
func (s *Service) Balance() int64 {
	if a := s.CurrentAccount(); a != nil {
		return a.Balance
	}
	return 0
}

// isDigits 判斷字串是否非空且每個字元皆為十進位數字（含波斯數字等 Unicode Nd 類別）。
func isDigits(str string) bool {
	if str == "" {
		return false
	}
	for _, r := range str {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
