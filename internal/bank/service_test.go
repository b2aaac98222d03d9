// internal/bank/service_test.go
//
// Service 的單元測試：登入、提款、轉帳、變更密碼、餘額查詢與工作階段狀態機。
// 除 TestSessionPersistence 使用暫存檔外，全部為 in-memory 執行。

package bank

import (
	"os"
	"path/filepath"
	"testing"

	"atm/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixture 對應帳戶檔 `1111,pass1,1000000` 與 `2222,pass2,500000`。
func fixture() []Account {
	return []Account{
		{CardNumber: "1111", Password: "pass1", Balance: 1000000},
		{CardNumber: "2222", Password: "pass2", Balance: 500000},
	}
}

func login(t *testing.T, s *Service, password string) *Account {
	t.Helper()
	a, err := s.Authenticate(password)
	require.NoError(t, err)
	require.NotNil(t, a)
	return a
}

func TestAuthenticate(t *testing.T) {
	s := NewService(fixture())
	assert.Nil(t, s.CurrentAccount())
	assert.Empty(t, s.SessionID())

	a := login(t, s, "pass2")
	assert.Equal(t, "2222", a.CardNumber)
	assert.Same(t, a, s.CurrentAccount())
	assert.NotEmpty(t, s.SessionID())
}

func TestAuthenticateWrongPasswordKeepsSession(t *testing.T) {
	s := NewService(fixture())

	_, err := s.Authenticate("nope")
	assert.ErrorIs(t, err, ErrWrongPassword)
	assert.Nil(t, s.CurrentAccount())

	login(t, s, "pass1")
	sid := s.SessionID()

	// 大小寫敏感
	_, err = s.Authenticate("PASS2")
	assert.ErrorIs(t, err, ErrWrongPassword)
	assert.Equal(t, "1111", s.CurrentAccount().CardNumber)
	assert.Equal(t, sid, s.SessionID())
}

func TestAuthenticateFirstMatchWins(t *testing.T) {
	accts := []Account{
		{CardNumber: "1111", Password: "same", Balance: 1},
		{CardNumber: "2222", Password: "same", Balance: 2},
	}
	s := NewService(accts)

	for i := 0; i < 3; i++ {
		a := login(t, s, "same")
		assert.Equal(t, "1111", a.CardNumber)
	}
}

func TestAuthenticateRebinds(t *testing.T) {
	s := NewService(fixture())
	login(t, s, "pass1")
	first := s.SessionID()

	a := login(t, s, "pass2")
	assert.Equal(t, "2222", a.CardNumber)
	assert.Equal(t, int64(500000), s.Balance())
	assert.NotEqual(t, first, s.SessionID())
}

func TestLogout(t *testing.T) {
	s := NewService(fixture())
	login(t, s, "pass1")

	s.Logout()
	assert.Nil(t, s.CurrentAccount())
	assert.Empty(t, s.SessionID())
	assert.Equal(t, int64(0), s.Balance())
	assert.ErrorIs(t, s.Withdraw(1), ErrNotAuthenticated)
}

func TestWithdrawScenario(t *testing.T) {
	s := NewService(fixture())
	login(t, s, "pass2")

	assert.ErrorIs(t, s.Withdraw(600000), ErrInsufficient)
	assert.Equal(t, int64(500000), s.Balance())

	require.NoError(t, s.Withdraw(500000))
	assert.Equal(t, int64(0), s.Balance())

	assert.ErrorIs(t, s.Withdraw(1), ErrInsufficient)
	assert.Equal(t, int64(0), s.Balance())
}

func TestWithdrawInvalidAmount(t *testing.T) {
	s := NewService(fixture())
	login(t, s, "pass1")

	for _, amt := range []int64{0, -1, -500000} {
		assert.ErrorIs(t, s.Withdraw(amt), ErrInvalidAmount, "amount=%d", amt)
	}
	assert.Equal(t, int64(1000000), s.Balance())
}

func TestWithdrawBoundary(t *testing.T) {
	for _, tt := range []struct {
		balance, amount int64
		ok              bool
	}{
		{balance: 10, amount: 10, ok: true},
		{balance: 10, amount: 11, ok: false},
		{balance: 10, amount: 1, ok: true},
		{balance: 0, amount: 1, ok: false},
	} {
		s := NewService([]Account{{CardNumber: "1", Password: "p", Balance: tt.balance}})
		login(t, s, "p")
		err := s.Withdraw(tt.amount)
		if tt.ok {
			require.NoError(t, err)
			assert.Equal(t, tt.balance-tt.amount, s.Balance())
		} else {
			require.Error(t, err)
			assert.Equal(t, tt.balance, s.Balance())
		}
		assert.GreaterOrEqual(t, s.Balance(), int64(0))
	}
}

func TestTransferScenario(t *testing.T) {
	accts := fixture()
	s := NewService(accts)
	login(t, s, "pass1")

	require.NoError(t, s.Transfer(100, "1234"))
	assert.Equal(t, int64(999900), s.Balance())

	assert.ErrorIs(t, s.Transfer(100, "12a4"), ErrInvalidCard)
	assert.Equal(t, int64(999900), s.Balance())

	assert.ErrorIs(t, s.Transfer(-5, "1234"), ErrInvalidAmount)
	assert.ErrorIs(t, s.Transfer(0, "1234"), ErrInvalidAmount)
	assert.ErrorIs(t, s.Transfer(999901, "1234"), ErrInsufficient)
	assert.Equal(t, int64(999900), s.Balance())
}

func TestTransferIsOneSided(t *testing.T) {
	accts := fixture()
	s := NewService(accts)
	login(t, s, "pass1")

	// 轉到既有卡號也不會入帳
	require.NoError(t, s.Transfer(1000, "2222"))
	assert.Equal(t, int64(999000), accts[0].Balance)
	assert.Equal(t, int64(500000), accts[1].Balance)

	// 不存在的卡號同樣成功
	require.NoError(t, s.Transfer(1000, "987654321"))
	assert.Equal(t, int64(998000), accts[0].Balance)
}

func TestTransferCardValidation(t *testing.T) {
	tests := []struct {
		card string
		ok   bool
	}{
		{card: "1234", ok: true},
		{card: "0000000000000000", ok: true},
		{card: "۱۲۳۴", ok: true}, // 波斯數字
		{card: "", ok: false},
		{card: " 1234", ok: false},
		{card: "1234 ", ok: false},
		{card: "12-34", ok: false},
		{card: "-1234", ok: false},
		{card: "12.4", ok: false},
	}
	for _, tt := range tests {
		s := NewService(fixture())
		login(t, s, "pass1")
		err := s.Transfer(1, tt.card)
		if tt.ok {
			assert.NoError(t, err, "card=%q", tt.card)
		} else {
			assert.ErrorIs(t, err, ErrInvalidCard, "card=%q", tt.card)
		}
	}
}

func TestTransferCheckOrder(t *testing.T) {
	s := NewService(fixture())
	assert.ErrorIs(t, s.Transfer(-1, "abc"), ErrNotAuthenticated)

	login(t, s, "pass2")
	assert.ErrorIs(t, s.Transfer(-1, "abc"), ErrInvalidAmount)
	assert.ErrorIs(t, s.Transfer(9999999, "abc"), ErrInvalidCard)
	assert.ErrorIs(t, s.Transfer(9999999, "1"), ErrInsufficient)
}

func TestChangePassword(t *testing.T) {
	s := NewService(fixture())
	assert.ErrorIs(t, s.ChangePassword("pass1", "x"), ErrNotAuthenticated)

	login(t, s, "pass1")
	assert.ErrorIs(t, s.ChangePassword("wrong", "x"), ErrWrongPassword)
	assert.Equal(t, "pass1", s.CurrentAccount().Password)

	require.NoError(t, s.ChangePassword("pass1", "newpass"))
	s.Logout()

	_, err := s.Authenticate("pass1")
	assert.ErrorIs(t, err, ErrWrongPassword)
	a := login(t, s, "newpass")
	assert.Equal(t, "1111", a.CardNumber)
}

func TestChangePasswordAcceptsEmpty(t *testing.T) {
	s := NewService(fixture())
	login(t, s, "pass2")

	require.NoError(t, s.ChangePassword("pass2", ""))
	a := login(t, s, "")
	assert.Equal(t, "2222", a.CardNumber)
}

func TestChangePasswordOldStillMatchesOtherAccount(t *testing.T) {
	accts := []Account{
		{CardNumber: "1111", Password: "shared", Balance: 1},
		{CardNumber: "2222", Password: "shared", Balance: 2},
	}
	s := NewService(accts)
	login(t, s, "shared")
	require.NoError(t, s.ChangePassword("shared", "mine"))

	a := login(t, s, "shared")
	assert.Equal(t, "2222", a.CardNumber)
}

func TestBalanceUnauthenticated(t *testing.T) {
	s := NewService(fixture())
	assert.Equal(t, int64(0), s.Balance())
}

func TestUnauthenticatedMutationsAreNoOps(t *testing.T) {
	accts := fixture()
	s := NewService(accts)

	assert.ErrorIs(t, s.Withdraw(1), ErrNotAuthenticated)
	assert.ErrorIs(t, s.Transfer(1, "1234"), ErrNotAuthenticated)
	assert.ErrorIs(t, s.ChangePassword("pass1", "x"), ErrNotAuthenticated)
	assert.Equal(t, fixture(), accts)
}

// TestMutationsVisibleToOwner 確認 Service 直接修改呼叫端的切片，而非拷貝。
func TestMutationsVisibleToOwner(t *testing.T) {
	accts := fixture()
	s := NewService(accts)
	login(t, s, "pass2")

	require.NoError(t, s.Withdraw(1000))
	require.NoError(t, s.ChangePassword("pass2", "p2"))

	assert.Equal(t, Account{CardNumber: "2222", Password: "p2", Balance: 499000}, accts[1])
	assert.Equal(t, accts, s.Accounts())
}

func TestRecordsRoundTrip(t *testing.T) {
	recs := []storage.Record{
		{CardNumber: "1111", Password: "pass1", Balance: 1000000},
		{CardNumber: "2222", Password: "pass2", Balance: 500000},
	}
	accts := FromRecords(recs)
	assert.Equal(t, fixture(), accts)
	assert.Equal(t, recs, ToRecords(accts))
}

// TestSessionPersistence 模擬一次完整流程：載入 → 登入並異動 → 保存 → 重新載入。
func TestSessionPersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.csv")
	require.NoError(t, os.WriteFile(path, []byte("1111,pass1,1000000\n2222,pass2,500000\n"), 0o600))

	recs, err := storage.Load(path)
	require.NoError(t, err)
	s := NewService(FromRecords(recs))

	login(t, s, "pass1")
	require.NoError(t, s.Transfer(100, "1234"))
	require.NoError(t, s.ChangePassword("pass1", "p1"))
	s.Logout()
	require.NoError(t, storage.Save(path, ToRecords(s.Accounts())))

	reloaded, err := storage.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []storage.Record{
		{CardNumber: "1111", Password: "p1", Balance: 999900},
		{CardNumber: "2222", Password: "pass2", Balance: 500000},
	}, reloaded)
}
