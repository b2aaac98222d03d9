// Package config 集中管理程序設定：預設值 → 環境變數 → 命令列旗標（由 cmd/atm 套用）。
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"atm/internal/i18n"
)

// Config 為 ATM 伺服器的設定。
type Config struct {
	AccountsFile string        // 帳戶檔路徑
	Addr         string        // HTTP 監聽位址
	Language     string        // 預設介面語言（fa 或 en）
	ReadTimeout  time.Duration // HTTP 讀取逾時
	WriteTimeout time.Duration // HTTP 寫入逾時
}

// Default 回傳預設設定。
func Default() Config {
	return Config{
		AccountsFile: "users.csv",
		Addr:         ":8080",
		Language:     i18n.Persian,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
}

// FromEnv 以預設值為基礎套用 ATM_* 環境變數。
func FromEnv() (Config, error) {
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	if v, ok := lookup("ATM_ACCOUNTS_FILE"); ok && v != "" {
		cfg.AccountsFile = v
	}
	if v, ok := lookup("ATM_ADDR"); ok && v != "" {
		cfg.Addr = v
	}
	if v, ok := lookup("ATM_LANG"); ok && v != "" {
		cfg.Language = v
	}
	for key, dst := range map[string]*time.Duration{
		"ATM_READ_TIMEOUT":  &cfg.ReadTimeout,
		"ATM_WRITE_TIMEOUT": &cfg.WriteTimeout,
	} {
		v, ok := lookup(key)
		if !ok || v == "" {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", key, err)
		}
		*dst = d
	}
	return cfg, nil
}

// Validate 檢查設定是否可用。
func (c Config) Validate() error {
	if c.AccountsFile == "" {
		return errors.New("config: accounts file is required")
	}
	if c.Addr == "" {
		return errors.New("config: listen address is required")
	}
	if !i18n.Supported(c.Language) {
		return fmt.Errorf("config: unsupported language %q", c.Language)
	}
	if c.ReadTimeout < 0 || c.WriteTimeout < 0 {
		return errors.New("config: timeouts must not be negative")
	}
	return nil
}
