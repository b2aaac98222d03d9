// internal/storage/errors.go
//
// 載入階段的錯誤皆為致命錯誤：呼叫端不應在缺少帳戶資料時繼續啟動。
package storage

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound 代表帳戶檔不存在。
	ErrNotFound = errors.New("accounts file not found")

	// ErrFormat 代表帳戶檔內容格式錯誤，可透過 errors.Is 比對 *FormatError。
	ErrFormat = errors.New("malformed accounts file")
)

// FormatError 描述哪一行無法解析。Line 從 1 起算。
type FormatError struct {
	Path   string
	Line   int
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Reason)
}

// Is 讓 errors.Is(err, ErrFormat) 成立。
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}
