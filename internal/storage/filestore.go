// internal/storage/filestore.go
//
// 提供帳戶檔的載入與保存。本層只處理 I/O 與序列化，不涉入任何商業規則。
//
// Save 直接截斷並覆寫原檔，不採 .tmp + rename：寫入中途當機可能留下損毀的檔案。
package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

// Load 逐行讀取帳戶檔並解析為 Record 切片，順序與檔案行序一致。
// 檔案不存在回傳 ErrNotFound；任何一行格式錯誤即回傳 *FormatError，不做部分載入。
// 卡號重複時照原樣保留。
func Load(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("open accounts file: %w", err)
	}
	defer f.Close()

	var out []Record
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		rec, err := parseLine(sc.Text())
		if err != nil {
			return nil, &FormatError{Path: path, Line: line, Reason: err.Error()}
		}
		out = append(out, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read accounts file: %w", err)
	}
	return out, nil
}

// parseLine 解析單行。容忍以 CRLF 結尾的舊檔。
func parseLine(text string) (Record, error) {
	text = strings.TrimSuffix(text, "\r")
	fields := strings.Split(text, Delimiter)
	if len(fields) != fieldCount {
		return Record{}, fmt.Errorf("want %d fields, got %d", fieldCount, len(fields))
	}
	bal, err := strconv.ParseInt(strings.TrimSpace(fields[2]), 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("invalid balance %q", fields[2])
	}
	return Record{CardNumber: fields[0], Password: fields[1], Balance: bal}, nil
}

// Save 依序將每筆 Record 寫成一行，完整覆寫 path。
func Save(path string, recs []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create accounts file: %w", err)
	}

	w := bufio.NewWriter(f)
	for _, r := range recs {
		if _, err := fmt.Fprintf(w, "%s%s%s%s%d\n", r.CardNumber, Delimiter, r.Password, Delimiter, r.Balance); err != nil {
			f.Close()
			return fmt.Errorf("write accounts file: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write accounts file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close accounts file: %w", err)
	}
	return nil
}
