package internal

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"time"
	"unicode"
)

// GenerateCardID creates a unique ID for a card based on timestamp, language and value
// Format: epochMillis_md5(lang:value)[:8]
func GenerateCardID(language string, value int64) string {
	now := time.Now()
	epochMillis := now.UnixNano() / 1000000

	hash := md5.Sum([]byte(fmt.Sprintf("%s:%d", language, value)))
	hashStr := hex.EncodeToString(hash[:])[:8] // Use first 8 chars of MD5

	return fmt.Sprintf("%d_%s", epochMillis, hashStr)
}

// SanitizeFilename creates a safe filename from a string
func SanitizeFilename(s string) string {
	result := ""
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			result += string(r)
		} else {
			result += "_"
		}
	}
	return result
}
