package helper

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"sort"
	"strings"
	"time"

	"github.com/savioruz/reserva/pkg/constant"
)

// tokenAlphabet drops characters that are easy to misread on a receipt (0/O, 1/I).
const tokenAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateUniqueKey generates a unique key based on the provided map
func GenerateUniqueKey(args map[string]string) string {
	var keys []string
	for k := range args {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	var uniqueKey string
	for _, k := range keys {
		uniqueKey += fmt.Sprintf("%s=%s;", k, args[k])
	}

	return uniqueKey
}

// BuildCacheKey builds a cache key based on the provided key and optional postfix
func BuildCacheKey(key string, postfix ...string) string {
	if len(postfix) > 0 && postfix[0] != "" {
		return fmt.Sprintf("%s:cache:%s:%s", constant.CacheParentKey, key, postfix[0])
	}

	return fmt.Sprintf("%s:cache:%s", constant.CacheParentKey, key)
}

func DefaultPagination(page, limit int) (resultPage, resultLimit int) {
	resultPage = page
	if resultPage <= 0 {
		resultPage = constant.PaginationDefaultPage
	}

	resultLimit = limit
	if resultLimit <= 0 {
		resultLimit = constant.PaginationDefaultLimit
	}

	return resultPage, resultLimit
}

// IsDateInPast reports whether the given date is before today in the application timezone.
func IsDateInPast(date string, now time.Time) (bool, error) {
	d, err := time.ParseInLocation(constant.DateFormat, date, now.Location())
	if err != nil {
		return false, err
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	return d.Before(today), nil
}

// GenerateBookingToken returns a public booking token such as PD7KQ2M9XA.
func GenerateBookingToken() (string, error) {
	var sb strings.Builder

	sb.WriteString(constant.BookingTokenPrefix)

	limit := big.NewInt(int64(len(tokenAlphabet)))

	for range constant.BookingTokenLength {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}

		sb.WriteByte(tokenAlphabet[n.Int64()])
	}

	return sb.String(), nil
}

// NormalizeBookingToken trims whitespace and a decorative leading '#', as tokens are often copied from receipts.
func NormalizeBookingToken(token string) string {
	token = strings.TrimSpace(token)
	token = strings.TrimPrefix(token, "#")

	return strings.ToUpper(strings.TrimSpace(token))
}

// IsValidImageType checks if the content type is a valid image type
func IsValidImageType(contentType string) bool {
	validTypes := []string{
		constant.ContentTypeJPEG,
		constant.ContentTypeJPG,
		constant.ContentTypePNG,
		constant.ContentTypeGIF,
		constant.ContentTypeWEBP,
	}

	for _, validType := range validTypes {
		if contentType == validType {
			return true
		}
	}

	return false
}

// IsValidUploadType checks the entity folder an image is uploaded for.
func IsValidUploadType(t string) bool {
	switch t {
	case constant.UploadTypeDishes, constant.UploadTypeBuffet, constant.UploadTypeCourts:
		return true
	default:
		return false
	}
}
