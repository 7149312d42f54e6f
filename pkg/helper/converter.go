package helper

import (
	"math/big"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/savioruz/reserva/pkg/constant"
)

const (
	x = 10

	microsecondsPerMinute = constant.MinutesPerHour * constant.MicrosecondsPerSec
)

func PgBool(b bool) pgtype.Bool {
	return pgtype.Bool{
		Bool:  b,
		Valid: true,
	}
}

// PgString converts a string to pgtype.Text, an empty string becomes NULL.
func PgString(s string) pgtype.Text {
	return pgtype.Text{
		String: s,
		Valid:  s != "",
	}
}

// PgInt64 converts an int64 to pgtype.Numeric
func PgInt64(i int64) pgtype.Numeric {
	bigInt := new(big.Int).SetInt64(i)

	return pgtype.Numeric{
		Int:   bigInt,
		Valid: true,
	}
}

// Int64FromPg converts a pgtype.Numeric to an int64
func Int64FromPg(n pgtype.Numeric) int64 {
	if !n.Valid || n.Int == nil {
		return 0
	}

	if n.Exp != 0 {
		result := new(big.Int).Set(n.Int)

		if n.Exp < 0 {
			divisor := new(big.Int).Exp(big.NewInt(x), big.NewInt(int64(-n.Exp)), nil)
			result = result.Div(result, divisor)
		} else {
			multiplier := new(big.Int).Exp(big.NewInt(x), big.NewInt(int64(n.Exp)), nil)
			result = result.Mul(result, multiplier)
		}

		return result.Int64()
	}

	return n.Int.Int64()
}

// PgUUID converts a string UUID to pgtype.UUID
func PgUUID(id string) pgtype.UUID {
	var uuid pgtype.UUID

	err := uuid.Scan(id)
	if err != nil {
		return pgtype.UUID{Valid: false}
	}

	return uuid
}

// PgDate converts a string date to pgtype.Date
func PgDate(date string) pgtype.Date {
	var pgDate pgtype.Date

	err := pgDate.Scan(date)
	if err != nil {
		return pgtype.Date{Valid: false}
	}

	return pgDate
}

func PgDateToString(d pgtype.Date) string {
	if !d.Valid {
		return ""
	}

	return d.Time.Format(constant.DateFormat)
}

// PgTimeFromString converts a time string (format "15:04") to pgtype.Time
func PgTimeFromString(timeStr string) (pgtype.Time, error) {
	parsedTime, err := time.Parse(constant.HoursFormat, timeStr)
	if err != nil {
		return pgtype.Time{Valid: false}, err
	}

	return PgTimeFromMinutes(parsedTime.Hour()*constant.MinutesPerHour + parsedTime.Minute()), nil
}

// PgTimeFromMinutes converts minutes since midnight to pgtype.Time
func PgTimeFromMinutes(minutes int) pgtype.Time {
	return pgtype.Time{
		Microseconds: int64(minutes) * microsecondsPerMinute,
		Valid:        true,
	}
}

// MinutesFromPgTime converts pgtype.Time to minutes since midnight.
func MinutesFromPgTime(t pgtype.Time) int {
	if !t.Valid {
		return 0
	}

	return int(t.Microseconds / microsecondsPerMinute)
}

func PgTimeToString(t pgtype.Time) string {
	if !t.Valid {
		return ""
	}

	totalSeconds := t.Microseconds / constant.MicrosecondsPerSec
	hours := totalSeconds / constant.SecondsPerHour
	minutes := (totalSeconds % constant.SecondsPerHour) / constant.MinutesPerHour

	return time.Date(0, 1, 1, int(hours), int(minutes), 0, 0, time.UTC).Format(constant.HoursFormat)
}

// PgTimestamp converts a time.Time object to pgtype.Timestamp
func PgTimestamp(t time.Time) pgtype.Timestamp {
	return pgtype.Timestamp{
		Time:             t,
		InfinityModifier: 0,
		Valid:            true,
	}
}

func PgInt4(i int) pgtype.Int4 {
	return pgtype.Int4{
		Int32: int32(i),
		Valid: true,
	}
}

var (
	// AppTimezone holds the application's timezone
	AppTimezone *time.Location
)

// InitTimezone initializes the application timezone
func InitTimezone(timezone string) error {
	if timezone == "" {
		timezone = "UTC"
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc, err = time.LoadLocation("UTC")
		if err != nil {
			AppTimezone = time.UTC

			return nil
		}
	}

	AppTimezone = loc

	return nil
}

// NowInAppTimezone returns the current time in the application's timezone
func NowInAppTimezone() time.Time {
	if AppTimezone == nil {
		return time.Now().UTC()
	}

	return time.Now().In(AppTimezone)
}

// ToAppTimezone converts a time to the application's timezone
func ToAppTimezone(t time.Time) time.Time {
	if AppTimezone == nil {
		return t.UTC()
	}

	return t.In(AppTimezone)
}

// FormatDateInAppTimezone formats a time in the application timezone using the given format
func FormatDateInAppTimezone(t time.Time, format string) string {
	return ToAppTimezone(t).Format(format)
}
