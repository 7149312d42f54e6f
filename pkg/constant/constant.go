package constant

import (
	"errors"
	"time"
)

const (
	CacheParentKey = "reserva"
)

const (
	RequestParamID    = "id"
	RequestParamToken = "token"
	RequestParamHold  = "hold"
	RequestParamType  = "type"

	RequestValidateUUID = "required,uuid"
)

const (
	ResourceKindCourt = "court"
	ResourceKindTable = "table"

	ResourceStatusAvailable   = "available"
	ResourceStatusMaintenance = "maintenance"
	ResourceStatusReserved    = "reserved"
	ResourceStatusInUse       = "in_use"
)

const (
	BookingCanceledByUser   = "user"
	BookingCanceledByAdmin  = "admin"
	BookingCanceledBySystem = "system"

	BookingTokenPrefix = "PD"
	BookingTokenLength = 8

	// MaxServiceQuantity bounds so_luong on a single service line.
	MaxServiceQuantity = 1000
	// MaxAmount is the largest VND amount the NUMERIC(14, 0) totals can hold.
	MaxAmount int64 = 99_999_999_999_999
)

const (
	PaymentMethodCash         = "cash"
	PaymentMethodBankTransfer = "bank_transfer"

	PaymentGatewayManual = "manual"
	PaymentGatewayXendit = "xendit"

	PaymentCurrencyVND = "VND"
	PaymentStatusPaid  = "PAID"
)

const (
	RequestHeaderCallback = "x-callback-token"
)

const (
	ReasonOutsideShift     = "outside configured shift"
	ReasonAlreadyReserved  = "time slot already reserved"
	ReasonResourceDisabled = "resource unavailable"
)

const (
	UploadTypeDishes = "dishes"
	UploadTypeBuffet = "buffet"
	UploadTypeCourts = "courts"

	UploadFormField   = "image"
	UploadThumbDir    = "thumbs"
	UploadThumbWidth  = 300
	UploadPublicRoute = "/images"

	StorageDriverDisk = "disk"
	StorageDriverS3   = "s3"
)

const (
	ContentTypeJPEG = "image/jpeg"
	ContentTypeJPG  = "image/jpg"
	ContentTypePNG  = "image/png"
	ContentTypeGIF  = "image/gif"
	ContentTypeWEBP = "image/webp"
	ContentTypePDF  = "application/pdf"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

const (
	FullDateFormat = time.RFC3339
	DateFormat     = "2006-01-02"
	HoursFormat    = "15:04"

	SecondsPerHour     = 3600
	MinutesPerHour     = 60
	MicrosecondsPerSec = 1000000
)

const (
	UserRoleAdmin = "9"
	UserRoleStaff = "5"
	UserRoleUser  = "1"
)

const (
	JwtFieldUser    = "user_id"
	JwtFieldEmail   = "email"
	JwtFieldLevel   = "level"
	JwtFieldSession = "session"
)

const (
	PaginationDefaultLimit = 10
	PaginationDefaultPage  = 1
)

var (
	ErrInvalidContextUserType = errors.New("invalid user type in context")
)
