package dto

import (
	"errors"

	"github.com/savioruz/reserva/pkg/constant"
)

var ErrUnknownResourceStatus = errors.New("unknown resource status")

var tableLabels = map[string]string{
	constant.ResourceStatusAvailable: "Trong",
	constant.ResourceStatusReserved:  "DaDat",
	constant.ResourceStatusInUse:     "DangSuDung",
}

var courtStatuses = map[string]bool{
	constant.ResourceStatusAvailable:   true,
	constant.ResourceStatusMaintenance: true,
}

// ParseStatus returns the canonical status for a resource kind. Tables also accept their legacy labels.
func ParseStatus(kind, s string) (string, error) {
	switch kind {
	case constant.ResourceKindCourt:
		if courtStatuses[s] {
			return s, nil
		}
	case constant.ResourceKindTable:
		if _, ok := tableLabels[s]; ok {
			return s, nil
		}

		for canonical, label := range tableLabels {
			if label == s {
				return canonical, nil
			}
		}
	}

	return "", ErrUnknownResourceStatus
}

func StatusLabel(kind, s string) string {
	if kind == constant.ResourceKindTable {
		if label, ok := tableLabels[s]; ok {
			return label
		}
	}

	return s
}
