package usecase

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"kitchen-service/src/internal/entity"
)

var timePattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?:\s*)?(AM|PM)?$`)

// parseClockMinutes turns "H:MM" or "H:MM AM/PM" into minutes since midnight.
// 12 AM is 00:00 and 12 PM is 12:00. Unparsable input counts as minute 0.
func parseClockMinutes(timeStr string) int {
	normalized := strings.ToUpper(strings.TrimSpace(timeStr))
	match := timePattern.FindStringSubmatch(normalized)
	if match == nil {
		return 0
	}

	hours, _ := strconv.Atoi(match[1])
	minutes, _ := strconv.Atoi(match[2])
	modifier := match[3]

	if modifier == "PM" && hours != 12 {
		hours += 12
	}
	if modifier == "AM" && hours == 12 {
		hours = 0
	}

	return hours*60 + minutes
}

// IsStoreOpen decides whether new orders may be placed. Holiday mode closes
// the store unconditionally. When timings are missing the store fails open:
// availability cannot be computed, so ordering is not blocked. A close time
// earlier than the open time is an overnight window (e.g. 6 PM to 2 AM).
func IsStoreOpen(settings *entity.Settings, now time.Time) bool {
	if settings == nil {
		return true
	}
	if settings.IsHolidayMode {
		return false
	}
	if settings.OpenTime == "" || settings.CloseTime == "" {
		return true
	}

	nowMinutes := now.Hour()*60 + now.Minute()
	openMinutes := parseClockMinutes(settings.OpenTime)
	closeMinutes := parseClockMinutes(settings.CloseTime)

	if closeMinutes < openMinutes {
		return nowMinutes >= openMinutes || nowMinutes <= closeMinutes
	}

	return nowMinutes >= openMinutes && nowMinutes <= closeMinutes
}
