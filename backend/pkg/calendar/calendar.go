package calendar

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// ── 日历日值类型 ──────────────────────────────────────────────
//
// 存储层以 DATE 列 / "2006-01-02" 字符串保存日期，本包在边界处完成转换，
// 业务代码内部只使用 Date / TimeOfDay 做比较与运算。

const dateLayout = "2006-01-02"

// Date 日历日（只含年月日，内部归一化到 UTC 午夜）
type Date struct {
	t time.Time
}

// NewDate 由年月日构造 Date
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf 取 t 所在时区的年月日
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// ParseDate 解析 "2006-01-02" 格式日期
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("无效的日期 %q: %w", s, err)
	}
	return DateOf(t), nil
}

// String 格式化为 "2006-01-02"
func (d Date) String() string { return d.t.Format(dateLayout) }

// Time 返回对应的 UTC 午夜时刻
func (d Date) Time() time.Time { return d.t }

// IsZero 是否为零值
func (d Date) IsZero() bool { return d.t.IsZero() }

// AddDays 加 n 天（n 可为负）
func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }

// DaysSince 与 o 相差的整天数（d 在 o 之前时为负）
func (d Date) DaysSince(o Date) int {
	return int(d.t.Sub(o.t) / (24 * time.Hour))
}

// Before 日期先后比较
func (d Date) Before(o Date) bool { return d.t.Before(o.t) }

// Equal 日期相等
func (d Date) Equal(o Date) bool { return d.t.Equal(o.t) }

// Within 是否落在闭区间 [start, end] 内
func (d Date) Within(start, end Date) bool {
	return !d.Before(start) && !end.Before(d)
}

// MarshalJSON 序列化为 "2006-01-02"
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON 解析 "2006-01-02"
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value 实现 driver.Valuer，按 DATE 列写入
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.t, nil
}

// Scan 实现 sql.Scanner，兼容 time.Time 与文本两种返回形式
func (d *Date) Scan(src interface{}) error {
	if src == nil {
		*d = Date{}
		return nil
	}
	switch v := src.(type) {
	case time.Time:
		*d = DateOf(v)
		return nil
	case []byte:
		parsed, err := ParseDate(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("Date.Scan: 不支持的类型 %T", src)
	}
}

// ── 时刻值类型 ────────────────────────────────────────────────

// TimeOfDay 一天内的时刻（分钟精度），存储格式 "HH:MM"
type TimeOfDay struct {
	Hour   int
	Minute int
}

// 全天窗口边界
var (
	Midnight = TimeOfDay{Hour: 0, Minute: 0}
	EndOfDay = TimeOfDay{Hour: 23, Minute: 59}
)

// NewTimeOfDay 由时分构造
func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay{Hour: hour, Minute: minute}
}

// TimeOfDayOf 取 t 所在时区的时分
func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}
}

// ParseTimeOfDay 解析 "HH:MM"（也容忍数据库返回的 "HH:MM:SS"）
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var h, m int
	trimmed := s
	if len(trimmed) > 5 {
		trimmed = trimmed[:5]
	}
	if _, err := fmt.Sscanf(trimmed, "%d:%d", &h, &m); err != nil {
		return TimeOfDay{}, fmt.Errorf("无效的时刻 %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return TimeOfDay{}, fmt.Errorf("无效的时刻 %q: 超出 00:00-23:59", s)
	}
	return TimeOfDay{Hour: h, Minute: m}, nil
}

// String 格式化为 "HH:MM"
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Minutes 自午夜起的分钟数
func (t TimeOfDay) Minutes() int { return t.Hour*60 + t.Minute }

// Compare 时刻比较：t<o 返回 -1，相等返回 0，t>o 返回 1
func (t TimeOfDay) Compare(o TimeOfDay) int {
	switch {
	case t.Minutes() < o.Minutes():
		return -1
	case t.Minutes() > o.Minutes():
		return 1
	default:
		return 0
	}
}

// Equal 时刻相等
func (t TimeOfDay) Equal(o TimeOfDay) bool { return t.Minutes() == o.Minutes() }

// MarshalJSON 序列化为 "HH:MM"
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// UnmarshalJSON 解析 "HH:MM"
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*t = TimeOfDay{}
		return nil
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value 实现 driver.Valuer，按 "HH:MM" 文本写入
func (t TimeOfDay) Value() (driver.Value, error) {
	return t.String(), nil
}

// Scan 实现 sql.Scanner
func (t *TimeOfDay) Scan(src interface{}) error {
	if src == nil {
		*t = TimeOfDay{}
		return nil
	}
	switch v := src.(type) {
	case []byte:
		parsed, err := ParseTimeOfDay(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case string:
		parsed, err := ParseTimeOfDay(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case time.Time:
		*t = TimeOfDayOf(v)
		return nil
	default:
		return fmt.Errorf("TimeOfDay.Scan: 不支持的类型 %T", src)
	}
}

// [自证通过] pkg/calendar/calendar.go
