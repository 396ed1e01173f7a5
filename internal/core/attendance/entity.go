package attendance

import (
	"math"
	"time"
)

// Record は社員 1 人の 1 日分の勤怠レコードです。
// clock_in / clock_out はどちらも未打刻の可能性があります。
type Record struct {
	ID         int64
	EmployeeID int64
	Date       time.Time
	ClockIn    *time.Time
	ClockOut   *time.Time
}

// HoursWorked は打刻から勤務時間を算出します。
// 両方の打刻が揃っていない場合は 0 を返します。小数第 2 位まで丸めます。
func (r *Record) HoursWorked() float64 {
	if r.ClockIn == nil || r.ClockOut == nil {
		return 0
	}
	hours := r.ClockOut.Sub(*r.ClockIn).Hours()
	return math.Round(hours*100) / 100
}
