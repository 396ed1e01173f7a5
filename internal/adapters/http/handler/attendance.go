package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ogurasousui/hr-selfservice/internal/core/attendance"
	"github.com/ogurasousui/hr-selfservice/internal/core/auth"
)

// AttendanceHandler は勤怠一覧エンドポイントを提供します。
type AttendanceHandler struct {
	uc attendance.UseCase
}

// NewAttendanceHandler は AttendanceHandler を生成します。
func NewAttendanceHandler(uc attendance.UseCase) *AttendanceHandler {
	return &AttendanceHandler{uc: uc}
}

type attendanceRecordResponse struct {
	Date        string  `json:"date"`
	ClockIn     string  `json:"clock_in,omitempty"`
	ClockOut    string  `json:"clock_out,omitempty"`
	HoursWorked float64 `json:"hours_worked"`
}

// List は呼び出し元社員の直近の勤怠を新しい日付順で返します。
// レコードが無い場合も空配列を返します。
func (h *AttendanceHandler) List(c *gin.Context) {
	accountID, ok := AccountIDFromContext(c)
	if !ok {
		writeError(c, auth.ErrInvalidToken)
		return
	}

	records, err := h.uc.ListRecent(c.Request.Context(), accountID, 0)
	if err != nil {
		writeError(c, err)
		return
	}

	response := make([]attendanceRecordResponse, 0, len(records))
	for _, r := range records {
		response = append(response, attendanceRecordResponse{
			Date:        r.Date.Format(dateLayout),
			ClockIn:     formatTimestamp(r.ClockIn),
			ClockOut:    formatTimestamp(r.ClockOut),
			HoursWorked: r.HoursWorked(),
		})
	}

	c.JSON(http.StatusOK, response)
}
