package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ogurasousui/hr-selfservice/internal/core/auth"
	"github.com/ogurasousui/hr-selfservice/internal/core/employee"
)

const dateLayout = "2006-01-02"

// ProfileHandler は本人プロフィールの参照エンドポイントを提供します。
type ProfileHandler struct {
	uc employee.UseCase
}

// NewProfileHandler は ProfileHandler を生成します。
func NewProfileHandler(uc employee.UseCase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

type profileResponse struct {
	ID             int64   `json:"id"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Position       string  `json:"position"`
	DepartmentName *string `json:"department_name"`
	HireDate       string  `json:"hire_date"`
	ManagerName    *string `json:"manager_name"`
	ManagerEmail   *string `json:"manager_email"`
}

// Get は呼び出し元アカウントに紐づく社員のプロフィールを返します。
func (h *ProfileHandler) Get(c *gin.Context) {
	accountID, ok := AccountIDFromContext(c)
	if !ok {
		writeError(c, auth.ErrInvalidToken)
		return
	}

	profile, err := h.uc.GetProfile(c.Request.Context(), accountID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toProfileResponse(profile))
}

func toProfileResponse(p *employee.Profile) profileResponse {
	return profileResponse{
		ID:             p.EmployeeID,
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		Position:       p.Position,
		DepartmentName: p.DepartmentName,
		HireDate:       p.HireDate.Format(dateLayout),
		ManagerName:    p.ManagerName,
		ManagerEmail:   p.ManagerEmail,
	}
}

func formatTimestamp(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
