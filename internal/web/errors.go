package web

import (
	"errors"
	"net/http"

	"github.com/evcraddock/client-tracker/internal/client"
)

var errorStatusMap = map[error]int{
	client.ErrNotFound:     http.StatusNotFound,
	client.ErrNameRequired: http.StatusBadRequest,
	client.ErrInvalidDate:  http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// validationMessage is the text shown above the form for a 400.
func validationMessage(err error) string {
	switch {
	case errors.Is(err, client.ErrNameRequired):
		return "請輸入客戶姓名"
	case errors.Is(err, client.ErrInvalidDate):
		return "下次跟進日期格式錯誤，請使用 YYYY-MM-DD"
	}
	return err.Error()
}
