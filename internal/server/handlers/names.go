package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lpranav17/LCMS-Automation/internal/service/namelist"
)

// UploadNames 上传名单文件（CSV / Excel）
// 返回文件 id 与表头预览，供后续选列
func (h *Handlers) UploadNames(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		fail(c, http.StatusBadRequest, "file is required")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		fail(c, http.StatusBadRequest, fmt.Sprintf("failed to open upload: %v", err))
		return
	}
	defer f.Close()

	list, err := namelist.Parse(fileHeader.Filename, f)
	if err != nil {
		fail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	h.uploads.put(list, uploadTTL)

	success(c, gin.H{
		"id":       list.ID,
		"fileName": list.FileName,
		"headers":  list.Headers,
		"rowCount": list.RowCount(),
	})
}

// selectNamesRequest 选列请求：按表头名或列下标二选一
type selectNamesRequest struct {
	ID          string `json:"id"`
	Column      string `json:"column"`
	ColumnIndex *int   `json:"columnIndex"`
}

// SelectNames 从已上传名单中选定一列，返回有序样品名
func (h *Handlers) SelectNames(c *gin.Context) {
	var req selectNamesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}

	list, ok := h.uploads.get(req.ID)
	if !ok {
		fail(c, http.StatusNotFound, "uploaded name list not found")
		return
	}

	var (
		names []string
		err   error
	)
	if req.ColumnIndex != nil {
		names, err = list.ColumnAt(*req.ColumnIndex)
	} else {
		names, err = list.Column(req.Column)
	}
	if err != nil {
		fail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	success(c, gin.H{
		"names": names,
		"count": len(names),
	})
}
