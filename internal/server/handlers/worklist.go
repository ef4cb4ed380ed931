package handlers

import (
	"bytes"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lpranav17/LCMS-Automation/internal/model"
	"github.com/lpranav17/LCMS-Automation/internal/service/csvout"
	"github.com/lpranav17/LCMS-Automation/internal/service/worklist"
	"github.com/lpranav17/LCMS-Automation/internal/store"
)

// Generate 生成工作列表预览
// 硬错误返回 422，警告随结果一并返回
func (h *Handlers) Generate(c *gin.Context) {
	var req model.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}

	wl, err := worklist.Generate(&req)
	if err != nil {
		if isHardError(err) {
			fail(c, http.StatusUnprocessableEntity, err.Error())
		} else {
			fail(c, http.StatusBadRequest, err.Error())
		}
		return
	}
	success(c, wl)
}

// exportRequest 导出请求
type exportRequest struct {
	Request       model.GenerateRequest `json:"request"`
	Format        string                `json:"format"`        // csv（默认）/ xlsx
	IncludeHeader bool                  `json:"includeHeader"` // 仅 csv
	Filename      string                `json:"filename"`
}

// Export 生成并渲染导出文件，返回下载令牌
func (h *Handlers) Export(c *gin.Context) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}

	wl, err := worklist.Generate(&req.Request)
	if err != nil {
		if isHardError(err) {
			fail(c, http.StatusUnprocessableEntity, err.Error())
		} else {
			fail(c, http.StatusBadRequest, err.Error())
		}
		return
	}

	format := req.Format
	if format == "" {
		format = "csv"
	}

	var file *exportFile
	switch format {
	case "csv":
		text, err := csvout.Serialize(wl, req.IncludeHeader)
		if err != nil {
			fail(c, http.StatusInternalServerError, err.Error())
			return
		}
		file = &exportFile{
			Filename:    exportFilename(req.Filename, req.Request.ProjectName, req.IncludeHeader, ".csv"),
			ContentType: "text/csv",
			Bytes:       []byte(text),
		}
	case "xlsx":
		f, err := csvout.SerializeXLSX(wl)
		if err != nil {
			fail(c, http.StatusInternalServerError, err.Error())
			return
		}
		var buf bytes.Buffer
		if err := f.Write(&buf); err != nil {
			fail(c, http.StatusInternalServerError, err.Error())
			return
		}
		file = &exportFile{
			Filename:    exportFilename(req.Filename, req.Request.ProjectName, false, ".xlsx"),
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Bytes:       buf.Bytes(),
		}
	default:
		fail(c, http.StatusBadRequest, fmt.Sprintf("unsupported export format: %s", format))
		return
	}

	token := h.exports.put(file, exportTTL)

	if h.history != nil {
		_, err := h.history.RecordExport(&store.ExportRecord{
			ProjectName:  req.Request.ProjectName,
			Instrument:   string(wl.Instrument),
			RowCount:     len(wl.Rows),
			WarningCount: len(wl.Warnings),
			Format:       format,
			WithHeader:   req.IncludeHeader,
			Filename:     file.Filename,
		})
		if err != nil {
			// 历史记录失败不影响导出本身
			log.Printf("failed to record export history: %v", err)
		}
	}

	success(c, gin.H{
		"token":    token,
		"filename": file.Filename,
		"rowCount": len(wl.Rows),
		"warnings": wl.Warnings,
	})
}

// DownloadExport 按令牌下载导出文件
func (h *Handlers) DownloadExport(c *gin.Context) {
	token := c.Param("token")

	file, ok := h.exports.get(token)
	if !ok {
		fail(c, http.StatusNotFound, "export not found or expired")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Bytes)
}

// ListExports 导出历史
func (h *Handlers) ListExports(c *gin.Context) {
	if h.history == nil {
		success(c, []interface{}{})
		return
	}
	records, err := h.history.ListExports(h.historyLimit)
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	success(c, records)
}

// exportFilename 确定导出文件名
// 带表头的 CSV 变体加 headers_ 前缀以示区分
func exportFilename(explicit, projectName string, withHeader bool, ext string) string {
	name := explicit
	if name == "" {
		if projectName != "" {
			name = projectName + ext
		} else {
			name = "worklist" + ext
		}
		if withHeader {
			name = "headers_" + name
		}
	}
	return name
}
