package handlers

import (
	"errors"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/lpranav17/LCMS-Automation/internal/model"
	"github.com/lpranav17/LCMS-Automation/internal/service/template"
	"github.com/lpranav17/LCMS-Automation/internal/store"
)

// Version 应用版本
const Version = "1.0.0"

// Handlers API处理器
type Handlers struct {
	templates    template.Store
	history      *store.Store // 可为 nil（纯内存运行，测试用）
	historyLimit int

	// 已生成的导出文件与已上传名单的带时效缓存
	exports *exportStore
	uploads *uploadStore
}

// NewHandlers 创建处理器
func NewHandlers(templates template.Store, history *store.Store, historyLimit int) *Handlers {
	return &Handlers{
		templates:    templates,
		history:      history,
		historyLimit: historyLimit,
		exports:      newExportStore(),
		uploads:      newUploadStore(),
	}
}

// RegisterRoutes 注册 API 路由
func (h *Handlers) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态
	router.GET("/status", h.GetStatus)

	// 工作列表生成与导出
	router.POST("/worklist/generate", h.Generate)
	router.POST("/worklist/export", h.Export)
	router.GET("/worklist/download/:token", h.DownloadExport)

	// 模板管理
	router.GET("/templates", h.ListTemplates)
	router.GET("/templates/:name", h.GetTemplate)
	router.PUT("/templates/:name", h.SaveTemplate)
	router.DELETE("/templates/:name", h.DeleteTemplate)

	// 名单导入
	router.POST("/names/upload", h.UploadNames)
	router.POST("/names/select", h.SelectNames)

	// 导出历史
	router.GET("/exports", h.ListExports)
}

// Response 通用响应
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, Response{
		Code:    status,
		Message: message,
	})
}

// isHardError 判断是否为阻断性错误（应映射为 422）
func isHardError(err error) bool {
	var nameErr *model.NamingLengthMismatchError
	var freqErr *model.InvalidFrequencyRuleError
	var tplErr *model.TemplateFormatError
	return errors.As(err, &nameErr) || errors.As(err, &freqErr) || errors.As(err, &tplErr)
}

// GetStatus 系统状态：版本、支持的仪器与板型
func (h *Handlers) GetStatus(c *gin.Context) {
	instruments := make([]gin.H, 0)
	for _, inst := range model.Instruments() {
		profile, _ := model.ProfileFor(inst)
		plateTypes := make([]string, 0, len(profile.PlateTypes))
		for pt := range profile.PlateTypes {
			plateTypes = append(plateTypes, pt)
		}
		sort.Strings(plateTypes)
		instruments = append(instruments, gin.H{
			"id":               inst,
			"plateTypes":       plateTypes,
			"defaultPlateType": profile.DefaultPlateType,
			"columns":          profile.Columns,
		})
	}
	success(c, gin.H{
		"version":     Version,
		"instruments": instruments,
	})
}
