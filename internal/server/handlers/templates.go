package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lpranav17/LCMS-Automation/internal/model"
	"github.com/lpranav17/LCMS-Automation/internal/service/template"
)

// ListTemplates 模板名列表
func (h *Handlers) ListTemplates(c *gin.Context) {
	names, err := h.templates.List()
	if err != nil {
		if isHardError(err) {
			fail(c, http.StatusUnprocessableEntity, err.Error())
		} else {
			fail(c, http.StatusInternalServerError, err.Error())
		}
		return
	}
	success(c, names)
}

// GetTemplate 加载模板
// 文档缺少必需键时返回 422，不做部分装载
func (h *Handlers) GetTemplate(c *gin.Context) {
	name := c.Param("name")

	tpl, err := h.templates.Load(name)
	if err != nil {
		switch {
		case errors.Is(err, template.ErrNotFound):
			fail(c, http.StatusNotFound, fmt.Sprintf("template %q not found", name))
		case isHardError(err):
			fail(c, http.StatusUnprocessableEntity, err.Error())
		default:
			fail(c, http.StatusInternalServerError, err.Error())
		}
		return
	}
	success(c, tpl)
}

// SaveTemplate 保存模板（覆盖同名）
func (h *Handlers) SaveTemplate(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		fail(c, http.StatusBadRequest, "template name is required")
		return
	}

	var tpl model.Template
	if err := c.ShouldBindJSON(&tpl); err != nil {
		fail(c, http.StatusBadRequest, fmt.Sprintf("invalid template: %v", err))
		return
	}
	if tpl.Instrument == "" || len(tpl.SampleTypes) == 0 {
		fail(c, http.StatusBadRequest, "template requires instrument and sampleTypes")
		return
	}

	if err := h.templates.Save(name, &tpl); err != nil {
		if isHardError(err) {
			fail(c, http.StatusUnprocessableEntity, err.Error())
		} else {
			fail(c, http.StatusInternalServerError, err.Error())
		}
		return
	}
	success(c, gin.H{"name": name})
}

// DeleteTemplate 删除模板
func (h *Handlers) DeleteTemplate(c *gin.Context) {
	name := c.Param("name")

	if err := h.templates.Delete(name); err != nil {
		if errors.Is(err, template.ErrNotFound) {
			fail(c, http.StatusNotFound, fmt.Sprintf("template %q not found", name))
		} else {
			fail(c, http.StatusInternalServerError, err.Error())
		}
		return
	}
	success(c, gin.H{"name": name})
}
