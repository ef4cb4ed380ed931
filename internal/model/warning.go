package model

// WarningKind 警告类别
type WarningKind string

const (
	WarnDuplicateVial     WarningKind = "duplicateVial"     // 多行共用同一孔位
	WarnMissingQC         WarningKind = "missingQC"         // 启用了 QC 但数量为 0
	WarnMissingBlank      WarningKind = "missingBlank"      // 启用了空白但数量为 0
	WarnPathConstraint    WarningKind = "pathConstraint"    // 数据目录不满足仪器盘符要求
	WarnMethodExtension   WarningKind = "methodExtension"   // 方法文件扩展名不符合仪器要求
	WarnProjectNameFormat WarningKind = "projectNameFormat" // 项目名不符合推荐格式
)

// Warning 附加在有效结果上的提示，从不阻断生成或导出
type Warning struct {
	Kind    WarningKind `json:"kind"`
	Message string      `json:"message"`
	Rows    []int       `json:"rows,omitempty"` // 相关行的进样序号（1 起）
}
