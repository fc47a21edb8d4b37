package constants

const (
	// 支持的文档扩展名
	ExtPDF  = ".pdf"
	ExtDOCX = ".docx"
	ExtTXT  = ".txt"

	// 默认配置文件路径
	DefaultConfigPath = "internal/config/config.yaml"

	// 上传文件大小上限（字节），超过则拒绝处理
	DefaultMaxUploadBytes = 10 << 20

	// 技能/教育章节切分后保留的 token 长度区间
	MinSkillTokenLen = 3
	MaxSkillTokenLen = 29
)

// 筛选结果的定性描述，按总分区间选取（阈值含下界：>=80, >=60, >=40, >=20）
const (
	MessageExcellent = "Excellent match! This candidate meets most of the job requirements."
	MessageGood      = "Good match! This candidate has several relevant qualifications."
	MessageFair      = "Fair match! This candidate has some relevant experience but may need additional training."
	MessageLimited   = "Limited match! This candidate has minimal relevant qualifications."
	MessagePoor      = "Poor match! This candidate does not meet most of the job requirements."
)
