package scorer

import "resume-screener-go/internal/constants"

// MessageForScore 按总分区间选取定性描述
// 阈值含下界：>=80 优秀，>=60 良好，>=40 一般，>=20 有限，其余为差
func MessageForScore(overall float64) string {
	switch {
	case overall >= 80:
		return constants.MessageExcellent
	case overall >= 60:
		return constants.MessageGood
	case overall >= 40:
		return constants.MessageFair
	case overall >= 20:
		return constants.MessageLimited
	default:
		return constants.MessagePoor
	}
}
