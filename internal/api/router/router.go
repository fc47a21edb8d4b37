package router

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"resume-screener-go/internal/api/handler"
	"resume-screener-go/internal/parser"
)

// RegisterRoutes 注册 API 路由
func RegisterRoutes(h *server.Hertz, screeningHandler *handler.ScreeningHandler) {
	api := h.Group("/api/v1")

	api.POST("/screen_resume", func(c context.Context, ctx *app.RequestContext) {
		resumeHeader, err := ctx.FormFile("resume_file")
		if err != nil {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": "resume_file 未提供"})
			return
		}

		req := &handler.ScreeningRequest{
			ResumeFilename: resumeHeader.Filename,
			JDText:         ctx.PostForm("jd_text"),
		}

		maxBytes := screeningHandler.MaxUploadBytes()
		req.ResumeData, err = readUpload(resumeHeader, maxBytes)
		if err != nil {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": err.Error()})
			return
		}

		// 岗位描述：文件或 jd_text 表单字段，二者必须提供其一
		jdHeader, jdErr := ctx.FormFile("jd_file")
		if jdErr == nil {
			req.JDFilename = jdHeader.Filename
			req.JDData, err = readUpload(jdHeader, maxBytes)
			if err != nil {
				ctx.JSON(consts.StatusBadRequest, utils.H{"error": err.Error()})
				return
			}
		} else if req.JDText == "" {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": "必须提供 jd_file 或 jd_text"})
			return
		}

		resp, err := screeningHandler.HandleScreenResume(c, req)
		if err != nil {
			ctx.JSON(statusForError(err), utils.H{"error": err.Error()})
			return
		}

		ctx.JSON(consts.StatusOK, resp)
	})

	// 健康检查
	api.GET("/health", func(c context.Context, ctx *app.RequestContext) {
		ctx.JSON(consts.StatusOK, utils.H{"status": "healthy", "service": "resume-screener"})
	})

	// 服务信息
	h.GET("/", func(c context.Context, ctx *app.RequestContext) {
		ctx.JSON(consts.StatusOK, utils.H{
			"message": "Resume Screening API",
			"endpoints": utils.H{
				"screen_resume": "/api/v1/screen_resume",
				"health":        "/api/v1/health",
			},
		})
	})
}

// statusForError 将内部错误翻译为HTTP状态码：
// 不支持的格式是客户端错误，解码/抽取失败按服务端错误处理
func statusForError(err error) int {
	if errors.Is(err, parser.ErrUnsupportedFormat) {
		return consts.StatusBadRequest
	}
	return consts.StatusInternalServerError
}

// readUpload 读取上传文件内容并校验大小上限
func readUpload(fileHeader *multipart.FileHeader, maxBytes int64) ([]byte, error) {
	if fileHeader.Size > maxBytes {
		return nil, fmt.Errorf("文件 %s 超过大小上限 %d 字节", fileHeader.Filename, maxBytes)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("打开上传文件失败: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxBytes))
	if err != nil {
		return nil, fmt.Errorf("读取上传文件内容失败: %w", err)
	}
	return data, nil
}
