package http

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/staff-star/HTML-parser/internal/domain"
	"github.com/staff-star/HTML-parser/internal/renderer"
	"github.com/staff-star/HTML-parser/internal/usecase"
)

// internalErrorMessage is the only detail an unexpected fault may leak to the
// caller. The real error goes to the server log.
const internalErrorMessage = "サーバー内部でエラーが発生しました。時間を置いて再度お試しください。"

// GenerateRequest is the inbound payload. Type defaults to "text"; "csv" runs
// the CSV adapter before parsing. Text is accepted as any JSON value and
// coerced to a string before validation.
type GenerateRequest struct {
	Text any    `json:"text"`
	Type string `json:"type"`
}

func coerceText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprintf("%v", t)
	}
}

// GenerateResponse is the success envelope.
type GenerateResponse struct {
	Success        bool               `json:"success"`
	HTML           map[string]string  `json:"html"`
	ProductInfo    *domain.ProductInfo `json:"product_info"`
	Logs           []domain.ParseLog  `json:"logs"`
	UserLogs       []string           `json:"user_logs"`
	DebugLogs      []string           `json:"debug_logs"`
	NormalizedText string             `json:"normalized_text"`
	InputType      string             `json:"input_type"`
}

// ErrorResponse is the failure envelope.
type ErrorResponse struct {
	Success   bool     `json:"success"`
	Error     string   `json:"error"`
	UserLogs  []string `json:"user_logs"`
	DebugLogs []string `json:"debug_logs"`
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	parser    *usecase.ParserService
	generator *renderer.Generator
}

// NewHandler creates a new HTTP handler
func NewHandler(parser *usecase.ParserService, generator *renderer.Generator) *Handler {
	return &Handler{
		parser:    parser,
		generator: generator,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "html-parser",
		"version": "1.0.0",
	})
}

// Generate parses label text (or CSV) and renders the storefront HTML variants.
func (h *Handler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Success:   false,
			Error:     "JSONの解析に失敗しました",
			UserLogs:  []string{},
			DebugLogs: []string{},
		})
		return
	}

	text := coerceText(req.Text)
	inputType := req.Type
	if inputType == "" {
		inputType = "text"
	}

	userLogs := []string{}
	debugLogs := []string{}

	if err := h.parser.Validate(text); err != nil {
		status, message := validationStatus(err)
		userLogs = append(userLogs, message)
		debugLogs = append(debugLogs, "validation_error:"+message)
		c.JSON(status, ErrorResponse{
			Success:   false,
			Error:     message,
			UserLogs:  capStrings(userLogs),
			DebugLogs: capStrings(debugLogs),
		})
		return
	}
	debugLogs = append(debugLogs, fmt.Sprintf("input_length=%d", len([]rune(text))))

	workingText := text
	if inputType == "csv" {
		debugLogs = append(debugLogs, "CSV入力を検出。テキストへ変換します。")
		workingText = usecase.CSVToText(text)
		userLogs = append(userLogs, "CSVを解析してテキストに変換しました。")
	}

	result := h.parser.Parse(workingText)
	html := h.generator.GenerateAll(result.Product)

	userLogs = append(userLogs, "解析とHTML生成が完了しました。")
	debugLogs = append(debugLogs, "html_variants=rakuten_pc,rakuten_sp,yahoo_pc,yahoo_sp")

	c.JSON(http.StatusOK, GenerateResponse{
		Success:        true,
		HTML:           html,
		ProductInfo:    result.Product,
		Logs:           result.Logs.Entries(),
		UserLogs:       capStrings(userLogs),
		DebugLogs:      capStrings(debugLogs),
		NormalizedText: workingText,
		InputType:      inputType,
	})
}

// validationStatus maps a Validate error to its response status and message.
// A ValidationError carries a caller-safe message and means bad input (400);
// anything else is an unexpected fault and gets the generic 500.
func validationStatus(err error) (int, string) {
	if domain.IsValidationError(err) {
		return http.StatusBadRequest, err.Error()
	}
	return http.StatusInternalServerError, internalErrorMessage
}

func capStrings(logs []string) []string {
	if len(logs) > domain.MaxLogEntries {
		return logs[:domain.MaxLogEntries]
	}
	return logs
}

// InternalErrorHandler converts panics anywhere below into a generic 500
// response. Stack detail stays on the server side.
func InternalErrorHandler(c *gin.Context, err any) {
	log.Printf("[PANIC] %v", err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
		Success:   false,
		Error:     internalErrorMessage,
		UserLogs:  []string{},
		DebugLogs: []string{},
	})
}
