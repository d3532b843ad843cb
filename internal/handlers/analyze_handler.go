package handlers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"resume-analyzer/internal/models"
	"resume-analyzer/internal/services"
	apperrors "resume-analyzer/pkg/errors"
)

type AnalyzeHandler struct {
	analyzer    services.AnalyzerService
	extractor   services.ExtractorService
	storage     services.StorageService
	maxFileSize int64
}

func NewAnalyzeHandler(
	analyzer services.AnalyzerService,
	extractor services.ExtractorService,
	storage services.StorageService,
	maxFileSize int64,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer:    analyzer,
		extractor:   extractor,
		storage:     storage,
		maxFileSize: maxFileSize,
	}
}

// HandleATSScore handles POST /api/ats-score.
func (h *AnalyzeHandler) HandleATSScore(c *fiber.Ctx) error {
	resumeText, err := h.resolveResumeText(c)
	if err != nil {
		return respondError(c, err)
	}

	if !services.IsValidResume(resumeText) {
		return respondError(c, apperrors.Validation(
			"Resume is too short or missing key sections. Minimum 500 characters required."))
	}

	result, err := h.analyzer.AnalyzeATS(c.Context(), resumeText)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.Success(result))
}

// HandleJDMatch handles POST /api/jd-match.
func (h *AnalyzeHandler) HandleJDMatch(c *fiber.Ctx) error {
	jdText := c.FormValue("jd_text")
	if len(strings.TrimSpace(jdText)) < 200 {
		return respondError(c, apperrors.Validation(
			"Job description must be at least 200 characters"))
	}

	resumeText, err := h.resolveResumeText(c)
	if err != nil {
		return respondError(c, err)
	}

	if !services.IsValidResume(resumeText) {
		return respondError(c, apperrors.Validation(
			"Resume is too short or missing key sections. Minimum 500 characters required."))
	}

	result, err := h.analyzer.AnalyzeMatch(c.Context(), resumeText, jdText)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.Success(result))
}

// HandleCompareJDs handles POST /api/compare-jds.
func (h *AnalyzeHandler) HandleCompareJDs(c *fiber.Ctx) error {
	jdTexts := formValues(c, "jd_texts")
	if len(jdTexts) == 0 {
		return respondError(c, apperrors.Validation(
			"At least one job description is required"))
	}

	resumeText, err := h.resolveResumeText(c)
	if err != nil {
		return respondError(c, err)
	}

	if !services.IsValidResume(resumeText) {
		return respondError(c, apperrors.Validation(
			"Resume is too short or missing key sections. Minimum 500 characters required."))
	}

	for _, jd := range jdTexts {
		if len(strings.TrimSpace(jd)) < 200 {
			return respondError(c, apperrors.Validation(
				"All job descriptions must be at least 200 characters"))
		}
	}

	result, err := h.analyzer.CompareJDs(c.Context(), resumeText, jdTexts)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.Success(result))
}

// resolveResumeText turns whichever resume input the request carries
// into plain text: an uploaded file, the resume_text form field, or a
// Google Docs link. Uploaded files are spooled under a unique name
// and removed before the handler returns.
func (h *AnalyzeHandler) resolveResumeText(c *fiber.Ctx) (string, error) {
	if file, err := c.FormFile("file"); err == nil && file != nil {
		if file.Size > h.maxFileSize {
			return "", apperrors.Validation(
				fmt.Sprintf("File too large. Max size: %d bytes", h.maxFileSize))
		}

		ext := strings.ToLower(filepath.Ext(file.Filename))
		if ext != ".pdf" && ext != ".docx" && ext != ".doc" {
			return "", apperrors.Validation("Unsupported file format. Supported: PDF, DOCX, DOC")
		}

		filename, filePath, err := h.storage.SaveUpload(file)
		if err != nil {
			return "", apperrors.Extraction("Failed to save uploaded file", err)
		}
		defer h.storage.DeleteFile(filename)

		return h.extractor.ExtractFromFile(filePath)
	}

	if resumeText := c.FormValue("resume_text"); resumeText != "" {
		return resumeText, nil
	}

	if resumeURL := c.FormValue("resume_url"); resumeURL != "" {
		return h.extractor.ExtractFromURL(c.Context(), resumeURL)
	}

	return "", apperrors.Validation("Either 'file' or 'resume_text' must be provided")
}

// formValues collects repeated form values from either a multipart or
// a url-encoded body.
func formValues(c *fiber.Ctx, key string) []string {
	if form, err := c.MultipartForm(); err == nil && form != nil {
		if values, ok := form.Value[key]; ok && len(values) > 0 {
			return values
		}
	}

	var values []string
	for _, v := range c.Context().PostArgs().PeekMulti(key) {
		values = append(values, string(v))
	}
	return values
}

func respondError(c *fiber.Ctx, err error) error {
	return c.Status(apperrors.StatusCode(err)).JSON(models.Error(err.Error()))
}
