package controller

import (
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// ContentController is the instructor/admin surface for building courses.
type ContentController struct {
	ContentService *service.ContentService
}

func NewContentController(contentService *service.ContentService) *ContentController {
	return &ContentController{ContentService: contentService}
}

// swagger:model CourseCreateRequest
type CourseCreateRequest struct {
	Title            string  `json:"title" binding:"required"`
	Slug             string  `json:"slug"`
	Description      string  `json:"description"`
	ShortDescription string  `json:"short_description"`
	Price            float64 `json:"price"`
	Language         string  `json:"language"`
	Level            string  `json:"level"`
}

// swagger:model SectionCreateRequest
type SectionCreateRequest struct {
	Title string `json:"title" binding:"required"`
	Order int    `json:"order"`
}

// swagger:model LectureCreateRequest
type LectureCreateRequest struct {
	Title           string `json:"title" binding:"required"`
	Description     string `json:"description"`
	Order           int    `json:"order"`
	DurationMinutes int    `json:"duration_minutes"`
	IsPreview       bool   `json:"is_preview"`
	VideoType       string `json:"video_type"`
	YoutubeVideoID  string `json:"youtube_video_id"`
	ContentURL      string `json:"content_url"`
}

// CreateCourse godoc
// @Summary Create a course
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CourseCreateRequest true "course"
// @Success 201 {object} util.Response{data=model.Course}
// @Router /api/admin/courses [post]
func (c *ContentController) CreateCourse(ctx *gin.Context) {
	var req CourseCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	userID := currentUserID(ctx)
	course := &model.Course{
		Title:            req.Title,
		Slug:             req.Slug,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		Price:            req.Price,
		Language:         req.Language,
		Level:            req.Level,
		InstructorID:     &userID,
		IsActive:         true,
	}
	if err := c.ContentService.CreateCourse(course); err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Created(ctx, course)
}

// CreateSection godoc
// @Summary Add a section to a course
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "course id"
// @Param body body SectionCreateRequest true "section"
// @Success 201 {object} util.Response{data=model.CourseSection}
// @Router /api/admin/courses/{id}/sections [post]
func (c *ContentController) CreateSection(ctx *gin.Context) {
	courseID, ok := parseUintParam(ctx, "id")
	if !ok {
		return
	}
	var req SectionCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	section := &model.CourseSection{Title: req.Title, Order: req.Order}
	if err := c.ContentService.CreateSection(ctx.Request.Context(), courseID, section); err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Created(ctx, section)
}

// CreateLecture godoc
// @Summary Add a lecture to a section
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sectionId path int true "section id"
// @Param body body LectureCreateRequest true "lecture"
// @Success 201 {object} util.Response{data=model.Lecture}
// @Router /api/admin/sections/{sectionId}/lectures [post]
func (c *ContentController) CreateLecture(ctx *gin.Context) {
	sectionID, ok := parseUintParam(ctx, "sectionId")
	if !ok {
		return
	}
	var req LectureCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lecture := &model.Lecture{
		Title:           req.Title,
		Description:     req.Description,
		Order:           req.Order,
		DurationMinutes: req.DurationMinutes,
		IsPreview:       req.IsPreview,
		VideoType:       req.VideoType,
		YoutubeVideoID:  req.YoutubeVideoID,
		ContentURL:      req.ContentURL,
	}
	if err := c.ContentService.CreateLecture(ctx.Request.Context(), sectionID, lecture); err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Created(ctx, lecture)
}

// UploadVideo godoc
// @Summary Upload a lecture video
// @Description Accepts a multipart video file, probes its duration,
// @Description generates a thumbnail and stores both.
// @Tags content
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param lectureId path int true "lecture id"
// @Param file formData file true "video file"
// @Success 200 {object} util.Response{data=model.Lecture}
// @Failure 400 {object} util.Response
// @Router /api/admin/lectures/{lectureId}/video [post]
func (c *ContentController) UploadVideo(ctx *gin.Context) {
	lectureID, ok := parseUintParam(ctx, "lectureId")
	if !ok {
		return
	}
	header, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "missing file")
		return
	}

	lecture, err := c.ContentService.UploadLectureVideo(ctx.Request.Context(), lectureID, header)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, lecture)
}
