package controller

import (
	"strconv"

	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"
	"learnhub_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type PlayerController struct {
	PlayerService *service.PlayerService
}

func NewPlayerController(playerService *service.PlayerService) *PlayerController {
	return &PlayerController{PlayerService: playerService}
}

// GetOverview godoc
// @Summary Course overview and stats
// @Description Public landing payload: headline course info, section and
// @Description lecture counts, whether preview content exists, and the
// @Description caller's enrollment summary when authenticated.
// @Tags player
// @Produce json
// @Param id path int true "course id"
// @Success 200 {object} util.Response{data=service.CourseOverview}
// @Failure 404 {object} util.Response
// @Router /api/courses/{id}/overview [get]
func (c *PlayerController) GetOverview(ctx *gin.Context) {
	courseID, ok := parseUintParam(ctx, "id")
	if !ok {
		return
	}

	overview, err := c.PlayerService.GetCourseOverview(ctx.Request.Context(), currentUserID(ctx), courseID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, overview)
}

// GetContent godoc
// @Summary Course player content tree
// @Description Returns the section tree filtered for the caller, the
// @Description enrollment state and the initial lecture to open. Anonymous
// @Description and unenrolled callers see at most one preview lecture.
// @Tags player
// @Produce json
// @Param id path int true "course id"
// @Param lecture query int false "deep-link lecture id"
// @Success 200 {object} util.Response{data=player.ContentPayload}
// @Failure 404 {object} util.Response
// @Router /api/courses/{id}/content [get]
func (c *PlayerController) GetContent(ctx *gin.Context) {
	courseID, ok := parseUintParam(ctx, "id")
	if !ok {
		return
	}
	requested, _ := strconv.ParseUint(ctx.Query("lecture"), 10, 32)

	payload, err := c.PlayerService.GetCourseContent(
		ctx.Request.Context(), currentUserID(ctx), courseID, uint(requested))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, payload)
}

// GetLecture godoc
// @Summary Single lecture with progress and navigation
// @Tags player
// @Produce json
// @Param id path int true "course id"
// @Param lectureId path int true "lecture id"
// @Success 200 {object} util.Response{data=player.Lecture}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/courses/{id}/lectures/{lectureId} [get]
func (c *PlayerController) GetLecture(ctx *gin.Context) {
	courseID, ok := parseUintParam(ctx, "id")
	if !ok {
		return
	}
	lectureID, ok := parseUintParam(ctx, "lectureId")
	if !ok {
		return
	}

	lecture, err := c.PlayerService.GetLecture(currentUserID(ctx), courseID, lectureID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, lecture)
}

// SaveProgress godoc
// @Summary Persist a playback checkpoint
// @Tags player
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "course id"
// @Param lectureId path int true "lecture id"
// @Param body body service.ProgressInput true "checkpoint"
// @Success 200 {object} util.Response{data=model.LectureProgress}
// @Failure 403 {object} util.Response
// @Router /api/courses/{id}/lectures/{lectureId}/progress [post]
func (c *PlayerController) SaveProgress(ctx *gin.Context) {
	courseID, ok := parseUintParam(ctx, "id")
	if !ok {
		return
	}
	lectureID, ok := parseUintParam(ctx, "lectureId")
	if !ok {
		return
	}
	var req service.ProgressInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	progress, err := c.PlayerService.SaveProgress(currentUserID(ctx), courseID, lectureID, req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	monitoring.CheckpointCounter.WithLabelValues(strconv.FormatBool(progress.Completed)).Inc()
	util.Success(ctx, progress)
}

// MarkComplete godoc
// @Summary Mark a lecture completed
// @Tags player
// @Produce json
// @Security BearerAuth
// @Param id path int true "course id"
// @Param lectureId path int true "lecture id"
// @Success 200 {object} util.Response{data=model.LectureProgress}
// @Failure 403 {object} util.Response
// @Router /api/courses/{id}/lectures/{lectureId}/complete [post]
func (c *PlayerController) MarkComplete(ctx *gin.Context) {
	courseID, ok := parseUintParam(ctx, "id")
	if !ok {
		return
	}
	lectureID, ok := parseUintParam(ctx, "lectureId")
	if !ok {
		return
	}

	progress, err := c.PlayerService.MarkComplete(currentUserID(ctx), courseID, lectureID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, progress)
}
