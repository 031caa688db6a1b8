package controller

import (
	"strconv"

	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type NoteController struct {
	NoteService *service.NoteService
}

func NewNoteController(noteService *service.NoteService) *NoteController {
	return &NoteController{NoteService: noteService}
}

// swagger:model NoteCreateRequest
type NoteCreateRequest struct {
	Content   string `json:"content" binding:"required"`
	Timestamp int    `json:"timestamp"`
}

// swagger:model NoteUpdateRequest
type NoteUpdateRequest struct {
	Content string `json:"content" binding:"required"`
}

// Create godoc
// @Summary Create a lecture note
// @Tags notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "course id"
// @Param lectureId path int true "lecture id"
// @Param body body NoteCreateRequest true "note"
// @Success 201 {object} util.Response{data=model.Note}
// @Failure 403 {object} util.Response
// @Router /api/courses/{id}/lectures/{lectureId}/notes [post]
func (c *NoteController) Create(ctx *gin.Context) {
	courseID, ok := parseUintParam(ctx, "id")
	if !ok {
		return
	}
	lectureID, ok := parseUintParam(ctx, "lectureId")
	if !ok {
		return
	}
	var req NoteCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	note, err := c.NoteService.Create(currentUserID(ctx), courseID, lectureID, req.Content, req.Timestamp)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Created(ctx, note)
}

// List godoc
// @Summary The caller's notes on a lecture
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param lecture_id query int true "lecture id"
// @Success 200 {object} util.Response{data=[]model.Note}
// @Router /api/notes [get]
func (c *NoteController) List(ctx *gin.Context) {
	lectureID, err := strconv.ParseUint(ctx.Query("lecture_id"), 10, 32)
	if err != nil || lectureID == 0 {
		util.BadRequest(ctx, "invalid lecture_id")
		return
	}

	notes, svcErr := c.NoteService.ListForLecture(currentUserID(ctx), uint(lectureID))
	if svcErr != nil {
		respondServiceError(ctx, svcErr)
		return
	}
	util.Success(ctx, notes)
}

// Update godoc
// @Summary Edit a note
// @Tags notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "note id"
// @Param body body NoteUpdateRequest true "new content"
// @Success 200 {object} util.Response{data=model.Note}
// @Failure 404 {object} util.Response
// @Router /api/notes/{id} [put]
func (c *NoteController) Update(ctx *gin.Context) {
	noteID, ok := parseUintParam(ctx, "id")
	if !ok {
		return
	}
	var req NoteUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	note, err := c.NoteService.Update(currentUserID(ctx), noteID, req.Content)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, note)
}

// Delete godoc
// @Summary Delete a note
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param id path int true "note id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/notes/{id} [delete]
func (c *NoteController) Delete(ctx *gin.Context) {
	noteID, ok := parseUintParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.NoteService.Delete(currentUserID(ctx), noteID); err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
