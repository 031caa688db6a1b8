package controller

import (
	"errors"
	"strconv"

	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// parseUintParam reads a numeric path parameter. Returns 0 and responds with
// 400 when the value is missing or not a number.
func parseUintParam(ctx *gin.Context, name string) (uint, bool) {
	raw := ctx.Param(name)
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || value == 0 {
		util.BadRequest(ctx, "invalid "+name)
		return 0, false
	}
	return uint(value), true
}

// respondServiceError translates service sentinel errors into HTTP replies.
func respondServiceError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrCourseNotFound),
		errors.Is(err, util.ErrLectureNotFound),
		errors.Is(err, util.ErrNoteNotFound),
		errors.Is(err, util.ErrUserNotFound):
		util.NotFound(ctx, err.Error())
	case errors.Is(err, util.ErrNotEnrolled),
		errors.Is(err, util.ErrNoPreviewContent),
		errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx, err.Error())
	case errors.Is(err, util.ErrInvalidCredentials),
		errors.Is(err, util.ErrUnauthorized):
		util.Unauthorized(ctx)
	case errors.Is(err, util.ErrEmailRegistered),
		errors.Is(err, util.ErrAlreadyEnrolled),
		errors.Is(err, util.ErrNoteContent),
		errors.Is(err, util.ErrInvalidRating),
		errors.Is(err, util.ErrReviewNotAllowed),
		errors.Is(err, util.ErrInvalidVideoExt):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

// currentUserID returns the authenticated user's id, or 0 for anonymous
// requests on optionally-authenticated routes.
func currentUserID(ctx *gin.Context) uint {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		return 0
	}
	return claims.UserID
}
