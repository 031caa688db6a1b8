package controller

import (
	"errors"

	"learnhub_backend/internal/service"
	"learnhub_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type EnrollmentController struct {
	EnrollmentService *service.EnrollmentService
}

func NewEnrollmentController(enrollmentService *service.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{EnrollmentService: enrollmentService}
}

// Enroll godoc
// @Summary Enroll in a course
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param id path int true "course id"
// @Success 201 {object} util.Response{data=model.Enrollment}
// @Failure 400 {object} util.Response
// @Router /api/courses/{id}/enroll [post]
func (c *EnrollmentController) Enroll(ctx *gin.Context) {
	courseID, ok := parseUintParam(ctx, "id")
	if !ok {
		return
	}
	enrollment, err := c.EnrollmentService.Enroll(currentUserID(ctx), courseID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Created(ctx, enrollment)
}

// MyCourses godoc
// @Summary The caller's enrolled courses
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]service.EnrolledCourse}
// @Router /api/my-courses [get]
func (c *EnrollmentController) MyCourses(ctx *gin.Context) {
	courses, err := c.EnrollmentService.MyCourses(currentUserID(ctx))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// Certificate godoc
// @Summary The caller's certificate for a course
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param id path int true "course id"
// @Success 200 {object} util.Response{data=model.Certificate}
// @Failure 404 {object} util.Response
// @Router /api/courses/{id}/certificate [get]
func (c *EnrollmentController) Certificate(ctx *gin.Context) {
	courseID, ok := parseUintParam(ctx, "id")
	if !ok {
		return
	}
	cert, err := c.EnrollmentService.Certificate(currentUserID(ctx), courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx, "certificate not issued yet")
			return
		}
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, cert)
}

// VerifyCertificate godoc
// @Summary Verify a certificate by its public number
// @Tags enrollments
// @Produce json
// @Param number path string true "certificate number"
// @Success 200 {object} util.Response{data=model.Certificate}
// @Failure 404 {object} util.Response
// @Router /api/certificates/{number} [get]
func (c *EnrollmentController) VerifyCertificate(ctx *gin.Context) {
	number := ctx.Param("number")
	cert, err := c.EnrollmentService.VerifyCertificate(number)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx, "certificate not found")
			return
		}
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, cert)
}
