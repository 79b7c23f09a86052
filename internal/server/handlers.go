package server

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-grader/internal/db"
	"github.com/jonathan/resume-grader/internal/ingestion"
	"github.com/jonathan/resume-grader/internal/server/middleware"
	"github.com/jonathan/resume-grader/internal/types"
)

// GradeResponse represents the response for /grade
type GradeResponse struct {
	ReportID string        `json:"report_id"`
	Report   *types.Report `json:"report"`
}

// handleGrade grades an uploaded resume. The request is multipart form data
// with a "resume" PDF file and a "role" field. At most one grading request
// may be in flight per user.
func (s *Server) handleGrade(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := r.ParseMultipartForm(ingestion.MaxPDFBytes + 4096); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	role, err := types.ParseRole(r.FormValue("role"))
	if err != nil {
		rerr := &ErrInvalidRole{Role: r.FormValue("role")}
		s.errorResponse(w, HTTPStatus(rerr), rerr.Error())
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		uerr := &ErrInvalidUpload{Reason: "missing resume file"}
		s.errorResponse(w, HTTPStatus(uerr), uerr.Error())
		return
	}
	defer file.Close()

	pdf, err := io.ReadAll(io.LimitReader(file, ingestion.MaxPDFBytes+1))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read resume file: "+err.Error())
		return
	}
	if err := ingestion.ValidatePDF(pdf); err != nil {
		uerr := &ErrInvalidUpload{Reason: err.Error()}
		s.errorResponse(w, HTTPStatus(uerr), uerr.Error())
		return
	}

	// One grading request per user at a time
	if err := s.store.AcquireGradeLock(r.Context(), userID); err != nil {
		if errors.Is(err, db.ErrLockHeld) {
			s.errorResponse(w, http.StatusConflict, "A grading request is already in progress")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	defer func() {
		// Release with a fresh context so a canceled request still frees the lock
		if err := s.store.ReleaseGradeLock(context.Background(), userID); err != nil {
			log.Printf("Error releasing grading lock for %s: %v", userID, err)
		}
	}()

	params := types.GradeParams{
		ResumeName: header.Filename,
		Role:       role,
		PDF:        pdf,
	}

	result, err := s.grader.Run(r.Context(), params)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Grading failed: "+err.Error())
		return
	}

	report := &types.Report{
		UserID:      userID,
		ResumeName:  params.ResumeName,
		Role:        role,
		Feedback:    result.Feedback,
		FormatScore: result.FormatScore,
		Grade:       result.Grade,
	}

	reportID, err := s.store.SaveReport(r.Context(), report)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save report: "+err.Error())
		return
	}
	report.ID = reportID

	s.jsonResponse(w, http.StatusOK, GradeResponse{
		ReportID: reportID.String(),
		Report:   report,
	})
}

// handleListReports returns the authenticated user's reports, newest first
func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	reports, err := s.store.ListReports(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if reports == nil {
		reports = []*types.Report{}
	}

	s.jsonResponse(w, http.StatusOK, reports)
}

// handleGetReport returns one report owned by the authenticated user
func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	reportID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid report ID format")
		return
	}

	report, err := s.store.GetReport(r.Context(), reportID, userID)
	if err != nil {
		if errors.Is(err, db.ErrReportNotFound) {
			s.errorResponse(w, http.StatusNotFound, "Report not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, report)
}
