package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/ergosmind/mindstyle-server/internal/delivery"
	"github.com/ergosmind/mindstyle-server/internal/layout"
	"github.com/ergosmind/mindstyle-server/internal/rendering"
	"github.com/ergosmind/mindstyle-server/internal/schemas"
	"github.com/ergosmind/mindstyle-server/internal/types"
)

// maxRequestBody bounds the /send-pdf payload; results are tiny.
const maxRequestBody = 1 << 20

// handleSendPDF generates the assessment report for the posted result and
// emails it to the requester. Input problems are rejected with 400 before
// any layout work begins; render and delivery failures collapse to one
// generic 500 so the caller never learns which stage failed. Either the
// email goes out with the full attachment or nothing is sent.
func (s *Server) handleSendPDF(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBody))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			s.errorResponse(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return
		}
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := schemas.ValidateAssessmentResult(body); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var result types.AssessmentResult
	if err := json.Unmarshal(body, &result); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := result.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	instrs, err := s.engine.Render(&result)
	if err != nil {
		log.Printf("Error laying out report for %s: %v", result.Email, err)
		s.failure(w, err)
		return
	}
	if s.printer != nil {
		s.printer.PrintReportSummary(&result, instrs)
	}

	pdf, err := rendering.RenderPDF(instrs, layout.A4)
	if err != nil {
		log.Printf("Error rendering PDF for %s: %v", result.Email, err)
		s.failure(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.sendTimeout)
	defer cancel()
	msg := delivery.AssessmentMessage(result.Name, result.Email, pdf)
	if err := s.sender.Send(ctx, msg); err != nil {
		log.Printf("Error sending PDF to %s: %v", result.Email, err)
		s.failure(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "PDF sent successfully"})
}

// failure writes the response for a failed generation attempt: validation
// problems get their concrete message with a client status, everything
// else the generic failure message.
func (s *Server) failure(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status == http.StatusBadRequest {
		s.errorResponse(w, status, err.Error())
		return
	}
	s.errorResponse(w, status, genericFailure)
}
