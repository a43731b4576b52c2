package payment

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"uniformshop-be/internal/apperr"
	"uniformshop-be/internal/auth"
	"uniformshop-be/internal/logger"
	"uniformshop-be/internal/order"

	"go.uber.org/zap"
)

// multipartOverhead leaves room for the non-file form fields.
const multipartOverhead = 1 << 20

// Handler accepts multipart slip uploads at POST /payment-slips.
type Handler struct {
	svc      Service
	maxBytes int64
}

func NewHandler(svc Service, maxBytes int64) *Handler {
	return &Handler{svc: svc, maxBytes: maxBytes}
}

type uploadResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	log := logger.FromCtx(r.Context()).With(zap.String("layer", "handler"), zap.String("method", "Upload"))

	// Anonymous uploads are refused before the body is buffered.
	if _, ok := auth.ActorFrom(r.Context()); !ok {
		writeJSON(w, http.StatusUnauthorized, uploadResponse{Error: "unauthorized"})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes+multipartOverhead)
	if err := r.ParseMultipartForm(h.maxBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, uploadResponse{Error: "ไฟล์มีขนาดใหญ่เกินไป"})
			return
		}
		writeJSON(w, http.StatusBadRequest, uploadResponse{Error: "invalid multipart form"})
		return
	}

	orderID, err := strconv.Atoi(r.FormValue("orderId"))
	if err != nil || orderID <= 0 {
		writeJSON(w, http.StatusBadRequest, uploadResponse{Error: "ต้องระบุคำสั่งซื้อ"})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, uploadResponse{Error: "ต้องแนบไฟล์สลิป"})
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		log.Warn("failed to read uploaded file", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, uploadResponse{Error: "ต้องแนบไฟล์สลิป"})
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = http.DetectContentType(content)
	}

	res, err := h.svc.Upload(r.Context(), UploadInput{
		OrderID:     orderID,
		Content:     content,
		FileName:    header.Filename,
		MimeType:    mimeType,
		StudentName: r.FormValue("studentName"),
	})
	if err != nil {
		status, msg := errorStatus(err)
		if status >= http.StatusInternalServerError {
			log.Error("slip upload failed", zap.Int("order_id", orderID), zap.Error(err))
		}
		writeJSON(w, status, uploadResponse{Error: msg})
		return
	}

	writeJSON(w, http.StatusOK, uploadResponse{Success: true, URL: res.URL})
}

func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		msg, _ := apperr.UserMessage(err)
		return http.StatusBadRequest, msg
	case errors.Is(err, apperr.ErrAuthorization):
		msg, _ := apperr.UserMessage(err)
		if msg == "forbidden" {
			return http.StatusForbidden, msg
		}
		return http.StatusUnauthorized, msg
	case errors.Is(err, order.ErrOrderNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, apperr.ErrStorage):
		return http.StatusBadGateway, "failed to store file"
	}
	return http.StatusInternalServerError, "failed to record payment slip"
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
