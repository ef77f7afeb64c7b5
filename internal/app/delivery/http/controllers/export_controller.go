package controllers

import (
	"bytes"
	"cfs-service/internal/app/config"
	"cfs-service/internal/app/contracts"
	"cfs-service/internal/pkg/constvars"
	"cfs-service/internal/pkg/utils"
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
)

type ExportController struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	ExportUsecase  contracts.ExportUsecase
}

var (
	exportControllerInstance *ExportController
	onceExportController     sync.Once
)

func NewExportController(logger *zap.Logger, internalConfig *config.InternalConfig, exportUsecase contracts.ExportUsecase) *ExportController {
	onceExportController.Do(func() {
		exportControllerInstance = &ExportController{
			Log:            logger,
			InternalConfig: internalConfig,
			ExportUsecase:  exportUsecase,
		}
	})
	return exportControllerInstance
}

// Download streams every record as a CSV attachment. The CSV is buffered
// so a failure can still be reported as a JSON error.
func (ctrl *ExportController) Download(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	var buf bytes.Buffer
	count, err := ctrl.ExportUsecase.WriteCSV(ctx, &buf)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	fileName := ctrl.ExportUsecase.FileName(time.Now())
	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextCSVCharsetUTF8)
	w.Header().Set(constvars.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(constvars.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		ctrl.Log.Warn("ExportController.Download error writing response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return
	}

	ctrl.Log.Info("ExportController.Download succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, count),
	)
}

func (ctrl *ExportController) Publish(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	object, err := ctrl.ExportUsecase.Publish(ctx)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.MessageExportPublished, object)
}
