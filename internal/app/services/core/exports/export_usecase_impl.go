package exports

import (
	"bytes"
	"cfs-service/internal/app/config"
	"cfs-service/internal/app/contracts"
	"cfs-service/internal/app/models"
	"cfs-service/internal/app/services/shared/eventqueue"
	"cfs-service/internal/pkg/constvars"
	"cfs-service/internal/pkg/exceptions"
	"cfs-service/internal/pkg/utils"
	"context"
	"io"
	"path"
	"sync"
	"time"

	"go.uber.org/zap"
)

const csvContentType = "text/csv"

type exportUsecase struct {
	AssessmentRepository contracts.AssessmentRepository
	Storage              contracts.ExportStorage
	Events               contracts.EventPublisher
	InternalConfig       *config.InternalConfig
	Log                  *zap.Logger
	now                  func() time.Time
}

var (
	exportUsecaseInstance contracts.ExportUsecase
	onceExportUsecase     sync.Once
)

// NewExportUsecase builds the export usecase. storage may be nil when
// object storage is disabled; Publish then reports the export unavailable.
func NewExportUsecase(
	assessmentRepository contracts.AssessmentRepository,
	storage contracts.ExportStorage,
	events contracts.EventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ExportUsecase {
	onceExportUsecase.Do(func() {
		exportUsecaseInstance = &exportUsecase{
			AssessmentRepository: assessmentRepository,
			Storage:              storage,
			Events:               events,
			InternalConfig:       internalConfig,
			Log:                  logger,
			now:                  time.Now,
		}
	})
	return exportUsecaseInstance
}

func (uc *exportUsecase) FileName(now time.Time) string {
	return utils.GenerateExportFileName(now)
}

func (uc *exportUsecase) WriteCSV(ctx context.Context, w io.Writer) (int, error) {
	requestID := utils.GetRequestID(ctx)

	assessments, err := uc.AssessmentRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("exportUsecase.WriteCSV error fetching assessments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, err
	}
	if len(assessments) == 0 {
		return 0, exceptions.ErrExportNoData(nil)
	}

	if err := NewCSVFormatter(w).WriteAll(assessments); err != nil {
		uc.Log.Error("exportUsecase.WriteCSV error writing rows",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, exceptions.ErrExportWrite(err)
	}

	uc.Log.Info("exportUsecase.WriteCSV succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(assessments)),
	)
	return len(assessments), nil
}

// Publish uploads the current export to the export bucket and returns a
// presigned download link.
func (uc *exportUsecase) Publish(ctx context.Context) (*models.ExportObject, error) {
	requestID := utils.GetRequestID(ctx)
	if uc.Storage == nil {
		return nil, exceptions.ErrExportUnavailable(nil)
	}

	var buf bytes.Buffer
	count, err := uc.WriteCSV(ctx, &buf)
	if err != nil {
		return nil, err
	}

	bucketName := uc.InternalConfig.Export.BucketName
	if err := uc.Storage.EnsureBucket(ctx, bucketName); err != nil {
		uc.Log.Error("exportUsecase.Publish error ensuring bucket",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBucketNameKey, bucketName),
			zap.Error(err),
		)
		return nil, err
	}

	now := uc.now().UTC()
	objectName := path.Join(uc.InternalConfig.Export.ObjectPrefix, uc.FileName(now))
	var size int64
	err = utils.LogOperation(ctx, uc.Log, "export.upload:"+objectName, func() error {
		var putErr error
		size, putErr = uc.Storage.PutObject(ctx, bucketName, objectName, bytes.NewReader(buf.Bytes()), int64(buf.Len()), csvContentType)
		return putErr
	})
	if err != nil {
		return nil, err
	}

	expiry := time.Duration(uc.InternalConfig.Export.PreSignedUrlObjectExpiryTimeInHours) * time.Hour
	url, err := uc.Storage.PresignedURL(ctx, bucketName, objectName, expiry)
	if err != nil {
		return nil, err
	}

	object := &models.ExportObject{
		ObjectName: objectName,
		Size:       size,
		Records:    count,
		URL:        url,
		ExpiresAt:  now.Add(expiry),
	}

	uc.Log.Info("exportUsecase.Publish succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectNameKey, objectName),
		zap.Int64(constvars.LoggingExportSizeKey, size),
		zap.Int(constvars.LoggingCountKey, count),
	)
	eventqueue.PublishAndLog(ctx, uc.Events, uc.Log, models.Event{
		Type:       constvars.EventExportCompleted,
		OccurredAt: now,
		ObjectName: objectName,
	})
	return object, nil
}
