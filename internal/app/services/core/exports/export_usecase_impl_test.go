package exports

import (
	"bytes"
	"cfs-service/internal/app/config"
	"cfs-service/internal/app/models"
	"cfs-service/internal/app/services/core/assessments"
	"cfs-service/internal/pkg/cfs"
	"cfs-service/internal/pkg/constvars"
	"cfs-service/internal/pkg/exceptions"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockStorage struct {
	mock.Mock
	uploaded []byte
}

func (m *MockStorage) EnsureBucket(ctx context.Context, bucketName string) error {
	return m.Called(ctx, bucketName).Error(0)
}

func (m *MockStorage) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, size int64, contentType string) (int64, error) {
	m.uploaded, _ = io.ReadAll(reader)
	args := m.Called(ctx, bucketName, objectName, size, contentType)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStorage) PresignedURL(ctx context.Context, bucketName, objectName string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, bucketName, objectName, expiry)
	return args.String(0), args.Error(1)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event models.Event) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockEventPublisher) Close() error {
	return m.Called().Error(0)
}

var fixedNow = time.Date(2024, 7, 8, 23, 30, 0, 0, time.UTC)

func newTestExportUsecase(t *testing.T, storage *MockStorage, events *MockEventPublisher) *exportUsecase {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })

	uc := &exportUsecase{
		AssessmentRepository: assessments.NewAssessmentRedisRepository(client),
		Events:               events,
		InternalConfig: &config.InternalConfig{
			Export: config.AppExport{
				BucketName:                          "cfs-exports",
				ObjectPrefix:                        "exports",
				PreSignedUrlObjectExpiryTimeInHours: 24,
			},
		},
		Log: zap.NewNop(),
		now: func() time.Time { return fixedNow },
	}
	if storage != nil {
		uc.Storage = storage
	}
	return uc
}

func seed(t *testing.T, uc *exportUsecase, count int) {
	t.Helper()
	for i := 0; i < count; i++ {
		require.NoError(t, uc.AssessmentRepository.Create(context.Background(), &models.Assessment{
			Responses: cfs.Answers{cfs.FieldTerminally: "1"},
			Score:     8,
			Timestamp: fixedNow.Add(-time.Duration(i) * time.Hour),
		}))
	}
}

func TestExportUsecase_FileName(t *testing.T) {
	uc := newTestExportUsecase(t, nil, new(MockEventPublisher))
	assert.Equal(t, "cfs_assessments_2024-07-08.csv", uc.FileName(fixedNow))
}

func TestExportUsecase_WriteCSV(t *testing.T) {
	ctx := context.Background()
	uc := newTestExportUsecase(t, nil, new(MockEventPublisher))

	var buf bytes.Buffer
	_, err := uc.WriteCSV(ctx, &buf)
	assert.Equal(t, http.StatusNotFound, exceptions.StatusCodeOf(err))

	seed(t, uc, 3)
	count, err := uc.WriteCSV(ctx, &buf)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "Assessment ID,Timestamp,"))
	assert.True(t, strings.HasPrefix(lines[1], "1,2024-07-08 23:30:00,"))
}

func TestExportUsecase_Publish(t *testing.T) {
	ctx := context.Background()

	t.Run("uploads and links the export", func(t *testing.T) {
		storage := new(MockStorage)
		events := new(MockEventPublisher)
		uc := newTestExportUsecase(t, storage, events)
		seed(t, uc, 2)

		objectName := "exports/cfs_assessments_2024-07-08.csv"
		storage.On("EnsureBucket", mock.Anything, "cfs-exports").Return(nil)
		storage.On("PutObject", mock.Anything, "cfs-exports", objectName, mock.AnythingOfType("int64"), "text/csv").Return(int64(512), nil)
		storage.On("PresignedURL", mock.Anything, "cfs-exports", objectName, 24*time.Hour).Return("https://minio/signed", nil)
		events.On("Publish", mock.Anything, mock.MatchedBy(func(event models.Event) bool {
			return event.Type == constvars.EventExportCompleted && event.ObjectName == objectName
		})).Return(nil)

		object, err := uc.Publish(ctx)
		require.NoError(t, err)
		assert.Equal(t, objectName, object.ObjectName)
		assert.Equal(t, int64(512), object.Size)
		assert.Equal(t, 2, object.Records)
		assert.Equal(t, "https://minio/signed", object.URL)
		assert.Equal(t, fixedNow.Add(24*time.Hour), object.ExpiresAt)
		assert.Contains(t, string(storage.uploaded), "Assessment ID")

		storage.AssertExpectations(t)
		events.AssertExpectations(t)
	})

	t.Run("storage disabled", func(t *testing.T) {
		uc := newTestExportUsecase(t, nil, new(MockEventPublisher))
		_, err := uc.Publish(ctx)
		assert.Equal(t, http.StatusServiceUnavailable, exceptions.StatusCodeOf(err))
	})

	t.Run("upload failure is returned", func(t *testing.T) {
		storage := new(MockStorage)
		events := new(MockEventPublisher)
		uc := newTestExportUsecase(t, storage, events)
		seed(t, uc, 1)

		storage.On("EnsureBucket", mock.Anything, mock.Anything).Return(nil)
		storage.On("PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(int64(0), exceptions.ErrMinioCreateObject(errors.New("disk full"), "cfs-exports"))

		_, err := uc.Publish(ctx)
		assert.Equal(t, http.StatusInternalServerError, exceptions.StatusCodeOf(err))
		events.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})
}
