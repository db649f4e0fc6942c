package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"estudaia/internal/domain"
	"estudaia/internal/port"
	"estudaia/internal/service"
	"estudaia/mocks"
)

func TestBlobService_Upload_Success(t *testing.T) {
	storage := new(mocks.MockObjectStorage)
	cfg := testConfig()
	svc := service.NewBlobService(storage, &cfg.S3, &cfg.Upload, nil)

	storage.On("Upload", mock.Anything, mock.MatchedBy(func(in port.UploadInput) bool {
		return in.Bucket == "docs" &&
			strings.HasPrefix(in.Key, "uploads/") &&
			strings.HasSuffix(in.Key, ".pdf") &&
			in.ContentType == "application/pdf"
	})).Return(&port.UploadOutput{Location: "s3://docs/x"}, nil)
	storage.On("GetPresignedURL", mock.Anything, "docs", mock.AnythingOfType("string"), int64(600)).
		Return("https://signed.example/x", nil)

	out, err := svc.Upload(context.Background(), service.BlobUploadInput{
		FileName:    "ohm.pdf",
		ContentType: "application/pdf",
		Size:        12,
		Body:        strings.NewReader("%PDF-1.4 abc"),
	})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.Key, "uploads/"))
	assert.Equal(t, "https://signed.example/x", out.URL)
	assert.Equal(t, "application/pdf", out.ContentType)
	storage.AssertExpectations(t)
}

func TestBlobService_Upload_PresignFailureRemovesObject(t *testing.T) {
	storage := mocks.NewMockObjectStorage(t)
	cfg := testConfig()
	svc := service.NewBlobService(storage, &cfg.S3, &cfg.Upload, nil)

	var key string
	storage.On("Upload", mock.Anything, mock.AnythingOfType("port.UploadInput")).
		Run(func(args mock.Arguments) { key = args.Get(1).(port.UploadInput).Key }).
		Return(&port.UploadOutput{}, nil)
	storage.On("GetPresignedURL", mock.Anything, "docs", mock.AnythingOfType("string"), int64(600)).
		Return("", errors.New("signer unavailable"))
	storage.On("Delete", mock.Anything, "docs", mock.MatchedBy(func(k string) bool { return k == key })).
		Return(nil)

	_, err := svc.Upload(context.Background(), service.BlobUploadInput{
		FileName: "slides.pptx",
		Size:     4,
		Body:     strings.NewReader("PK.."),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "signer unavailable")
}

func TestBlobService_Upload_Rejections(t *testing.T) {
	cfg := testConfig()
	body := strings.NewReader("data")

	tests := []struct {
		name    string
		input   service.BlobUploadInput
		wantErr error
	}{
		{"missing body", service.BlobUploadInput{FileName: "a.pdf"}, domain.ErrMissingFile},
		{"too large", service.BlobUploadInput{FileName: "a.pdf", Size: 5 << 20, Body: body}, domain.ErrFileTooLarge},
		{"bad extension", service.BlobUploadInput{FileName: "a.txt", Body: body}, domain.ErrUnsupportedFileType},
		{"bad content type", service.BlobUploadInput{FileName: "a.pdf", ContentType: "image/png", Body: body}, domain.ErrUnsupportedFileType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := new(mocks.MockObjectStorage)
			svc := service.NewBlobService(storage, &cfg.S3, &cfg.Upload, nil)

			_, err := svc.Upload(context.Background(), tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
			storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
		})
	}
}

func TestBlobService_Upload_Disabled(t *testing.T) {
	cfg := testConfig()
	svc := service.NewBlobService(nil, &cfg.S3, &cfg.Upload, nil)

	_, err := svc.Upload(context.Background(), service.BlobUploadInput{FileName: "a.pdf", Body: strings.NewReader("x")})
	assert.ErrorIs(t, err, domain.ErrBlobStorageDisabled)
}
