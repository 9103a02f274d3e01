package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"facturalo/internal/config"
	"facturalo/internal/domain"
	"facturalo/internal/port"
)

// ReceiptUploadInput is the DTO for receipt upload requests.
type ReceiptUploadInput struct {
	UserID        uuid.UUID
	TransactionID *uuid.UUID
	File          multipart.File
	Header        *multipart.FileHeader
}

// ReceiptService manages expense receipt files (justificantes).
type ReceiptService interface {
	Upload(ctx context.Context, input ReceiptUploadInput) (*domain.Receipt, error)
	GetByID(ctx context.Context, userID, receiptID uuid.UUID) (*domain.Receipt, error)
	List(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Receipt, int, error)
	GetDownloadURL(ctx context.Context, userID, receiptID uuid.UUID) (string, error)
	Delete(ctx context.Context, userID, receiptID uuid.UUID) error
}

type receiptService struct {
	receiptRepo port.ReceiptRepository
	txRepo      port.TransactionRepository
	storage     port.ObjectStorage
	cfg         *config.S3Config
}

// NewReceiptService creates a new ReceiptService implementation.
func NewReceiptService(
	receiptRepo port.ReceiptRepository,
	txRepo port.TransactionRepository,
	storage port.ObjectStorage,
	cfg *config.S3Config,
) ReceiptService {
	return &receiptService{
		receiptRepo: receiptRepo,
		txRepo:      txRepo,
		storage:     storage,
		cfg:         cfg,
	}
}

func (s *receiptService) Upload(ctx context.Context, input ReceiptUploadInput) (*domain.Receipt, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input.Header.Filename), "."))
	fileType, ok := domain.AllowedExtensions[ext]
	if !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	maxBytes := s.cfg.MaxFileSizeMB * 1024 * 1024
	if input.Header.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	// A receipt may be attached to an expense transaction; verify ownership
	// before accepting the link.
	if input.TransactionID != nil {
		if _, err := s.txRepo.GetByID(ctx, input.UserID, *input.TransactionID); err != nil {
			if errors.Is(err, domain.ErrTransactionNotFound) {
				return nil, domain.ErrTransactionNotFound
			}
			return nil, fmt.Errorf("looking up transaction: %w", err)
		}
	}

	// Magic-byte content type detection over the first 512 bytes.
	buf := make([]byte, 512)
	n, err := input.File.Read(buf)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading file header: %w", err)
	}
	detectedType := http.DetectContentType(buf[:n])
	if _, validContent := domain.AllowedContentTypes[detectedType]; !validContent {
		return nil, domain.ErrUnsupportedFileType
	}

	if _, err := input.File.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking file: %w", err)
	}

	receiptID := uuid.New()
	s3Key := fmt.Sprintf("users/%s/receipts/%s/%s", input.UserID, receiptID, input.Header.Filename)
	contentType := domain.AllowedFileTypes[fileType]

	receipt := &domain.Receipt{
		ID:            receiptID,
		UserID:        input.UserID,
		TransactionID: input.TransactionID,
		FileName:      receiptID.String() + "." + ext,
		OriginalName:  input.Header.Filename,
		FileType:      fileType,
		FileSize:      input.Header.Size,
		S3Bucket:      s.cfg.Bucket,
		S3Key:         s3Key,
		ContentType:   contentType,
		Status:        domain.ReceiptStatusPending,
	}

	log.Printf("receiptService.Upload: uploading %s (%s, %d bytes) for user %s",
		input.Header.Filename, contentType, input.Header.Size, input.UserID)

	if err := s.receiptRepo.Create(ctx, receipt); err != nil {
		return nil, fmt.Errorf("creating receipt metadata: %w", err)
	}

	_, err = s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.Bucket,
		Key:         s3Key,
		Body:        input.File,
		ContentType: contentType,
		Size:        input.Header.Size,
	})
	if err != nil {
		log.Printf("receiptService.Upload: S3 upload failed for receipt %s: %v", receipt.ID, err)
		_ = s.receiptRepo.UpdateStatus(ctx, receipt.UserID, receipt.ID, domain.ReceiptStatusFailed)
		return nil, domain.ErrUploadFailed
	}

	if err := s.receiptRepo.UpdateStatus(ctx, receipt.UserID, receipt.ID, domain.ReceiptStatusUploaded); err != nil {
		return nil, fmt.Errorf("updating receipt status: %w", err)
	}
	receipt.Status = domain.ReceiptStatusUploaded

	return receipt, nil
}

func (s *receiptService) GetByID(ctx context.Context, userID, receiptID uuid.UUID) (*domain.Receipt, error) {
	return s.receiptRepo.GetByID(ctx, userID, receiptID)
}

func (s *receiptService) List(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Receipt, int, error) {
	return s.receiptRepo.ListByUser(ctx, userID, offset, limit)
}

func (s *receiptService) GetDownloadURL(ctx context.Context, userID, receiptID uuid.UUID) (string, error) {
	receipt, err := s.receiptRepo.GetByID(ctx, userID, receiptID)
	if err != nil {
		return "", err
	}
	if receipt.Status != domain.ReceiptStatusUploaded {
		return "", domain.ErrNotFound
	}
	return s.storage.GetPresignedURL(ctx, receipt.S3Bucket, receipt.S3Key, s.cfg.PresignExpiry)
}

func (s *receiptService) Delete(ctx context.Context, userID, receiptID uuid.UUID) error {
	receipt, err := s.receiptRepo.GetByID(ctx, userID, receiptID)
	if err != nil {
		return err
	}

	if err := s.storage.Delete(ctx, receipt.S3Bucket, receipt.S3Key); err != nil {
		log.Printf("receiptService.Delete: S3 delete failed for receipt %s: %v", receiptID, err)
	}

	return s.receiptRepo.UpdateStatus(ctx, userID, receiptID, domain.ReceiptStatusDeleted)
}
