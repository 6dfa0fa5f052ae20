package services

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/ttioportal/internal/common"
	"github.com/dmitrijs2005/ttioportal/internal/logging"
	"github.com/dmitrijs2005/ttioportal/internal/models"
	"github.com/dmitrijs2005/ttioportal/internal/server/config"
	sm "github.com/dmitrijs2005/ttioportal/internal/server/models"
	"github.com/dmitrijs2005/ttioportal/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in, optFns...)
	}
)

// OrphanService records orphaned identities and exports each one as a JSON
// report object for whoever reconciles them.
type OrphanService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *config.Config
	log         logging.Logger
}

func NewOrphanService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, l logging.Logger) *OrphanService {
	return &OrphanService{db: db, repomanager: m, config: cfg, log: l.With("module", "orphans")}
}

// ReportKey is the object key of an orphan report.
func ReportKey(o models.Orphan) string {
	d := o.DetectedAt.UTC()
	return fmt.Sprintf("orphans/%04d/%02d/%02d/%s-%s.json", d.Year(), d.Month(), d.Day(), o.UserID, uuid.NewString())
}

// Report stores o and, when a bucket is configured, exports it and records
// the report key. The row is committed before the upload starts. An export
// failure is logged and leaves the record without a key.
func (s *OrphanService) Report(ctx context.Context, o models.Orphan) error {
	s.log.Warn(ctx, "orphaned identity reported",
		"user_id", o.UserID, "email", o.Email, "reason", o.Reason, "reported_by", o.ReportedBy)

	repo := s.repomanager.Orphans(s.db)
	id, err := repo.Create(ctx, &sm.OrphanRecord{Orphan: o})
	if err != nil {
		s.log.Error(ctx, "orphan report not stored", "user_id", o.UserID, "error", err)
		return common.ErrorInternal
	}

	if s.config.S3Bucket == "" {
		return nil
	}

	key, err := s.export(ctx, o)
	if err != nil {
		s.log.Warn(ctx, "orphan report export failed", "user_id", o.UserID, "error", err)
		return nil
	}
	if err := repo.SetReportKey(ctx, id, key); err != nil {
		s.log.Error(ctx, "orphan report key not recorded", "id", id, "key", key, "error", err)
	}
	return nil
}

func (s *OrphanService) s3Client(ctx context.Context) (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		awsconfig.WithRegion(s.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	}), nil
}

func (s *OrphanService) export(ctx context.Context, o models.Orphan) (string, error) {
	body, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return "", err
	}

	client, err := s.s3Client(ctx)
	if err != nil {
		return "", err
	}

	key := ReportKey(o)
	_, err = putObject(client, ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.config.S3Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", err
	}
	return key, nil
}
