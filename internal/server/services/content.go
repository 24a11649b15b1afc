package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sc "github.com/avasiljevs/assetledger/internal/server/config"
	"github.com/avasiljevs/assetledger/internal/server/repositories/repomanager"

	"github.com/avasiljevs/assetledger/internal/common"
	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// ContentService issues presigned S3 URLs for the binary payloads behind
// registry records. Uploading is owner-gated; downloading follows the same
// read rule as metadata lookup (owner or enabled grant).
type ContentService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
}

func NewContentService(db *sql.DB, repomanager repomanager.RepositoryManager, config *sc.Config) *ContentService {
	return &ContentService{
		db:          db,
		repomanager: repomanager,
		config:      config,
	}
}

// assetStorageKey derives the object key for an asset's payload. Keys are
// stable per asset id so re-uploads overwrite the previous payload.
func assetStorageKey(assetID int64) string {
	return fmt.Sprintf("assets/%d", assetID)
}

func (s *ContentService) getPresignClient() (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(context.Background(),
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,     // MINIO_ROOT_USER
			s.config.S3RootPassword, // MINIO_ROOT_PASSWORD
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
	})

	return newS3PresignClient(client), nil
}

// GetUploadURL returns a presigned PUT URL for the asset's payload along
// with the storage key. Only the current owner may upload.
func (s *ContentService) GetUploadURL(ctx context.Context, caller string, assetID int64) (string, string, error) {
	asset, err := s.repomanager.Assets(s.db).Get(ctx, assetID)
	if err != nil {
		return "", "", mapAssetLookupError(err)
	}
	if asset.Owner != caller {
		return "", "", common.ErrorPermissionDenied
	}

	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", "", err
	}

	bucket := s.config.S3Bucket
	key := assetStorageKey(assetID)

	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", "", err
	}

	return req.URL, key, nil
}

// GetDownloadURL returns a presigned GET URL for the asset's payload. The
// caller must be able to read the asset's metadata.
func (s *ContentService) GetDownloadURL(ctx context.Context, caller string, assetID int64) (string, error) {
	asset, err := s.repomanager.Assets(s.db).Get(ctx, assetID)
	if err != nil {
		return "", mapAssetLookupError(err)
	}
	if asset.Owner != caller {
		grant, err := s.repomanager.Grants(s.db).Get(ctx, assetID, caller)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return "", common.ErrorContentRestricted
			}
			return "", fmt.Errorf("error loading access grant: %w", err)
		}
		if !grant.ReadEnabled {
			return "", common.ErrorContentRestricted
		}
	}

	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", err
	}

	bucket := s.config.S3Bucket
	key := assetStorageKey(assetID)

	req, err := presignGetObject(presignClient, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}
