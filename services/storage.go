package services

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"id_console_app_go/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// CardArchive stores copies of generated acknowledgement cards. Archival is
// best effort: the card download never depends on it.
type CardArchive interface {
	Store(ctx context.Context, filename string, pdf []byte) (string, error)
	IsConfigured() bool
}

// NewCardArchive selects R2 when configured and falls back to a local
// directory otherwise.
func NewCardArchive(cfg *config.Config) CardArchive {
	if cfg.R2AccountID != "" && cfg.R2AccessKeyID != "" && cfg.R2SecretAccessKey != "" && cfg.R2BucketName != "" {
		archive, err := NewR2CardArchive(cfg)
		if err != nil {
			log.Printf("[WARNING] Failed to initialize R2 card archive: %v. Falling back to local directory.", err)
			return NewLocalCardArchive(cfg.CardOutputDir)
		}
		log.Printf("Card archive ready (Cloudflare R2 - bucket: %s)", cfg.R2BucketName)
		return archive
	}
	log.Printf("Card archive ready (Local filesystem - path: %s)", cfg.CardOutputDir)
	return NewLocalCardArchive(cfg.CardOutputDir)
}

// archiveKey prefixes the card filename with a date path and a short unique
// segment so repeated downloads of the same application do not overwrite
// each other.
func archiveKey(filename string) string {
	id := strings.Split(uuid.NewString(), "-")[0]
	return fmt.Sprintf("cards/%s/%s-%s", time.Now().Format("2006/01"), id, filename)
}

// R2CardArchive stores cards in a Cloudflare R2 bucket.
type R2CardArchive struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func NewR2CardArchive(cfg *config.Config) (*R2CardArchive, error) {
	// R2 endpoint format: https://<account_id>.r2.cloudflarestorage.com
	endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.R2AccountID)

	creds := credentials.NewStaticCredentialsProvider(
		cfg.R2AccessKeyID,
		cfg.R2SecretAccessKey,
		"",
	)

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithCredentialsProvider(creds),
		awsconfig.WithRegion("auto"), // R2 uses "auto" region
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})

	return &R2CardArchive{
		client:    client,
		bucket:    cfg.R2BucketName,
		publicURL: cfg.R2PublicURL,
	}, nil
}

func (r *R2CardArchive) IsConfigured() bool {
	return r.client != nil && r.bucket != ""
}

// Store uploads a card PDF and returns its key.
func (r *R2CardArchive) Store(ctx context.Context, filename string, pdf []byte) (string, error) {
	key := archiveKey(filename)
	_, err := r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(r.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(pdf),
		ContentType:   aws.String("application/pdf"),
		ContentLength: aws.Int64(int64(len(pdf))),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload card to R2: %w", err)
	}
	return key, nil
}

// LocalCardArchive stores cards under a directory on disk.
type LocalCardArchive struct {
	dir string
}

func NewLocalCardArchive(dir string) *LocalCardArchive {
	return &LocalCardArchive{dir: dir}
}

func (l *LocalCardArchive) IsConfigured() bool {
	return l.dir != ""
}

func (l *LocalCardArchive) Store(_ context.Context, filename string, pdf []byte) (string, error) {
	key := archiveKey(filename)
	path := filepath.Join(l.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return "", fmt.Errorf("failed to write card file: %w", err)
	}
	return key, nil
}
