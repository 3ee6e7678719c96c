package capture

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// PutObjectAPI is the subset of *s3.Client used by S3Sink.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Sink uploads each record as an object under Prefix.
//
// Example usage:
//
//	cfg, _ := config.LoadDefaultConfig(ctx)
//	sink := &capture.S3Sink{Client: s3.NewFromConfig(cfg), Bucket: "captures", Prefix: "run-1/"}
type S3Sink struct {
	Client PutObjectAPI
	Bucket string
	Prefix string
}

// Write uploads rec to Bucket at Prefix+rec.Name().
func (s *S3Sink) Write(ctx context.Context, rec Record) error {
	key := s.Prefix + rec.Name()
	_, err := s.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(rec.Data),
		ContentType: aws.String("application/octet-stream"),
		Metadata: map[string]string{
			"opcode":    strconv.Itoa(int(rec.Opcode)),
			"direction": rec.Direction.String(),
			"time":      rec.Time.UTC().Format(time.RFC3339Nano),
		},
	})
	if err != nil {
		return fmt.Errorf("capture: s3 upload %s: %w", key, err)
	}
	return nil
}
