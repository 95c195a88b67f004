package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"quantumPredict/domain"
)

// API is the slice of the S3 client the repository uses.
type API interface {
	GetObject(ctx context.Context, params *awss3.GetObjectInput, optFns ...func(*awss3.Options)) (*awss3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *awss3.PutObjectInput, optFns ...func(*awss3.Options)) (*awss3.PutObjectOutput, error)
}

const defaultMaxAttempts = 4

// RequestLogRepository appends prediction rows to a per-day CSV object.
// S3 has no native append, so each append is a read-modify-write guarded by
// conditional puts: If-None-Match on create, If-Match with the read ETag on
// update. A losing writer re-reads and retries instead of clobbering rows
// written concurrently.
type RequestLogRepository struct {
	client      API
	bucket      string
	prefix      string
	maxAttempts int
	now         func() time.Time
}

func NewRequestLogRepository(client API, bucket, prefix string) *RequestLogRepository {
	return &RequestLogRepository{
		client:      client,
		bucket:      bucket,
		prefix:      prefix,
		maxAttempts: defaultMaxAttempts,
		now:         time.Now,
	}
}

// Append adds one row to today's log object for the dataset, creating the
// object with the header row when it does not exist yet.
func (r *RequestLogRepository) Append(ctx context.Context, dataset string, header, row []string) error {
	key := r.objectKey(dataset)

	for attempt := 0; attempt < r.maxAttempts; attempt++ {
		content, etag, found, err := r.read(ctx, key)
		if err != nil {
			return &domain.StorageReadError{Key: key, Err: err}
		}

		input := &awss3.PutObjectInput{
			Bucket:      aws.String(r.bucket),
			Key:         aws.String(key),
			ContentType: aws.String("text/csv"),
		}
		if found {
			body := strings.TrimRight(content, "\n") + "\n" + strings.Join(row, ",")
			input.Body = strings.NewReader(body)
			input.IfMatch = aws.String(etag)
		} else {
			body := strings.Join(header, ",") + "\n" + strings.Join(row, ",")
			input.Body = strings.NewReader(body)
			input.IfNoneMatch = aws.String("*")
		}

		_, err = r.client.PutObject(ctx, input)
		if err == nil {
			return nil
		}
		if isPreconditionFailed(err) {
			// Lost the race for this object, re-read and retry.
			continue
		}
		return &domain.StorageWriteError{Key: key, Err: err}
	}

	return &domain.StorageWriteError{
		Key: key,
		Err: fmt.Errorf("conditional write still conflicting after %d attempts", r.maxAttempts),
	}
}

func (r *RequestLogRepository) objectKey(dataset string) string {
	name := fmt.Sprintf("%s_%s_prediction_data.csv", r.now().Format("2006-01-02"), dataset)
	return path.Join(r.prefix, name)
}

// read fetches the current object content and ETag. Not-found is the only
// read failure treated as absence; everything else propagates.
func (r *RequestLogRepository) read(ctx context.Context, key string) (content, etag string, found bool, err error) {
	out, err := r.client.GetObject(ctx, &awss3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return "", "", false, nil
		}
		return "", "", false, err
	}
	defer out.Body.Close()

	raw, err := io.ReadAll(out.Body)
	if err != nil {
		return "", "", false, fmt.Errorf("reading object body: %w", err)
	}

	if out.ETag != nil {
		etag = *out.ETag
	}
	return string(raw), etag, true, nil
}

func isPreconditionFailed(err error) bool {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	code := apiErr.ErrorCode()
	return code == "PreconditionFailed" || code == "ConditionalRequestConflict"
}
